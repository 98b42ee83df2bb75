// Package authdto - các DTO thuộc domain auth.
package authdto

// UserRegisterInput đầu vào đăng ký tài khoản khách hàng.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,mobile"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập bằng số điện thoại.
type UserLoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserCreateInput đầu vào tạo người dùng (admin CRUD).
type UserCreateInput struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required,mobile"`
	Email         string `json:"email" validate:"omitempty,email"`
	Password      string `json:"password" validate:"required,strong_password"`
	Role          string `json:"role" validate:"omitempty,oneof=admin staff user stall_owner"`
	AssignedStall string `json:"assignedStall" validate:"omitempty,len=24"`
	Status        string `json:"status" validate:"omitempty,oneof=active disabled"`
}

// UserUpdateInput đầu vào cập nhật người dùng (admin CRUD).
type UserUpdateInput struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Role          string `json:"role" validate:"omitempty,oneof=admin staff user stall_owner"`
	AssignedStall string `json:"assignedStall" validate:"omitempty,len=24"`
	Status        string `json:"status" validate:"omitempty,oneof=active disabled"`
}
