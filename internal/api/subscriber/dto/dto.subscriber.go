// Package subscriberdto - DTO cho domain subscriber.
package subscriberdto

// SubscriberSignupInput đăng ký nhận tin từ storefront.
// Phải có ít nhất một trong email hoặc phone, kiểm tra ở service.
type SubscriberSignupInput struct {
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,mobile"`
	Source string `json:"source" validate:"omitempty,no_xss"`
}

// SubscriberUpdateInput admin cập nhật thông tin người đăng ký
type SubscriberUpdateInput struct {
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,mobile"`
	Source string `json:"source" validate:"omitempty,no_xss"`
}
