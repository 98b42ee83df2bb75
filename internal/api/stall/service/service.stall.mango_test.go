// Package stallsvc - Test xác định gian hàng cho thao tác của operator.
package stallsvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "mango_commerce/internal/api/auth/models"
	"mango_commerce/internal/common"
)

func TestResolveStallForOperator_StallOwner(t *testing.T) {
	assigned := primitive.NewObjectID()
	owner := &authmodels.User{Role: authmodels.RoleStallOwner, AssignedStall: assigned}

	// Chủ gian luôn thao tác trên gian được gán, kể cả khi truyền gian khác
	stallID, err := resolveStallForOperator(owner, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("resolveStallForOperator trả lỗi: %v", err)
	}
	if stallID != assigned {
		t.Errorf("chủ gian phải bị khóa vào gian được gán, got %s want %s", stallID.Hex(), assigned.Hex())
	}
}

func TestResolveStallForOperator_StallOwnerWithoutAssignment(t *testing.T) {
	owner := &authmodels.User{Role: authmodels.RoleStallOwner}

	_, err := resolveStallForOperator(owner, "")
	if !errors.Is(err, common.ErrNoAssignedStall) {
		t.Errorf("chủ gian chưa được gán gian phải nhận ErrNoAssignedStall, got %v", err)
	}
}

func TestResolveStallForOperator_AdminExplicit(t *testing.T) {
	admin := &authmodels.User{Role: authmodels.RoleAdmin}
	explicit := primitive.NewObjectID()

	stallID, err := resolveStallForOperator(admin, explicit.Hex())
	if err != nil {
		t.Fatalf("resolveStallForOperator trả lỗi: %v", err)
	}
	if stallID != explicit {
		t.Errorf("admin phải thao tác trên gian chỉ định, got %s want %s", stallID.Hex(), explicit.Hex())
	}
}

func TestResolveStallForOperator_AdminMissingOrBadStall(t *testing.T) {
	admin := &authmodels.User{Role: authmodels.RoleAdmin}

	if _, err := resolveStallForOperator(admin, ""); err == nil {
		t.Error("admin không truyền gian phải bị từ chối")
	}
	if _, err := resolveStallForOperator(admin, "khong-hop-le"); err == nil {
		t.Error("mã gian sai định dạng phải bị từ chối")
	}
}

func TestQuantityFilters(t *testing.T) {
	mangoID := primitive.NewObjectID()
	stallID := primitive.NewObjectID()

	sufficient := sufficientQuantityFilter(mangoID, stallID, 4)
	if sufficient["_id"] != mangoID || sufficient["stall"] != stallID {
		t.Errorf("filter trừ phải khóa theo cả mặt hàng lẫn gian, got %v", sufficient)
	}
	if guard := sufficient["quantity"].(bson.M); guard["$gte"] != int64(4) {
		t.Errorf("trừ số lượng phải yêu cầu quantity >= số yêu cầu, got %v", guard)
	}

	// Kẹp về 0 chỉ được áp lên document thật sự thiếu hàng, tránh ghi đè
	// lên số lượng vừa được chủ gian bổ sung xen giữa hai bước
	insufficient := insufficientQuantityFilter(mangoID, stallID, 4)
	if insufficient["_id"] != mangoID || insufficient["stall"] != stallID {
		t.Errorf("filter kẹp phải khóa theo cả mặt hàng lẫn gian, got %v", insufficient)
	}
	if guard := insufficient["quantity"].(bson.M); guard["$lt"] != int64(4) {
		t.Errorf("filter kẹp phải yêu cầu quantity < số yêu cầu, got %v", guard)
	}
}
