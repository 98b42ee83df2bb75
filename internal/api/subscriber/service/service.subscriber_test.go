// Package subscribersvc - Test filter tra cứu bản ghi trùng khi đăng ký nhận tin.
package subscribersvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDuplicateFilter(t *testing.T) {
	cases := []struct {
		name  string
		email string
		phone string
		want  []bson.M
	}{
		{"cả hai trường", "a@b.vn", "0901234567", []bson.M{{"email": "a@b.vn"}, {"phone": "0901234567"}}},
		{"chỉ email", "a@b.vn", "", []bson.M{{"email": "a@b.vn"}}},
		{"chỉ phone", "", "0901234567", []bson.M{{"phone": "0901234567"}}},
	}

	for _, c := range cases {
		filter := duplicateFilter(c.email, c.phone)
		or, ok := filter["$or"].([]bson.M)
		if !ok {
			t.Fatalf("%s: filter phải là $or, got %v", c.name, filter)
		}
		if len(or) != len(c.want) {
			t.Fatalf("%s: số nhánh $or = %d, want %d", c.name, len(or), len(c.want))
		}
		for i := range c.want {
			for k, v := range c.want[i] {
				if or[i][k] != v {
					t.Errorf("%s: nhánh %d = %v, want %v", c.name, i, or[i], c.want[i])
				}
			}
		}
	}
}
