// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò người dùng trong hệ thống
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// Address địa chỉ giao hàng của người dùng
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	County  string `json:"county,omitempty" bson:"county,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng (được làm mới mỗi lần login)
type User struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Email     string               `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password  string               `json:"-" bson:"password,omitempty"`
	Salt      string               `json:"-" bson:"salt,omitempty"`
	Phone     string               `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Role      string               `json:"role" bson:"role" index:"single"`
	Address   Address              `json:"address,omitempty" bson:"address,omitempty"`
	Wishlist  []primitive.ObjectID `json:"wishlist,omitempty" bson:"wishlist,omitempty"`
	Token     string               `json:"token,omitempty" bson:"token,omitempty"`
	IsBlock   bool                 `json:"-" bson:"isBlock"`
	BlockNote string               `json:"-" bson:"blockNote,omitempty"`
	CreatedAt int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                `json:"updatedAt" bson:"updatedAt"`
}
