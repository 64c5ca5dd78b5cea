package authdto

// AddressInput đầu vào địa chỉ giao hàng.
type AddressInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	County  string `json:"county"`
	Country string `json:"country"`
}

// UserRegisterInput đầu vào đăng ký tài khoản.
type UserRegisterInput struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,strong_password"`
	Phone    string        `json:"phone"`
	Address  *AddressInput `json:"address"`
}

// UserLoginInput đầu vào đăng nhập.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD, chỉ admin).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin employee customer"`
}

// UserUpdateInput đầu vào cập nhật thông tin người dùng.
type UserUpdateInput struct {
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Address *AddressInput `json:"address"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SetRoleInput đầu vào gán vai trò cho người dùng.
type SetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin employee customer"`
}

// WishlistInput đầu vào thêm / gỡ sản phẩm khỏi wishlist.
type WishlistInput struct {
	ProductID string `json:"productId" validate:"required"`
}
