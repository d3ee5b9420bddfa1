package dto

// RegisterRequest - форма регистрации
type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=64"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginRequest - форма входа
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
