package dto

type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=80"`
	Email    string `form:"email" validate:"required,email,max=120"`
	Password string `form:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
