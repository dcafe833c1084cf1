package fastapiserver

import "apidemo/internal/domain/user"

type HelloResponse struct {
	Message string `json:"message" example:"Hello from FastAPI!"`
}

type CreateUserResponse struct {
	Message string    `json:"message" example:"User created"`
	User    user.User `json:"user"`
}

type UserDetailResponse struct {
	Message string `json:"message" example:"Get user detail"`
	ID      string `json:"id" example:"42"`
}

// ValidationErrorResponse is the 422 body.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
