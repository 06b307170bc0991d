package dto

import userdomain "cardshop-backend/internal/user/domain"

// UserResponse is the public shape of a user. Password hash and
// internal timestamps are stripped before anything leaves the API.
type UserResponse struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

func NewUserResponse(user *userdomain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
	}
}
