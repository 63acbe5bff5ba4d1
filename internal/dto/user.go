package dto

import (
	"time"

	"github.com/pranavks/user_account_app/internal/core/domain"
)

// UserResponse is the default read projection of a user. Credential fields
// (password hash, refresh token, reset token) are never part of it.
type UserResponse struct {
	UserID          string     `json:"userID"`
	FullName        string     `json:"fullName"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	Phone           string     `json:"phone,omitempty"`
	PasswordResetAt *time.Time `json:"passwordResetAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:          user.UserID,
		FullName:        user.FullName,
		Username:        user.Username,
		Email:           user.Email,
		Role:            string(user.Role),
		Phone:           user.Phone,
		PasswordResetAt: user.PasswordResetAt,
		CreatedAt:       user.CreatedAt,
	}
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields; in
// particular, Password being nil means the stored hash must not change.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
