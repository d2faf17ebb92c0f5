package mapper

import (
	userdomain "github.com/Apurer/go-users-api/internal/users/domain"
)

// UserRequest is the transport-level payload accepted on create and update.
// is_active defaults to true when omitted.
type UserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required"`
	Picture  *string `json:"picture"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse is the transport-level representation of a stored user.
// Password is echoed back for contract compatibility with the original
// API; see README for the security caveat.
type UserResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
	Picture  *string `json:"picture"`
	IsActive bool    `json:"is_active"`
}

// ToDomainUser converts a transport payload to its domain counterpart.
func ToDomainUser(req UserRequest) (*userdomain.User, error) {
	user, err := userdomain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user.SetPhone(req.Phone)
	user.SetPicture(req.Picture)
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	return user, nil
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Password: user.Password,
		Picture:  user.Picture,
		IsActive: user.IsActive,
	}
}

// FromDomainUsers converts a slice of domain users to transport representation.
func FromDomainUsers(users []*userdomain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}
