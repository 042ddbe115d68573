package httpapi

import "github.com/dmitrijs2005/userdash/internal/devserver/users"

type userDTO struct {
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func toDTO(p users.Profile) userDTO {
	return userDTO{FullName: p.FullName, Username: p.Username, Email: p.Email, PhoneNumber: p.PhoneNumber}
}

func (d userDTO) profile() users.Profile {
	return users.Profile{FullName: d.FullName, Username: d.Username, Email: d.Email, PhoneNumber: d.PhoneNumber}
}

type registerRequest struct {
	userDTO
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	User userDTO `json:"user"`
}
