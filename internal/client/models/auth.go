package models

// Credentials is the body of POST /user/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /user/register.
type Registration struct {
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	Token string `json:"token"`
}
