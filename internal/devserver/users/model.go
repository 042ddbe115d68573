package users

import "time"

// Profile is the editable part of a user record.
type Profile struct {
	FullName    string
	Username    string
	Email       string
	PhoneNumber string
}

type User struct {
	ID           string
	Profile      Profile
	PasswordHash []byte
	CreatedAt    time.Time
}
