// Package models holds the client-side data types exchanged with the backend.
package models

// Profile is the user record shown and edited on the profile view.
// Email is fixed once set; the client never sends a changed email.
type Profile struct {
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ProfileEnvelope is the body of GET /user/profile.
type ProfileEnvelope struct {
	User Profile `json:"user"`
}

// Field identifiers, shared by the REPL, the browser shell and the views.
const (
	FieldFullName    = "fullName"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

// FieldSpec describes one row of the profile form.
type FieldSpec struct {
	ID       string
	Label    string
	Type     string
	ReadOnly bool
}

// ProfileFields lists the profile form rows in display order.
var ProfileFields = []FieldSpec{
	{ID: FieldFullName, Label: "Full Name", Type: "text"},
	{ID: FieldUsername, Label: "Username", Type: "text"},
	{ID: FieldEmail, Label: "Email", Type: "email", ReadOnly: true},
	{ID: FieldPhoneNumber, Label: "Phone Number", Type: "text"},
}

// Get returns the value of the field with the given id.
func (p Profile) Get(id string) (string, bool) {
	switch id {
	case FieldFullName:
		return p.FullName, true
	case FieldUsername:
		return p.Username, true
	case FieldEmail:
		return p.Email, true
	case FieldPhoneNumber:
		return p.PhoneNumber, true
	}
	return "", false
}

// With returns a copy of p with the field id set to value. Email is not
// settable through With.
func (p Profile) With(id, value string) (Profile, bool) {
	switch id {
	case FieldFullName:
		p.FullName = value
	case FieldUsername:
		p.Username = value
	case FieldPhoneNumber:
		p.PhoneNumber = value
	default:
		return p, false
	}
	return p, true
}
