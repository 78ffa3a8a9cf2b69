package dto

// Login accepts either the login or the email in the Login field.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
