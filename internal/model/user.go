package model

// Profile is the static demo profile served by the auth provider.  There is
// no user store; every caller sees the same record.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	District string `json:"district"`
	Phone    string `json:"phone"`
}
