package entities

// User is a dashboard account stored in the user sheet. Presence of a valid
// session token is what gates dashboard access; there is no role model.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
