package user

type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`    // hardcoded demo credential, never returned to clients
	Role     string `json:"role"` // "admin" or "user"
	Name     string `json:"name"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// LoginParams for incoming credentials
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// The fixed demo account table. This application has no registration flow;
// these two accounts are the entire user population.
var users = []User{
	{Email: "admin@test.com", Password: "admin123", Role: RoleAdmin, Name: "Admin User"},
	{Email: "user@test.com", Password: "user123", Role: RoleUser, Name: "Regular User"},
}
