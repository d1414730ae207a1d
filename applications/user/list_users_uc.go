package user

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// ListUsers returns every account in table order, for the admin user list.
// Passwords stay out of the result via the struct's json tag.
func ListUsers() []User {
	logger.Log.Info(fmt.Sprintf("[user] Listing all %d user accounts.", len(users)))

	out := make([]User, len(users))
	copy(out, users)
	return out
}
