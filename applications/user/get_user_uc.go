package user

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// GetUserByEmail retrieves a single user record by their email address.
func GetUserByEmail(email string) (*User, error) {
	logger.Log.Info(fmt.Sprintf("[user] Attempting to retrieve user by email: %s", email))

	for i := range users {
		if users[i].Email == email {
			u := users[i]
			logger.Log.Info(fmt.Sprintf("[user] User %s found successfully. Role: %s.", email, u.Role))
			return &u, nil
		}
	}

	logger.Log.Warn(fmt.Sprintf("[user] Retrieval failed for %s: User not found.", email))
	return nil, fmt.Errorf("user with email %s not found", email)
}
