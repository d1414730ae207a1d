package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nebadan/sqa-task-project/applications/user"
)

// GetUsersHandler lists every account for the admin page. Routed behind
// AdminOnlyMiddleware.
func (ctl *Controllers) GetUsersHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, user.ListUsers())
}
