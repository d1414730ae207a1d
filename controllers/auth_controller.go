package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nebadan/sqa-task-project/applications/router"
	"github.com/nebadan/sqa-task-project/applications/user"
	"github.com/nebadan/sqa-task-project/logger"
)

type loginRequest struct {
	user.LoginParams
	// Path is the address the login form was submitted from, so the guard
	// can honor an intended destination like /admin.
	Path string `json:"path"`
}

// LoginHandler checks the submitted credentials and, on success, resolves
// which page the user lands on.
func (ctl *Controllers) LoginHandler(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		logger.Log.Warn(fmt.Sprintf("[auth] Login attempt failed: Invalid request binding: %v", err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid login request"})
	}

	logger.Log.Info(fmt.Sprintf("[auth] Login initiated for email: %s. Password provided: %t", req.Email, req.Password != ""))

	sess, err := ctl.Sessions.Login(req.Email, req.Password)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[auth] Login failed for %s: %v", req.Email, err))
		// One message for every failure mode; which field was wrong stays
		// undisclosed. The front-end leaves the form as typed.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := generateSessionToken(sess)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not create session token"})
	}
	setSessionCookie(c, token)

	path := req.Path
	if path == "" {
		path = "/login"
	}
	res := router.Resolve(path, sess)

	state := PageState{Page: string(res.Page), Path: res.Path, User: sess}
	if res.Denied {
		notice := ctl.Notices.Push(router.AccessDeniedMessage)
		state.Notice = &notice
	}

	logger.Log.Info(fmt.Sprintf("[auth] Login successful for %s. Landing page: %s", sess.Email, res.Page))
	return c.JSON(http.StatusOK, state)
}

// LogoutHandler ends the session unconditionally.
func (ctl *Controllers) LogoutHandler(c echo.Context) error {
	if err := ctl.Sessions.Logout(); err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Logout failed to clear persisted session: %v", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not clear session"})
	}

	clearSessionCookie(c)
	ctl.Notices.Clear()

	logger.Log.Info("[auth] Logout complete.")
	return c.JSON(http.StatusOK, PageState{Page: string(router.PageLogin), Path: "/login"})
}
