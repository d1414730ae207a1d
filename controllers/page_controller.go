package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nebadan/sqa-task-project/applications/router"
	"github.com/nebadan/sqa-task-project/logger"
)

// PageHandler resolves any navigable path to a page state. It serves /login,
// /dashboard, /admin and every unrecognized path; the guard decides what the
// caller actually gets to see.
func (ctl *Controllers) PageHandler(c echo.Context) error {
	path := c.Request().URL.Path
	sess := sessionFrom(c)

	res := router.Resolve(path, sess)
	logger.Log.Info(fmt.Sprintf("[router] Resolved path %s to page %s (denied: %t).", path, res.Page, res.Denied))

	state := PageState{Page: string(res.Page), Path: res.Path, User: sess}
	if res.Denied {
		notice := ctl.Notices.Push(router.AccessDeniedMessage)
		state.Notice = &notice
	} else {
		state.Notice = ctl.Notices.Current()
	}

	return c.JSON(http.StatusOK, state)
}
