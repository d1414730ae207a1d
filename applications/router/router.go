package router

import (
	"github.com/nebadan/sqa-task-project/applications/session"
	"github.com/nebadan/sqa-task-project/applications/user"
)

// Page is one of the three views the front-end can show.
type Page string

const (
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
	PageAdmin     Page = "admin"
)

// AccessDeniedMessage is the floating notice shown when a non-admin hits the
// admin path.
const AccessDeniedMessage = "Access denied. Admin privileges required."

// Resolution is the outcome of routing a path against the current session.
//
// Path is the canonical address of the resolved page; when it differs from
// the requested path the front-end syncs the address bar (pushState, no
// reload) so back/forward navigation stays consistent.
type Resolution struct {
	Page   Page   `json:"page"`
	Path   string `json:"path"`
	Denied bool   `json:"-"`
}

// Resolve maps a requested path and the current session to a page.
//
// Resolve is pure: it never mutates the session and never emits the denial
// notice itself, so resolving the same inputs twice yields the same result.
// The admin page is only ever resolved for an admin session.
func Resolve(path string, sess *session.Session) Resolution {
	if sess == nil {
		// Not authenticated. Every path, protected or not, lands on login.
		return Resolution{Page: PageLogin, Path: "/login"}
	}

	switch path {
	case "/admin":
		if sess.Role == user.RoleAdmin {
			return Resolution{Page: PageAdmin, Path: "/admin"}
		}
		return Resolution{Page: PageDashboard, Path: "/dashboard", Denied: true}
	case "/login":
		// Already authenticated: skip the login form, admins straight to
		// their own dashboard.
		if sess.Role == user.RoleAdmin {
			return Resolution{Page: PageAdmin, Path: "/admin"}
		}
		return Resolution{Page: PageDashboard, Path: "/dashboard"}
	default:
		// "/dashboard" and anything unrecognized fall through to the
		// dashboard, admins included.
		return Resolution{Page: PageDashboard, Path: "/dashboard"}
	}
}
