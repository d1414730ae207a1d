package router

import (
	"testing"

	"github.com/nebadan/sqa-task-project/applications/session"
)

var (
	userSession  = &session.Session{Email: "user@test.com", Role: "user", Name: "Regular User"}
	adminSession = &session.Session{Email: "admin@test.com", Role: "admin", Name: "Admin User"}
)

func TestResolve_TransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		sess   *session.Session
		page   Page
		canon  string
		denied bool
	}{
		{"login unauthenticated", "/login", nil, PageLogin, "/login", false},
		{"login as user", "/login", userSession, PageDashboard, "/dashboard", false},
		{"login as admin", "/login", adminSession, PageAdmin, "/admin", false},

		{"dashboard unauthenticated", "/dashboard", nil, PageLogin, "/login", false},
		{"dashboard as user", "/dashboard", userSession, PageDashboard, "/dashboard", false},
		{"dashboard as admin", "/dashboard", adminSession, PageDashboard, "/dashboard", false},

		{"admin unauthenticated", "/admin", nil, PageLogin, "/login", false},
		{"admin as user", "/admin", userSession, PageDashboard, "/dashboard", true},
		{"admin as admin", "/admin", adminSession, PageAdmin, "/admin", false},

		{"unknown unauthenticated", "/whatever", nil, PageLogin, "/login", false},
		{"unknown as user", "/whatever", userSession, PageDashboard, "/dashboard", false},
		// Admins fall through to the regular dashboard on unknown paths.
		{"unknown as admin", "/whatever", adminSession, PageDashboard, "/dashboard", false},
		{"root as admin", "/", adminSession, PageDashboard, "/dashboard", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.path, tc.sess)
			if got.Page != tc.page {
				t.Fatalf("expected page %s, got %s", tc.page, got.Page)
			}
			if got.Path != tc.canon {
				t.Fatalf("expected canonical path %s, got %s", tc.canon, got.Path)
			}
			if got.Denied != tc.denied {
				t.Fatalf("expected denied=%t, got %t", tc.denied, got.Denied)
			}
		})
	}
}

func TestResolve_AdminPageRequiresAdminSession(t *testing.T) {
	paths := []string{"/login", "/dashboard", "/admin", "/", "/nope"}
	sessions := []*session.Session{nil, userSession}

	for _, p := range paths {
		for _, s := range sessions {
			if got := Resolve(p, s); got.Page == PageAdmin {
				t.Fatalf("path %s resolved to the admin page without an admin session", p)
			}
		}
	}
}

func TestResolve_IsIdempotent(t *testing.T) {
	first := Resolve("/admin", userSession)
	second := Resolve("/admin", userSession)

	if first != second {
		t.Fatalf("resolving the same inputs twice diverged: %+v vs %+v", first, second)
	}
}
