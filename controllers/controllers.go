package controllers

import (
	"github.com/nebadan/sqa-task-project/applications/notify"
	"github.com/nebadan/sqa-task-project/applications/session"
	"github.com/nebadan/sqa-task-project/applications/task"
)

// Controllers bundles the application state the handlers operate on. The
// stores are constructed once in main and handed in here; there are no
// package-level globals to reach for.
type Controllers struct {
	Sessions *session.Store
	Tasks    *task.Store
	Notices  *notify.Notifier
}

func New(sessions *session.Store, tasks *task.Store, notices *notify.Notifier) *Controllers {
	return &Controllers{
		Sessions: sessions,
		Tasks:    tasks,
		Notices:  notices,
	}
}

// PageState is what every page-level endpoint returns: which view to show,
// the canonical address for it, and whatever the view needs to render its
// chrome.
type PageState struct {
	Page   string           `json:"page"`
	Path   string           `json:"path"`
	User   *session.Session `json:"user,omitempty"`
	Notice *notify.Notice   `json:"notice,omitempty"`
}
