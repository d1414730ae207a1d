package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nebadan/sqa-task-project/applications/task"
	"github.com/nebadan/sqa-task-project/logger"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// GetTasksHandler returns the current owner's tasks in insertion order.
func (ctl *Controllers) GetTasksHandler(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	return c.JSON(http.StatusOK, ctl.Tasks.ByOwner(sess.Email))
}

// CreateTaskHandler creates a pending task owned by the current session.
func (ctl *Controllers) CreateTaskHandler(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	req := new(taskRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid task payload"})
	}

	t, err := ctl.Tasks.Create(sess.Email, req.Title, req.Description, req.DueDate)
	if err != nil {
		return ctl.taskError(c, err)
	}

	logger.Log.Info(fmt.Sprintf("[task] Task created successfully. ID: %s", t.ID))
	return c.JSON(http.StatusCreated, t)
}

// UpdateTaskHandler edits title, description and due date of a task.
func (ctl *Controllers) UpdateTaskHandler(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	req := new(taskRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid task payload"})
	}

	t, err := ctl.Tasks.Edit(c.Param("id"), req.Title, req.Description, req.DueDate)
	if err != nil {
		return ctl.taskError(c, err)
	}

	return c.JSON(http.StatusOK, t)
}

// CompleteTaskHandler marks a task completed. Completing twice is fine.
func (ctl *Controllers) CompleteTaskHandler(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	t, err := ctl.Tasks.Complete(c.Param("id"))
	if err != nil {
		return ctl.taskError(c, err)
	}

	return c.JSON(http.StatusOK, t)
}

// DeleteTaskHandler removes a task; an unknown ID still succeeds.
func (ctl *Controllers) DeleteTaskHandler(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	if err := ctl.Tasks.Delete(c.Param("id")); err != nil {
		return ctl.taskError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// taskError maps reducer errors onto HTTP responses.
func (ctl *Controllers) taskError(c echo.Context, err error) error {
	var verr *task.ValidationError
	if errors.As(err, &verr) {
		fields := map[string]string{}
		if verr.TitleMissing {
			fields["title"] = "Title is required"
		}
		if verr.DescriptionMissing {
			fields["description"] = "Description is required"
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fields})
	}

	if errors.Is(err, task.ErrTaskNotFound) {
		// Unreachable from the rendered UI (IDs always come from the list),
		// but still answered properly instead of failing loudly.
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Task not found"})
	}

	logger.Log.Error(fmt.Sprintf("[task] Unexpected task operation failure: %v", err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Task operation failed"})
}
