package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nebadan/sqa-task-project/applications/notify"
	"github.com/nebadan/sqa-task-project/applications/session"
	"github.com/nebadan/sqa-task-project/applications/task"
	"github.com/nebadan/sqa-task-project/config"
	"github.com/nebadan/sqa-task-project/controllers"
	"github.com/nebadan/sqa-task-project/logger"
	"github.com/nebadan/sqa-task-project/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Continuing...")
	}

	logger.Log.Info("[main] program started")

	// --- STORAGE ---
	logger.Log.Info(fmt.Sprintf("[main] Opening key-value storage at %s...", config.StoragePath()))
	if err := storage.InitStore(config.StoragePath()); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Storage initialization failed: %v", err))
		log.Fatalf("Storage initialization failed: %v", err)
	}

	// --- APPLICATION STATE ---
	sessions := session.NewStore(storage.Store)
	tasks := task.NewStore(storage.Store)
	notices := notify.NewNotifier(config.NoticeTTL())

	// Rehydrate a persisted session from a previous run, if any.
	if sess := sessions.Restore(); sess != nil {
		logger.Log.Info(fmt.Sprintf("[main] Restored session for %s (%s).", sess.Name, sess.Role))
	}

	ctl := controllers.New(sessions, tasks, notices)

	e := echo.New()

	// Global Middleware: Logger and CORS (CRITICAL for frontend connection)
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	e.Use(ctl.SessionMiddleware)

	// --- AUTH ROUTES ---
	logger.Log.Info("[router] Registering authentication routes.")
	e.POST("/api/login", ctl.LoginHandler)
	e.POST("/api/logout", ctl.LogoutHandler)

	// --- TASK ROUTES ---
	logger.Log.Info("[router] Registering task CRUD routes.")
	e.GET("/api/tasks", ctl.GetTasksHandler)
	e.POST("/api/tasks", ctl.CreateTaskHandler)
	e.PUT("/api/tasks/:id", ctl.UpdateTaskHandler)
	e.POST("/api/tasks/:id/complete", ctl.CompleteTaskHandler)
	e.DELETE("/api/tasks/:id", ctl.DeleteTaskHandler)

	// --- ADMIN ROUTES ---
	logger.Log.Info("[router] Registering admin routes (Admin Role Required).")
	e.GET("/api/users", ctl.GetUsersHandler, ctl.AdminOnlyMiddleware)

	// --- PAGE ROUTES ---
	// Every other path goes through the guard, which resolves it to one of
	// the three pages.
	e.GET("/*", ctl.PageHandler)

	logger.Log.Info(fmt.Sprintf("[main] Server starting on port %s.", config.Port()))
	if err := e.Start(":" + config.Port()); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Server stopped: %v", err))
		log.Fatalf("Server stopped: %v", err)
	}
}
