package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Route registers all available routes. Task routes live under the /tasks
// group, guarded by the JWT middleware; the doubled /tasks/tasks segment is
// the group prefix plus the resource path and is part of the contract.
func Route(e *echo.Echo, h *Handler, secret []byte) {
	auth := e.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	tasks := e.Group("/tasks")
	tasks.Use(middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: secret,
		// The stock handler answers 400 when the Authorization header is
		// absent; the contract wants 401 for missing and invalid alike,
		// with the same {"error": ...} body the rest of the API uses.
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or invalid token"})
		},
	}))
	tasks.POST("/tasks", h.CreateTask)
	tasks.GET("/tasks", h.ListTasks)
	tasks.GET("/tasks/:id", h.GetTask)
	tasks.PUT("/tasks/:id", h.UpdateTask)
	tasks.DELETE("/tasks/:id", h.DeleteTask)
}
