package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MusfirahBW/to-do-task-manager/internal/store"
)

// taskNotFoundMessage deliberately does not distinguish "no such task" from
// "someone else's task".
const taskNotFoundMessage = "Task not found or access denied"

// CreateTask persists a new task owned by the caller.
func (h *Handler) CreateTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	var req CreateTaskDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if _, err := h.store.CreateTask(c.Request().Context(), userID, req.Title, req.Description); err != nil {
		slog.Error("creating task failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Task created successfully!"})
}

// ListTasks returns every task owned by the caller. An owner with no tasks
// gets an empty JSON array.
func (h *Handler) ListTasks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	tasks, err := h.store.TasksByOwner(c.Request().Context(), userID)
	if err != nil {
		slog.Error("listing tasks failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single owned task.
func (h *Handler) GetTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
	}

	task, err := h.store.TaskByID(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
		}
		slog.Error("fetching task failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask overwrites the fields present in the body and leaves the rest
// unchanged.
func (h *Handler) UpdateTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
	}

	var req UpdateTaskDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if _, err := h.store.UpdateTask(c.Request().Context(), userID, id, req.Title, req.Description); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
		}
		slog.Error("updating task failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task updated successfully!"})
}

// DeleteTask removes an owned task permanently. No soft delete.
func (h *Handler) DeleteTask(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
	}

	if err := h.store.DeleteTask(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": taskNotFoundMessage})
		}
		slog.Error("deleting task failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully!"})
}
