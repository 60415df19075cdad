package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/MusfirahBW/to-do-task-manager/internal/store"
)

// Handler holds the dependencies shared by all request handlers. They are
// constructed once at startup and passed in explicitly; there is no global
// store or token state.
type Handler struct {
	store *store.Store
	cfg   Config
}

func NewHandler(st *store.Store, cfg Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// passwordSymbols is the fixed set a password's special character must come
// from.
const passwordSymbols = "!@#$%^&*()_+"

// passwordRequirements is the single all-or-nothing rejection message; the
// response never itemises which rule failed.
const passwordRequirements = "Password must be at least 8 characters long and include an uppercase letter, " +
	"a lowercase letter, a number, and a special character."

// validPassword checks the five complexity rules: length >= 8, and at least
// one uppercase letter, lowercase letter, digit, and allowed symbol.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// Signup registers a new account. The username is not validated beyond
// uniqueness, which the users.username UNIQUE constraint enforces; a
// duplicate insert maps to a 400 rather than being pre-checked, so two
// simultaneous signups cannot both succeed.
func (h *Handler) Signup(c echo.Context) error {
	var req CredentialsDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if !validPassword(req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": passwordRequirements})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.BcryptCost)
	if err != nil {
		slog.Error("hashing password failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	if _, err := h.store.CreateUser(c.Request().Context(), req.Username, string(hash)); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username already exists."})
		}
		slog.Error("creating user failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully!"})
}

// Login verifies credentials and issues an identity token. An unknown
// username and a wrong password produce the same response, so usernames
// cannot be enumerated.
func (h *Handler) Login(c echo.Context) error {
	var req CredentialsDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user, err := h.store.UserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("looking up user failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password."})
	}

	token, err := issueToken([]byte(h.cfg.JWTSecret), h.cfg.TokenTTL, user.ID)
	if err != nil {
		slog.Error("signing token failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
