package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// issueToken mints a signed HS256 identity token carrying the user's id.
// The expiry is always set explicitly; the TTL comes from configuration.
func issueToken(secret []byte, ttl time.Duration, userID int) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["exp"] = time.Now().Add(ttl).Unix()
	return token.SignedString(secret)
}

// callerID extracts the authenticated user's id from the token the JWT
// middleware stored on the context.
func callerID(c echo.Context) (int, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected claims type")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing")
	}
	return int(id), nil
}
