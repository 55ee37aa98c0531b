// Package jwtx turns the verified bearer token on an echo context into
// the explicit session object the remote layer wants. No ambient
// token lookups below this point.
package jwtx

import (
	"strings"

	"librarydesk/model"
	"librarydesk/repository/remote"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionFromContext reads the echo-jwt verified claims. A request
// without a token degrades to an anonymous session; it never errors
// just because nobody is logged in.
func SessionFromContext(c echo.Context) remote.Session {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return remote.Anonymous()
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return remote.Anonymous()
	}

	s := remote.Session{Token: rawToken(c)}
	if sub, ok := claims["sub"].(string); ok {
		s.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = model.Role(strings.ToUpper(role))
	}
	if cccd, ok := claims["cccd"].(string); ok {
		s.CCCD = cccd
	}
	return s
}

func rawToken(c echo.Context) string {
	h := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}
