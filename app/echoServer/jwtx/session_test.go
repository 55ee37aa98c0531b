package jwtx

import (
	"net/http/httptest"
	"testing"

	"librarydesk/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func ctxWithToken(t *testing.T, claims jwt.MapClaims) echo.Context {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	c.Set("user", parsed)
	return c
}

func TestSessionFromContext_Claims(t *testing.T) {
	c := ctxWithToken(t, jwt.MapClaims{"sub": "U42", "role": "librarian", "cccd": "079123456789"})

	s := SessionFromContext(c)
	require.True(t, s.Authenticated())
	require.Equal(t, "U42", s.UserID)
	require.Equal(t, model.RoleLibrarian, s.Role)
	require.Equal(t, "079123456789", s.CCCD)
	require.NotEmpty(t, s.Token)
}

func TestSessionFromContext_NoTokenDegradesToAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

	s := SessionFromContext(c)
	require.False(t, s.Authenticated())
	require.Empty(t, s.UserID)
}
