package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"librarydesk/util/apperr"

	"github.com/stretchr/testify/require"
)

type title struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestClient(h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	return NewWithHTTPClient(srv.URL, srv.Client()), srv
}

func TestGet_DecodesDataEnvelope(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/titles/BT1", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"id":"BT1","name":"Dune"}}`))
	})
	defer srv.Close()

	var out title
	err := c.Get(context.Background(), Session{Token: "tok"}, "/api/titles/BT1", &out)
	require.NoError(t, err)
	require.Equal(t, "Dune", out.Name)
}

func TestGet_NoTokenOmitsHeader(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[]}`))
	})
	defer srv.Close()

	var out []title
	require.NoError(t, c.Get(context.Background(), Anonymous(), "/api/titles", &out))
}

func TestErrorShapeWinsOverData(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"data":{"id":"BT1"},"error":{"error":"this copy was just taken"}}`))
	})
	defer srv.Close()

	var out title
	err := c.Get(context.Background(), Session{Token: "tok"}, "/api/titles/BT1", &out)
	require.Error(t, err)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	// server message verbatim
	require.EqualError(t, err, "this copy was just taken")
}

func TestStatusToCodeMapping(t *testing.T) {
	cases := []struct {
		status int
		want   apperr.ErrCode
	}{
		{http.StatusBadRequest, apperr.ErrValidation},
		{http.StatusUnprocessableEntity, apperr.ErrValidation},
		{http.StatusUnauthorized, apperr.ErrAuthorization},
		{http.StatusForbidden, apperr.ErrAuthorization},
		{http.StatusNotFound, apperr.ErrNotFound},
		{http.StatusConflict, apperr.ErrConflict},
		{http.StatusPreconditionFailed, apperr.ErrPrecondition},
		{http.StatusBadGateway, apperr.ErrTransport},
		{http.StatusInternalServerError, apperr.ErrTransport},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, codeForStatus(tc.status), "status %d", tc.status)
	}
}

func TestErrorStatusWithoutEnvelopeGetsFallbackMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	err := c.Get(context.Background(), Session{Token: "tok"}, "/api/titles/nope", &title{})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
	require.EqualError(t, err, "not found")
}

func TestMalformedBodyIsTransport(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})
	defer srv.Close()

	err := c.Get(context.Background(), Session{Token: "tok"}, "/api/titles", &[]title{})
	require.Equal(t, apperr.ErrTransport, apperr.Code(err))
}

func TestMutationsCarryIdempotencyKey(t *testing.T) {
	var keys []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		w.Write([]byte(`{"data":{"id":"BT1"}}`))
	})
	defer srv.Close()

	var out title
	require.NoError(t, c.Post(context.Background(), Session{Token: "tok"}, "/api/titles", title{Name: "x"}, &out))
	require.NoError(t, c.Put(context.Background(), Session{Token: "tok"}, "/api/titles/BT1", title{Name: "y"}, &out))
	require.Len(t, keys, 2)
	require.NotEmpty(t, keys[0])
	require.NotEmpty(t, keys[1])
}

func TestUnreachableBackendIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	err := c.Get(context.Background(), Anonymous(), "/api/titles", &[]title{})
	require.Equal(t, apperr.ErrTransport, apperr.Code(err))
}
