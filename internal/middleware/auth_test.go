package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uint
	err    error
}

func (s stubValidator) ValidateToken(token string) (uint, error) {
	return s.userID, s.err
}

func echoUserID(t *testing.T) (http.Handler, *uint) {
	t.Helper()
	var seen uint
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}), &seen
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	handler, _ := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	RequireAuth(stubValidator{userID: 1})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	handler, _ := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer bad")

	RequireAuth(stubValidator{err: errors.New("expired")})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBindsUser(t *testing.T) {
	handler, seen := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer good")

	RequireAuth(stubValidator{userID: 42})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), *seen)
}

func TestOptionalAuthAnonymousPassThrough(t *testing.T) {
	handler, seen := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	OptionalAuth(stubValidator{userID: 42})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(0), *seen)
}

func TestOptionalAuthInvalidTokenStaysAnonymous(t *testing.T) {
	handler, seen := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer bad")

	OptionalAuth(stubValidator{err: errors.New("bad")})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(0), *seen)
}

func TestOptionalAuthValidTokenBindsUser(t *testing.T) {
	handler, seen := echoUserID(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer good")

	OptionalAuth(stubValidator{userID: 7})(handler).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), *seen)
}
