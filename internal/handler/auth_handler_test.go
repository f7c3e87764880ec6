package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mpcl/league-api/internal/middleware"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
)

type stubAuthService struct {
	loginResp *models.LoginResponse
	loginErr  error
	loggedOut bool
}

func (s *stubAuthService) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) RefreshToken(context.Context, models.RefreshTokenRequest) (*models.RefreshTokenResponse, error) {
	return nil, appErrors.ErrUnauthorized
}

func (s *stubAuthService) Logout(context.Context, string, int64) error {
	s.loggedOut = true
	return nil
}

type stubPersonLookup struct {
	person *models.Person
}

func (s *stubPersonLookup) Get(context.Context, int64) (*models.Person, error) {
	if s.person == nil {
		return nil, appErrors.ErrNotFound
	}
	return s.person, nil
}

func TestAuthHandlerLoginSetsSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &stubAuthService{
		loginResp: &models.LoginResponse{
			AccessToken:  "token-value",
			RefreshToken: "refresh-value",
			Person:       models.PersonInfo{ID: 11, Email: "asha@example.com"},
		},
	}
	handler := NewAuthHandler(service, &stubPersonLookup{}, SessionCookie{Name: "token", MaxAge: 3600})

	recorder, c := postJSON(t, gin.H{"email": "asha@example.com", "password": "secret"})
	handler.Login(c)

	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := recorder.Header().Get("Set-Cookie")
	require.True(t, strings.HasPrefix(cookie, "token=token-value"), "unexpected cookie: %s", cookie)
	require.Contains(t, cookie, "HttpOnly")
}

func TestAuthHandlerLoginFailureNoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &stubAuthService{loginErr: appErrors.ErrInvalidCredentials}
	handler := NewAuthHandler(service, &stubPersonLookup{}, SessionCookie{Name: "token"})

	recorder, c := postJSON(t, gin.H{"email": "asha@example.com", "password": "wrong"})
	handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Empty(t, recorder.Header().Get("Set-Cookie"))
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &stubAuthService{}
	handler := NewAuthHandler(service, &stubPersonLookup{}, SessionCookie{Name: "token"})

	recorder, c := postJSON(t, gin.H{"refresh_token": "refresh-value"})
	c.Set(middleware.ContextPersonKey, &models.JWTClaims{PersonID: 11})
	handler.Logout(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.True(t, service.loggedOut)
	require.Contains(t, recorder.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestAuthHandlerMeRequiresClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&stubAuthService{}, &stubPersonLookup{}, SessionCookie{})

	recorder, c := postJSON(t, nil)
	handler.Me(c)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthHandlerMeReturnsPerson(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lookup := &stubPersonLookup{person: &models.Person{ID: 11, Email: "asha@example.com"}}
	handler := NewAuthHandler(&stubAuthService{}, lookup, SessionCookie{})

	recorder, c := postJSON(t, nil)
	c.Set(middleware.ContextPersonKey, &models.JWTClaims{PersonID: 11})
	handler.Me(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "asha@example.com")
}
