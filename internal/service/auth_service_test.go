package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpcl/league-api/internal/models"
)

type authRepoStub struct {
	people map[string]*models.Person
	byID   map[int64]*models.Person
	tokens map[string]*models.RefreshToken

	revokedIDs []string
	revokedAll []int64
}

func newAuthRepoStub() *authRepoStub {
	return &authRepoStub{
		people: make(map[string]*models.Person),
		byID:   make(map[int64]*models.Person),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (s *authRepoStub) addPerson(person *models.Person) {
	s.people[person.Email] = person
	s.byID[person.ID] = person
}

func (s *authRepoStub) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	if person, ok := s.people[email]; ok {
		return person, nil
	}
	return nil, sql.ErrNoRows
}

func (s *authRepoStub) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	if person, ok := s.byID[id]; ok {
		return person, nil
	}
	return nil, sql.ErrNoRows
}

func (s *authRepoStub) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	s.tokens[token.Token] = token
	return nil
}

func (s *authRepoStub) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if stored, ok := s.tokens[token]; ok {
		return stored, nil
	}
	return nil, sql.ErrNoRows
}

func (s *authRepoStub) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	s.revokedIDs = append(s.revokedIDs, id)
	for _, token := range s.tokens {
		if token.ID == id {
			token.Revoked = true
		}
	}
	return nil
}

func (s *authRepoStub) RevokePersonRefreshTokens(ctx context.Context, personID int64) error {
	s.revokedAll = append(s.revokedAll, personID)
	return nil
}

func newAuthFixture(t *testing.T) (*authRepoStub, *AuthService) {
	t.Helper()
	repo := newAuthRepoStub()
	svc := NewAuthService(repo, nil, nil, AuthConfig{
		AccessTokenSecret:  "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "league-api",
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	repo.addPerson(&models.Person{
		ID:           11,
		FirstName:    "Asha",
		LastName:     "Patel",
		Email:        "asha@example.com",
		PasswordHash: &hashed,
		Role:         models.RoleLeagueRegistrar,
	})
	return repo, svc
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo, svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, int64(11), resp.Person.ID)
	require.Contains(t, repo.tokens, resp.RefreshToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(11), claims.PersonID)
	require.Equal(t, models.RoleLeagueRegistrar, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	require.Error(t, err)
}

func TestAuthServiceLoginNoPasswordSet(t *testing.T) {
	repo, svc := newAuthFixture(t)
	repo.addPerson(&models.Person{ID: 12, Email: "player@example.com", Role: models.RolePlayer})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "player@example.com",
		Password: "anything",
	})
	require.Error(t, err)
}

func TestAuthServiceRefreshRotatesToken(t *testing.T) {
	repo, svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	require.True(t, repo.tokens[login.RefreshToken].Revoked)

	// The used token cannot be replayed.
	_, err = svc.RefreshToken(context.Background(), models.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
}

func TestAuthServiceRefreshExpiredToken(t *testing.T) {
	repo, svc := newAuthFixture(t)
	repo.tokens["stale"] = &models.RefreshToken{
		ID:        "token-1",
		PersonID:  11,
		Token:     "stale",
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}

	_, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: "stale"})
	require.Error(t, err)
}

func TestAuthServiceLogout(t *testing.T) {
	repo, svc := newAuthFixture(t)
	repo.tokens["live"] = &models.RefreshToken{
		ID:        "token-1",
		PersonID:  11,
		Token:     "live",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	require.Error(t, svc.Logout(context.Background(), "live", 99))
	require.NoError(t, svc.Logout(context.Background(), "live", 11))
	require.True(t, repo.tokens["live"].Revoked)
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	_, svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(login.AccessToken + "x")
	require.Error(t, err)
}
