package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"centinela/internal/domain/entity"
	domainerrors "centinela/internal/domain/errors"
	"centinela/internal/domain/repository"
	"centinela/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository keyed by the stored username.
type fakeUserRepo struct {
	users map[string]*entity.User

	// Error overrides for simulating store failures.
	findErr   error
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrUsernameTaken
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	cloned := *user
	r.users[user.Username] = &cloned

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.Username]; !ok {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	cloned := *user
	r.users[user.Username] = &cloned

	return nil
}

// fakeHasher is a transparent stand-in for bcrypt so assertions can inspect
// what was hashed without paying for real key stretching.
type fakeHasher struct{}

func (fakeHasher) Hash(secret string) (string, error) {
	return "hashed:" + secret, nil
}

func (fakeHasher) Check(secret, digest string) bool {
	return digest == "hashed:"+secret
}

// fakeTokenService records every issued token so tests can assert on the
// claims and lifetime behind an opaque token string.
type fakeTokenService struct {
	issued    map[string]*service.Claims
	lifetimes map[string]time.Duration
	seq       int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		issued:    make(map[string]*service.Claims),
		lifetimes: make(map[string]time.Duration),
	}
}

func (s *fakeTokenService) Issue(userID uuid.UUID, username string, ttl time.Duration) (string, error) {
	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.issued[token] = &service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	s.lifetimes[token] = ttl

	return token, nil
}

func (s *fakeTokenService) Verify(token string) (*service.Claims, error) {
	claims, ok := s.issued[token]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return 15 * time.Minute
}

func (s *fakeTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  *authService
	userRepo *fakeUserRepo
	tokens   *fakeTokenService
}

func createTestAuthService() authServiceFixtures {
	userRepo := newFakeUserRepo()
	tokens := newFakeTokenService()

	svc := &authService{
		userRepo: userRepo,
		hasher:   fakeHasher{},
		tokens:   tokens,
		logger:   newDiscardLogger(),
	}

	return authServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		tokens:   tokens,
	}
}
