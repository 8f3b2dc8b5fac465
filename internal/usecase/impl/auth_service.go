// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"centinela/internal/domain/entity"
	domainerrors "centinela/internal/domain/errors"
	"centinela/internal/domain/repository"
	"centinela/internal/domain/service"
	"centinela/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commonRecoveryQuestions is the fixed set of template security questions
// offered at registration. Membership is not enforced on the stored question.
var commonRecoveryQuestions = []string{
	"¿Cuál es el nombre de tu primera mascota?",
	"¿Cuál es tu ciudad natal?",
	"¿Cuál es el nombre de tu escuela primaria?",
	"¿Cuál es tu comida favorita?",
	"¿Cuál es el nombre de tu mejor amigo de la infancia?",
}

// authService implements the AuthUsecase interface. It holds no mutable state
// between calls; everything lives in the credential store.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.SecretHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.SecretHasher
	Tokens   service.TokenService
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

// normalizeUsername lowercases the login identifier so lookups and the unique
// index agree on one canonical form.
func normalizeUsername(username string) string {
	return strings.ToLower(username)
}

// Register creates a new account after hashing the password and the lowercased
// recovery answer. The existence check gives the friendly conflict answer; the
// store's unique index settles concurrent registrations for the same username.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || input.Username == "" || input.Password == "" ||
		input.RecoveryQuestion == "" || input.RecoveryAnswer == "" {
		return domainerrors.ErrMissingFields
	}

	username := normalizeUsername(input.Username)
	srv.logger.Debug("Starting registration", slog.String("username", username))

	_, err := srv.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check username availability", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to check username availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password")
	}

	answerHash, err := srv.hasher.Hash(strings.ToLower(input.RecoveryAnswer))
	if err != nil {
		srv.logger.Error("Failed to hash recovery answer during registration", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash recovery answer")
	}

	newUser := &entity.User{
		Username:           username,
		PasswordHash:       passwordHash,
		RecoveryQuestion:   input.RecoveryQuestion,
		RecoveryAnswerHash: answerHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration can win the unique index after our
		// existence check passed; both paths report the same conflict.
		if errors.Is(err, repository.ErrUsernameTaken) {
			return domainerrors.ErrUserAlreadyExists
		}
		srv.logger.Error("Failed to create user", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User registered", slog.String("username", username), slog.Any("userID", newUser.ID))

	return nil
}

// Login verifies the credentials and issues one access and one refresh token.
// Unknown username and wrong password produce the identical outcome so the
// response cannot be used to enumerate accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingLoginFields
	}

	username := normalizeUsername(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.logger.Error("Failed to load user for login", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokens.Issue(user.ID, user.Username, srv.tokens.AccessTokenDuration())
	if err != nil {
		srv.logger.Error("Failed to issue access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokens.Issue(user.ID, user.Username, srv.tokens.RefreshTokenDuration())
	if err != nil {
		srv.logger.Error("Failed to issue refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken verifies the presented refresh token and mints a new access
// token carrying the same subject claims. Issuance is stateless; there is no
// revocation set to consult.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, domainerrors.ErrMissingToken
	}

	claims, err := srv.tokens.Verify(input.RefreshToken)
	if err != nil {
		srv.logger.Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		srv.logger.Warn("Refresh token carried malformed subject", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	accessToken, err := srv.tokens.Issue(userID, claims.Username, srv.tokens.AccessTokenDuration())
	if err != nil {
		srv.logger.Error("Failed to issue access token on refresh", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token on refresh")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// CommonRecoveryQuestions returns the template security questions. Pure and
// stateless; no store access.
func (srv *authService) CommonRecoveryQuestions() []string {
	questions := make([]string, len(commonRecoveryQuestions))
	copy(questions, commonRecoveryQuestions)

	return questions
}

// RecoveryQuestionByUsername returns the stored security question. The lookup
// requires no authentication, matching the public recovery flow of the API.
func (srv *authService) RecoveryQuestionByUsername(ctx context.Context, username string) (*usecase.RecoveryQuestionOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.logger.Error("Failed to load recovery question", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load recovery question")
	}

	return &usecase.RecoveryQuestionOutput{RecoveryQuestion: user.RecoveryQuestion}, nil
}

// VerifyRecoveryAnswer checks the lowercased answer against the stored digest.
// Success carries no ticket: the follow-up ResetPassword call is not bound to
// this verification.
func (srv *authService) VerifyRecoveryAnswer(ctx context.Context, input *usecase.VerifyRecoveryAnswerInput) error {
	if input == nil || input.Username == "" || input.RecoveryAnswer == "" {
		return domainerrors.ErrMissingRecoveryFields
	}

	username := normalizeUsername(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		srv.logger.Error("Failed to load user for recovery", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to load user for recovery")
	}

	if !srv.hasher.Check(strings.ToLower(input.RecoveryAnswer), user.RecoveryAnswerHash) {
		srv.logger.Warn("Recovery answer mismatch", slog.String("username", username))

		return domainerrors.ErrIncorrectAnswer
	}

	return nil
}

// ResetPassword hashes the new password and overwrites the stored digest.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input == nil || input.Username == "" || input.NewPassword == "" {
		return domainerrors.ErrMissingFields
	}

	username := normalizeUsername(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		srv.logger.Error("Failed to load user for password reset", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to load user for password reset")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.logger.Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = passwordHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Error("Failed to persist new password", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist new password")
	}

	srv.logger.Info("Password reset", slog.String("username", username))

	return nil
}
