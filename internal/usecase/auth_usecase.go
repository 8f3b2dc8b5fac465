// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password" validate:"required"`
	RecoveryQuestion string `json:"recoveryQuestion" validate:"required"`
	RecoveryAnswer   string `json:"recoveryAnswer" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token presented to mint a new access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// VerifyRecoveryAnswerInput defines the data for the recovery-answer challenge.
type VerifyRecoveryAnswerInput struct {
	Username       string `json:"username" validate:"required"`
	RecoveryAnswer string `json:"recoveryAnswer" validate:"required"`
}

// ResetPasswordInput defines the data required to set a new password.
type ResetPasswordInput struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenOutput returns the freshly minted access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"accessToken"`
}

// RecoveryQuestionOutput returns the security question stored for a user.
type RecoveryQuestionOutput struct {
	RecoveryQuestion string `json:"recoveryQuestion"`
}

// AuthUsecase defines the interface for authentication and account-recovery
// operations. This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues an access and a refresh token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	// The refresh token itself is not reissued.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// CommonRecoveryQuestions returns the fixed set of template security questions.
	CommonRecoveryQuestions() []string

	// RecoveryQuestionByUsername returns the security question stored for a user.
	RecoveryQuestionByUsername(ctx context.Context, username string) (*RecoveryQuestionOutput, error)

	// VerifyRecoveryAnswer checks the recovery answer; success signals the
	// caller may proceed to ResetPassword. No ticket binds the two steps.
	VerifyRecoveryAnswer(ctx context.Context, input *VerifyRecoveryAnswerInput) error

	// ResetPassword replaces the stored password hash with one for the new password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
