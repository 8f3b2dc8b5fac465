package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"centinela/internal/delivery/http/middleware"
	"centinela/internal/delivery/http/validator"
	domainerrors "centinela/internal/domain/errors"
	"centinela/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubAuthUsecase lets each test pin the behavior of a single operation.
type stubAuthUsecase struct {
	registerErr       error
	loginOutput       *usecase.LoginOutput
	loginErr          error
	refreshOutput     *usecase.RefreshTokenOutput
	refreshErr        error
	questions         []string
	questionOutput    *usecase.RecoveryQuestionOutput
	questionErr       error
	verifyAnswerErr   error
	resetPasswordErr  error
	lastRegisterInput *usecase.RegisterInput
}

func (s *stubAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) error {
	s.lastRegisterInput = input

	return s.registerErr
}

func (s *stubAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) RefreshToken(_ context.Context, _ *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return s.refreshOutput, s.refreshErr
}

func (s *stubAuthUsecase) CommonRecoveryQuestions() []string {
	return s.questions
}

func (s *stubAuthUsecase) RecoveryQuestionByUsername(_ context.Context, _ string) (*usecase.RecoveryQuestionOutput, error) {
	return s.questionOutput, s.questionErr
}

func (s *stubAuthUsecase) VerifyRecoveryAnswer(_ context.Context, _ *usecase.VerifyRecoveryAnswerInput) error {
	return s.verifyAnswerErr
}

func (s *stubAuthUsecase) ResetPassword(_ context.Context, _ *usecase.ResetPasswordInput) error {
	return s.resetPasswordErr
}

// newTestServer builds an Echo instance with the production middleware chain
// pieces the handlers rely on: validator and centralized error handler.
func newTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.GET("/", Root)
	e.GET("/health", HealthCheck)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/refresh-token", h.RefreshToken)
	authGroup.GET("/recovery-questions", h.GetCommonRecoveryQuestions)
	authGroup.GET("/recovery-question/:username", h.GetRecoveryQuestionByUsername)
	authGroup.POST("/verify-recovery", h.VerifyRecoveryAnswer)
	authGroup.POST("/reset-password", h.ResetPassword)

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	stub := &stubAuthUsecase{}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secreto123","recoveryQuestion":"¿Cuál es tu ciudad natal?","recoveryAnswer":"Madrid"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario registrado exitosamente.")
	assert.NotNil(t, stub.lastRegisterInput)
	assert.Equal(t, "alice", stub.lastRegisterInput.Username)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthUsecase{}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Faltan datos requeridos.")
	// The validator rejects the payload before the usecase runs.
	assert.Nil(t, stub.lastRegisterInput)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthUsecase{registerErr: domainerrors.ErrUserAlreadyExists}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secreto123","recoveryQuestion":"q","recoveryAnswer":"a"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "El usuario ya existe.")
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Login_OK(t *testing.T) {
	stub := &stubAuthUsecase{
		loginOutput: &usecase.LoginOutput{AccessToken: "acceso-abc", RefreshToken: "renueva-xyz"},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"secreto123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acceso-abc")
	assert.Contains(t, rec.Body.String(), "renueva-xyz")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"mala"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario o contraseña incorrectos.")
}

func TestAuthHandler_RefreshToken_OK(t *testing.T) {
	stub := &stubAuthUsecase{
		refreshOutput: &usecase.RefreshTokenOutput{AccessToken: "acceso-nuevo"},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/refresh-token", `{"refreshToken":"renueva-xyz"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acceso-nuevo")
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	stub := &stubAuthUsecase{refreshErr: domainerrors.ErrInvalidToken}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/refresh-token", `{"refreshToken":"caducado"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Refresh token inválido o expirado.")
}

func TestAuthHandler_GetCommonRecoveryQuestions(t *testing.T) {
	stub := &stubAuthUsecase{questions: []string{"¿Cuál es tu ciudad natal?"}}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodGet, "/auth/recovery-questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "¿Cuál es tu ciudad natal?")
}

func TestAuthHandler_GetRecoveryQuestionByUsername_NotFound(t *testing.T) {
	stub := &stubAuthUsecase{questionErr: domainerrors.ErrUserNotFound}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodGet, "/auth/recovery-question/nadie", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario no encontrado.")
}

func TestAuthHandler_VerifyRecoveryAnswer_Incorrect(t *testing.T) {
	stub := &stubAuthUsecase{verifyAnswerErr: domainerrors.ErrIncorrectAnswer}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/verify-recovery",
		`{"username":"alice","recoveryAnswer":"mala"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Respuesta incorrecta.")
}

func TestAuthHandler_VerifyRecoveryAnswer_OK(t *testing.T) {
	stub := &stubAuthUsecase{}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/verify-recovery",
		`{"username":"alice","recoveryAnswer":"Madrid"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Respuesta correcta. Puedes restablecer tu contraseña.")
}

func TestAuthHandler_ResetPassword_OK(t *testing.T) {
	stub := &stubAuthUsecase{}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/reset-password",
		`{"username":"alice","newPassword":"nuevaClave456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Contraseña actualizada correctamente.")
}

func TestAuthHandler_UnexpectedErrorIsMasked(t *testing.T) {
	stub := &stubAuthUsecase{loginErr: assert.AnError}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"secreto123"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error en el servidor.")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestSystemHandlers(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{})

	rec := doJSON(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Microservicio de Autenticación funcionando")

	rec = doJSON(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{})

	rec := doJSON(e, http.MethodGet, "/no-existe", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
