// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"centinela/internal/delivery/http/response"
	domainerrors "centinela/internal/domain/errors"
	"centinela/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
//
//	@Summary	Registrar un nuevo usuario
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		usecase.RegisterInput	true	"Datos de registro"
//	@Success	201		{object}	response.Response
//	@Failure	400		{object}	response.Response
//	@Failure	409		{object}	response.Response
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WithDetails("invalid request payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Usuario registrado exitosamente.")
}

// Login handles the credential check and token issuance request.
//
//	@Summary	Iniciar sesión
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		usecase.LoginInput	true	"Credenciales"
//	@Success	200		{object}	response.Response{data=usecase.LoginOutput}
//	@Failure	400		{object}	response.Response
//	@Failure	401		{object}	response.Response
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingLoginFields.WithDetails("invalid request payload")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Autenticación exitosa.")
}

// RefreshToken handles the access-token renewal request.
//
//	@Summary	Renovar el token de acceso
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		usecase.RefreshTokenInput	true	"Refresh token vigente"
//	@Success	200		{object}	response.Response{data=usecase.RefreshTokenOutput}
//	@Failure	401		{object}	response.Response
//	@Router		/auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingToken.WithDetails("invalid request payload")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token renovado correctamente.")
}

// GetCommonRecoveryQuestions returns the template security questions offered
// at registration.
//
//	@Summary	Obtener preguntas comunes de recuperación
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	response.Response{data=[]string}
//	@Router		/auth/recovery-questions [get]
func (h *AuthHandler) GetCommonRecoveryQuestions(c echo.Context) error {
	questions := h.uc.CommonRecoveryQuestions()

	return response.Success(c, http.StatusOK, questions, "Preguntas de seguridad disponibles.")
}

// GetRecoveryQuestionByUsername returns the security question stored for one
// account. The endpoint is public; it backs the first step of the recovery flow.
//
//	@Summary	Obtener la pregunta de seguridad de un usuario
//	@Tags		auth
//	@Produce	json
//	@Param		username	path		string	true	"Nombre de usuario"
//	@Success	200			{object}	response.Response{data=usecase.RecoveryQuestionOutput}
//	@Failure	404			{object}	response.Response
//	@Router		/auth/recovery-question/{username} [get]
func (h *AuthHandler) GetRecoveryQuestionByUsername(c echo.Context) error {
	username := c.Param("username")

	output, err := h.uc.RecoveryQuestionByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Pregunta de seguridad encontrada.")
}

// VerifyRecoveryAnswer handles the recovery-answer challenge.
//
//	@Summary	Verificar la respuesta de seguridad
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		usecase.VerifyRecoveryAnswerInput	true	"Usuario y respuesta"
//	@Success	200		{object}	response.Response
//	@Failure	400		{object}	response.Response
//	@Failure	401		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Router		/auth/verify-recovery [post]
func (h *AuthHandler) VerifyRecoveryAnswer(c echo.Context) error {
	var input *usecase.VerifyRecoveryAnswerInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingRecoveryFields.WithDetails("invalid request payload")
	}

	if err := h.uc.VerifyRecoveryAnswer(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Respuesta correcta. Puedes restablecer tu contraseña.")
}

// ResetPassword handles the password replacement request.
//
//	@Summary	Restablecer la contraseña
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		usecase.ResetPasswordInput	true	"Usuario y nueva contraseña"
//	@Success	200		{object}	response.Response
//	@Failure	400		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Router		/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WithDetails("invalid request payload")
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada correctamente.")
}
