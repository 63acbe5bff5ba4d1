package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pranavks/user_account_app/internal/apperrors"
	"github.com/pranavks/user_account_app/internal/core/domain"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/dto"
	"github.com/pranavks/user_account_app/internal/middleware"
	"github.com/pranavks/user_account_app/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	resetService portssvc.PasswordResetSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		resetService: services.PasswordReset,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", Wrap(h.login))
		auth.POST("/refresh", Wrap(h.refresh))
		auth.POST("/forgot-password", Wrap(h.forgotPassword))
		auth.POST("/reset-password", Wrap(h.resetPassword))
	}
}

// registerSessionRoutes sets up authenticated session management routes.
func registerSessionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)
	rg.POST("/auth/logout", Wrap(h.logout))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns access and refresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) error {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}

	user, err := h.authenticate(c, req)
	if err != nil {
		return err
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return err
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         dto.ToUserResponse(user),
	})
	return nil
}

// authenticate resolves the identifier to a user and verifies the password.
// An email identifier goes through the email lookup; the stored hash is
// checked either way so the error is identical for unknown identifier and
// wrong password.
func (h *authHandler) authenticate(c *gin.Context, req dto.LoginRequest) (*domain.User, error) {
	if !strings.Contains(req.Identifier, "@") {
		return h.userService.AuthenticateUser(c.Request.Context(), req.Identifier, req.Password)
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	ok, err := utils.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh Token"
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) error {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return err
	}
	// Rotate: the new refresh token's digest replaces the old one, so the
	// presented token cannot be replayed.
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
	return nil
}

// logout godoc
// @Summary Logout
// @Description Revokes the caller's stored refresh token.
// @Tags auth
// @Success 204
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) error {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		return apperrors.ErrUnauthorized
	}
	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

// forgotPassword godoc
// @Summary Request password reset
// @Description Generates a one-time reset token for the account, delivered out-of-band.
// @Tags auth
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) error {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, expiresAt, err := h.resetService.InitiatePasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Deliberate downgrade: respond as if the request succeeded so
			// the endpoint cannot be used to probe which emails exist.
			logger.Warn("Password reset requested for unknown email")
			c.Status(http.StatusNoContent)
			return nil
		}
		return err
	}

	// The plaintext token is handed to the delivery channel (email), never to
	// the HTTP response.
	logger.Info("Password reset token issued", slog.Time("expires_at", expiresAt))
	c.Status(http.StatusNoContent)
	return nil
}

// resetPassword godoc
// @Summary Complete password reset
// @Description Consumes a reset token and sets the new password.
// @Tags auth
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) error {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}

	if err := h.resetService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}
