package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavks/user_account_app/internal/apperrors"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/dto"
	"github.com/pranavks/user_account_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", Wrap(h.listUsers)) // Admin only
		users.GET("/me", Wrap(h.getMe))
		users.GET("/:id", Wrap(h.getUser))    // Own or admin
		users.PUT("/:id", Wrap(h.updateUser)) // Own only
	}
}

// requester loads the authenticated user making the request.
func (h *userHandler) requester(c *gin.Context) (string, error) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getMe godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile projection.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) error {
	userID, err := h.requester(c)
	if err != nil {
		return err
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
	return nil
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves a user; callers may read their own record, admins may read any.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) error {
	requesterID, err := h.requester(c)
	if err != nil {
		return err
	}
	targetID := c.Param("id")

	if requesterID != targetID {
		requester, err := h.userService.GetUserByID(c.Request.Context(), requesterID)
		if err != nil {
			return err
		}
		if !requester.IsAdmin() {
			return apperrors.ErrForbidden
		}
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
	return nil
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users. Admin only.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) error {
	requesterID, err := h.requester(c)
	if err != nil {
		return err
	}
	requester, err := h.userService.GetUserByID(c.Request.Context(), requesterID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return apperrors.ErrForbidden
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return fmt.Errorf("%w: invalid query parameters", apperrors.ErrValidation)
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
	return nil
}

// updateUser godoc
// @Summary Update a user
// @Description Updates profile fields; a new password triggers a rehash, an omitted one leaves the stored hash untouched.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) error {
	requesterID, err := h.requester(c)
	if err != nil {
		return err
	}
	targetID := c.Param("id")
	if requesterID != targetID {
		return apperrors.ErrForbidden
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), targetID, req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
	return nil
}
