package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/i18n"
	"github.com/freteops/frete-service/internal/middleware"
	"github.com/freteops/frete-service/internal/repository"
	"github.com/freteops/frete-service/internal/service"
)

// UserHandler provides HTTP handlers for admin user management.
type UserHandler struct {
	userRepo    repository.UserRepositoryInterface
	authService service.AuthService
}

// NewUserHandler creates a new user management handler.
func NewUserHandler(userRepo repository.UserRepositoryInterface, authService service.AuthService) *UserHandler {
	return &UserHandler{
		userRepo:    userRepo,
		authService: authService,
	}
}

// ListUsers handles GET /api/users requests.
//
// @Summary      List users
// @Description  Lists user accounts with pagination. Admin only.
// @Tags         Users
// @Produce      json
// @Param        limit query int false "Page size (default 50)"
// @Param        skip query int false "Offset"
// @Success      200 {object} dto.SuccessResponse "Users"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := int64(50)
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	var skip int64
	if v := c.Query("skip"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			skip = parsed
		}
	}

	users, err := h.userRepo.List(c.Request.Context(), bson.M{}, limit, skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.UserResponse{
			ID:             user.ID.Hex(),
			Email:          user.Email,
			Name:           user.Name,
			Role:           user.Role,
			EmailConfirmed: user.EmailConfirmed,
			Active:         user.Active,
		})
	}

	builder.SuccessOK(responses)
}

// UpdateUser handles PATCH /api/users/{id} requests.
//
// @Summary      Update a user
// @Description  Updates name, role, active flag or email confirmation. Demoting or deactivating a user invalidates their tokens. Admin only.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body dto.UpdateUserRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated user"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown user"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, "id: invalid user id", err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if user == nil {
		message := i18n.GetTranslator().Translate(i18n.ErrKeyNotFound, locale)
		builder.ErrorWithMessage(http.StatusNotFound, message, nil)
		return
	}

	// A demotion or deactivation must not leave live tokens behind.
	revokeTokens := false
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil && *req.Role != user.Role {
		user.Role = *req.Role
		revokeTokens = true
	}
	if req.Active != nil && *req.Active != user.Active {
		user.Active = *req.Active
		if !user.Active {
			revokeTokens = true
		}
	}
	if req.EmailConfirmed != nil {
		user.EmailConfirmed = *req.EmailConfirmed
	}

	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if revokeTokens {
		if err := h.authService.InvalidateUserTokens(c.Request.Context(), user.ID); err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_user", "User account updated", map[string]interface{}{
				"target_user":    user.ID.Hex(),
				"tokens_revoked": revokeTokens,
			})
		}
	}

	builder.SuccessOK(dto.UserResponse{
		ID:             user.ID.Hex(),
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role,
		EmailConfirmed: user.EmailConfirmed,
		Active:         user.Active,
	})
}
