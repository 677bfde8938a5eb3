package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userApp "libris/internal/application/user"
	"libris/internal/domain/user"
	"libris/internal/shared/authorization"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// UserHandler serves user administration: listing, profiles, updates.
type UserHandler struct {
	users  *userApp.Service
	logger logger.Interface
}

func NewUserHandler(users *userApp.Service, log logger.Interface) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log.Named("user-handler"),
	}
}

type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin librarian member"`
	Photo    *string `json:"photo"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// List returns users matching the query filters, paginated.
func (h *UserHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	users, err := h.users.List(c.Request.Context(), user.Filter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Email:  c.Query("email"),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

// Get returns one user profile.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, u)
}

// Update applies profile changes to one user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	changes := user.Update{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Photo:    req.Photo,
		Status:   req.Status,
	}
	if req.Role != nil {
		role := authorization.ParseRole(*req.Role)
		changes.Role = &role
	}

	u, err := h.users.Update(c.Request.Context(), id, changes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, u, "user updated")
}

// parseIDParam reads the :id path parameter; on failure it writes the
// error response and reports false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
