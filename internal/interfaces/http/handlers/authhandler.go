package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userApp "libris/internal/application/user"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// AuthHandler serves the public credential endpoints.
type AuthHandler struct {
	users  *userApp.Service
	logger logger.Interface
}

func NewAuthHandler(users *userApp.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		users:  users,
		logger: log.Named("auth-handler"),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin librarian member"`
	Photo    string `json:"photo"`
}

type credentialResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	u, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, credentialResponse{
		ID:    u.ID,
		Name:  u.Name,
		Role:  string(u.Role),
		Token: token,
	}, "login successful")
}

// Signup registers an account and signs it in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid signup payload")
		return
	}

	u, token, err := h.users.Signup(c.Request.Context(), userApp.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Photo:    req.Photo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, credentialResponse{
		ID:    u.ID,
		Name:  u.Name,
		Role:  string(u.Role),
		Token: token,
	}, "signup successful")
}
