package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libris/internal/domain/author"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// AuthorHandler serves author CRUD straight off the repository.
type AuthorHandler struct {
	authors author.Repository
	logger  logger.Interface
}

func NewAuthorHandler(authors author.Repository, log logger.Interface) *AuthorHandler {
	return &AuthorHandler{
		authors: authors,
		logger:  log.Named("author-handler"),
	}
}

type authorRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "author name is required")
		return
	}

	a := &author.Author{Name: req.Name}
	if err := h.authors.Create(c.Request.Context(), a); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, a, "author created")
}

func (h *AuthorHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	authors, err := h.authors.List(c.Request.Context(), author.Filter{
		Name:  c.Query("name"),
		Page:  p.Page,
		Limit: p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, authors)
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	a, err := h.authors.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if a == nil {
		utils.NotFoundResponse(c, "author not found")
		return
	}
	utils.SuccessResponse(c, a)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "author name is required")
		return
	}

	a, err := h.authors.UpdateByID(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if a == nil {
		utils.NotFoundResponse(c, "author not found")
		return
	}
	utils.SuccessResponse(c, a, "author updated")
}

// Delete removes the author together with every book attributed to them.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	a, err := h.authors.DeleteByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if a == nil {
		utils.NotFoundResponse(c, "author not found")
		return
	}
	utils.SuccessResponse(c, a, "author deleted")
}
