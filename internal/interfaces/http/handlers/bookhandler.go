package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"libris/internal/domain/book"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// BookHandler serves book CRUD straight off the repository.
type BookHandler struct {
	books  book.Repository
	logger logger.Interface
}

func NewBookHandler(books book.Repository, log logger.Interface) *BookHandler {
	return &BookHandler{
		books:  books,
		logger: log.Named("book-handler"),
	}
}

type createBookRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	AuthorID uint   `json:"authorId" binding:"required"`
	Genre    string `json:"genre"`
}

type updateBookRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	AuthorID *uint   `json:"authorId"`
	Genre    *string `json:"genre"`
	Status   *string `json:"status" binding:"omitempty,oneof=available borrowed"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "book name and authorId are required")
		return
	}

	b := &book.Book{
		Name:     req.Name,
		AuthorID: req.AuthorID,
		Genre:    req.Genre,
		Status:   book.StatusAvailable,
	}
	if err := h.books.Create(c.Request.Context(), b); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, b, "book created")
}

func (h *BookHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	filter := book.Filter{
		Genre:  c.Query("genre"),
		Status: c.Query("status"),
		Page:   p.Page,
		Limit:  p.Limit,
	}
	if raw := c.Query("authorId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.AuthorID = uint(id)
		}
	}

	books, err := h.books.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, books)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	b, err := h.books.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if b == nil {
		utils.NotFoundResponse(c, "book not found")
		return
	}
	utils.SuccessResponse(c, b)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid book payload")
		return
	}

	b, err := h.books.UpdateByID(c.Request.Context(), id, book.Update{
		Name:     req.Name,
		AuthorID: req.AuthorID,
		Genre:    req.Genre,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if b == nil {
		utils.NotFoundResponse(c, "book not found")
		return
	}
	utils.SuccessResponse(c, b, "book updated")
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	b, err := h.books.DeleteByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if b == nil {
		utils.NotFoundResponse(c, "book not found")
		return
	}
	utils.SuccessResponse(c, b, "book deleted")
}
