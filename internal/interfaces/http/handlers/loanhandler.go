package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	loanApp "libris/internal/application/loan"
	"libris/internal/domain/loan"
	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// LoanHandler serves the loan lifecycle endpoints and the xlsx export.
type LoanHandler struct {
	loans  *loanApp.Service
	logger logger.Interface
}

func NewLoanHandler(loans *loanApp.Service, log logger.Interface) *LoanHandler {
	return &LoanHandler{
		loans:  loans,
		logger: log.Named("loan-handler"),
	}
}

type createLoanRequest struct {
	Books       []uint    `json:"books" binding:"required,min=1"`
	ReceiveDate time.Time `json:"receiveDate"`
	ReturnDate  time.Time `json:"returnDate"`
}

// updateLoanRequest deliberately has no member field: a loan cannot be
// moved to another member.
type updateLoanRequest struct {
	Books       []uint     `json:"books"`
	ReceiveDate *time.Time `json:"receiveDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending accept reject return"`
}

// Create opens a pending loan for the authenticated member.
func (h *LoanHandler) Create(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "books list is required")
		return
	}

	memberID := authenticatedUserID(c)
	if memberID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	l, err := h.loans.Create(c.Request.Context(), memberID, loanApp.CreateInput{
		Books:       req.Books,
		ReceiveDate: req.ReceiveDate,
		ReturnDate:  req.ReturnDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, l, "loan requested")
}

func (h *LoanHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	filter := loan.Filter{
		Status: c.Query("status"),
		Page:   p.Page,
		Limit:  p.Limit,
	}
	if raw := c.Query("memberId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.MemberID = uint(id)
		}
	}

	loans, err := h.loans.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, loans)
}

func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	l, err := h.loans.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, l)
}

// Update applies loan changes; an accept or return status transition
// flips the availability of every book on the loan.
func (h *LoanHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid loan payload")
		return
	}

	l, err := h.loans.Update(c.Request.Context(), id, loan.Update{
		Books:       req.Books,
		ReceiveDate: req.ReceiveDate,
		ReturnDate:  req.ReturnDate,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, l, "loan updated")
}

func (h *LoanHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.loans.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, nil, "loan deleted")
}

// Export streams the loan report workbook as a file download.
func (h *LoanHandler) Export(c *gin.Context) {
	data, filename, err := h.loans.Export(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// authenticatedUserID reads the user id the gate stamped into the context.
func authenticatedUserID(c *gin.Context) uint {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}
