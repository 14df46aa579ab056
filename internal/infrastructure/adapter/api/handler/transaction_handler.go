package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	payload, err := decodeObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: []string{msgBodyNotObject}})
		return
	}

	tx, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), payload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: dto.NewTransactionDTO(tx)})
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	filter, problem := parseListFilter(c)
	if problem != "" {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: []string{problem}})
		return
	}

	page, err := h.transactionUseCase.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

// GetTransaction handles GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	tx, err := h.transactionUseCase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: dto.NewTransactionDTO(tx)})
}

// UpdateTransaction handles PUT /transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	payload, err := decodeObject(c)
	if err != nil {
		// The id is still checked first so a missing record wins over a bad body
		if _, getErr := h.transactionUseCase.GetTransaction(c.Request.Context(), id); getErr != nil {
			respondError(c, h.logger, getErr)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: []string{msgBodyNotObject}})
		return
	}

	tx, err := h.transactionUseCase.UpdateTransaction(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: dto.NewTransactionDTO(tx)})
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	tx, err := h.transactionUseCase.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Message:     "Transaction deleted",
		Transaction: dto.NewTransactionDTO(tx),
	})
}

// listQuery is the raw query string of GET /transactions. Values stay
// strings so malformed numbers can fall back to defaults instead of failing
// the bind; the total bounds are pointers to tell "absent" from "empty".
type listQuery struct {
	ProductID  string  `form:"product_id"`
	CustomerID string  `form:"customer_id"`
	StartDate  string  `form:"start_date"`
	EndDate    string  `form:"end_date"`
	MinTotal   *string `form:"min_total"`
	MaxTotal   *string `form:"max_total"`
	Limit      string  `form:"limit"`
	Offset     string  `form:"offset"`
}

// parseListFilter builds a filter from the query string.
// It returns a client-facing message for malformed date or total bounds;
// malformed limit and offset fall back to their defaults.
func parseListFilter(c *gin.Context) (entity.TransactionFilter, string) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return entity.TransactionFilter{}, err.Error()
	}

	filter := entity.TransactionFilter{
		ProductID:  strings.TrimSpace(q.ProductID),
		CustomerID: strings.TrimSpace(q.CustomerID),
	}

	for _, bound := range []struct {
		param  string
		raw    string
		target **time.Time
	}{
		{"start_date", q.StartDate, &filter.StartDate},
		{"end_date", q.EndDate, &filter.EndDate},
	} {
		if bound.raw == "" {
			continue
		}
		ts, err := entity.ParseTimestamp(bound.raw)
		if err != nil {
			return filter, bound.param + " must be ISO 8601"
		}
		*bound.target = &ts
	}

	for _, bound := range []struct {
		raw    *string
		target **float64
	}{
		{q.MinTotal, &filter.MinTotal},
		{q.MaxTotal, &filter.MaxTotal},
	} {
		if bound.raw == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(*bound.raw), 64)
		if err != nil {
			return filter, "min_total/max_total must be numbers"
		}
		*bound.target = &v
	}

	if limit, err := strconv.Atoi(q.Limit); err == nil && limit >= 0 {
		filter.Limit = &limit
	}
	if offset, err := strconv.Atoi(q.Offset); err == nil {
		filter.Offset = offset
	}

	return filter, ""
}
