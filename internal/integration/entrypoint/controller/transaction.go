// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/usecase/transaction"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/integration/entrypoint/dto"
	"github.com/financy/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase        *transaction.ListTransactionsUseCase
	createUseCase      *transaction.CreateTransactionUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	listPeriodsUseCase *transaction.ListPeriodsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listPeriodsUseCase *transaction.ListPeriodsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		listPeriodsUseCase: listPeriodsUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	query := transaction.Query{
		Search:     ctx.Query("search"),
		Type:       ctx.Query("type"),
		CategoryID: ctx.Query("category_id"),
		Period:     ctx.Query("period"),
	}

	page, err := optionalIntQuery(ctx, "page")
	if err != nil {
		respondInvalidPagination(ctx)
		return
	}
	query.Page = page

	perPage, err := optionalIntQuery(ctx, "per_page")
	if err != nil {
		respondInvalidPagination(ctx)
		return
	}
	query.PerPage = perPage

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Query:  query,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponse, len(output.Items))
	for i, item := range output.Items {
		transactions[i] = dto.ToTransactionResponse(item.Transaction, item.Category)
	}

	effectivePage := 1
	if query.Page != nil {
		effectivePage = *query.Page
	}
	effectivePerPage := transaction.DefaultPerPage
	if query.PerPage != nil {
		effectivePerPage = *query.PerPage
		if effectivePerPage > transaction.MaxPerPage {
			effectivePerPage = transaction.MaxPerPage
		}
	}
	totalPages := int((output.Total + int64(effectivePerPage) - 1) / int64(effectivePerPage))
	if totalPages == 0 {
		totalPages = 1
	}

	ctx.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Pagination: dto.TransactionPaginationResponse{
			Page:       effectivePage,
			PerPage:    effectivePerPage,
			Total:      output.Total,
			TotalPages: totalPages,
		},
	})
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTransactionInput),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:     userID,
		Title:      req.Title,
		Amount:     req.Amount,
		Type:       entity.TransactionType(req.Type),
		OccurredAt: req.OccurredAt,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid categoryId",
				Code:  string(domainerror.ErrCodeTxnCategoryInvalid),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondTransactionNotFound(ctx)
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTransactionInput),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:         id,
		UserID:     userID,
		Title:      req.Title,
		Amount:     req.Amount,
		OccurredAt: req.OccurredAt,
	}

	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	if req.ClearCategory {
		input.SetCategory = true
	} else if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid categoryId",
				Code:  string(domainerror.ErrCodeTxnCategoryInvalid),
			})
			return
		}
		input.SetCategory = true
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondTransactionNotFound(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		ID:     id,
		UserID: userID,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Transaction deleted",
	})
}

// ListPeriods handles GET /transactions/periods requests.
func (c *TransactionController) ListPeriods(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listPeriodsUseCase.Execute(ctx.Request.Context(), transaction.ListPeriodsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	periods := make([]dto.TransactionPeriodResponse, len(output.Periods))
	for i, p := range output.Periods {
		periods[i] = dto.TransactionPeriodResponse{
			Period: p.Period,
			Count:  p.Count,
		}
	}

	ctx.JSON(http.StatusOK, dto.TransactionPeriodListResponse{
		Periods: periods,
	})
}

// handleTransactionError handles transaction, money, and period errors and
// returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		status := http.StatusBadRequest
		if transactionErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	var moneyErr *domainerror.MoneyError
	if errors.As(err, &moneyErr) {
		// Stored-data inconsistencies are server faults; only caller input
		// problems surface as 400.
		status := http.StatusBadRequest
		if moneyErr.Code == domainerror.ErrCodeInternalInconsistency {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: moneyErr.Message,
			Code:  string(moneyErr.Code),
		})
		return
	}

	var periodErr *domainerror.PeriodError
	if errors.As(err, &periodErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: periodErr.Message,
			Code:  string(periodErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		respondTransactionNotFound(ctx)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// optionalIntQuery parses an optional integer query parameter. A missing
// parameter returns nil; a malformed one returns an error.
func optionalIntQuery(ctx *gin.Context, name string) (*int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func respondInvalidPagination(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "page and perPage must be integers",
		Code:  string(domainerror.ErrCodeInvalidPagination),
	})
}

func respondTransactionNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Transaction not found",
		Code:  string(domainerror.ErrCodeTransactionNotFound),
	})
}
