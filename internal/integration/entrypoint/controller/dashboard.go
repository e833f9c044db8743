// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/financy/backend/internal/application/usecase/dashboard"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/integration/entrypoint/dto"
	"github.com/financy/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetSummaryInput{
		UserID: userID,
		Period: ctx.Query("period"),
	}

	if raw := ctx.Query("recent_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "recentLimit must be an integer",
				Code:  string(domainerror.ErrCodeInvalidTransactionInput),
			})
			return
		}
		input.RecentLimit = &limit
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate
// HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var periodErr *domainerror.PeriodError
	if errors.As(err, &periodErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: periodErr.Message,
			Code:  string(periodErr.Code),
		})
		return
	}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	// Inconsistent stored sums are never the caller's fault.
	var moneyErr *domainerror.MoneyError
	if errors.As(err, &moneyErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(moneyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
