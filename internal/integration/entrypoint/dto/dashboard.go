// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financy/backend/internal/application/usecase/dashboard"
)

// DashboardCategoryResponse is one category's aggregated view for the
// period. Total is signed; Income and Expense are non-negative.
type DashboardCategoryResponse struct {
	Category          CategoryResponse `json:"category"`
	TransactionsCount int64            `json:"transactions_count"`
	Total             float64          `json:"total"`
	Income            float64          `json:"income"`
	Expense           float64          `json:"expense"`
}

// DashboardSummaryResponse represents the consolidated dashboard view.
type DashboardSummaryResponse struct {
	Period             string                      `json:"period"`
	BalanceTotal       float64                     `json:"balance_total"`
	MonthIncome        float64                     `json:"month_income"`
	MonthExpense       float64                     `json:"month_expense"`
	RecentTransactions []TransactionResponse       `json:"recent_transactions"`
	Categories         []DashboardCategoryResponse `json:"categories"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to its response DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(t.Transaction, t.Category)
	}

	categories := make([]DashboardCategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = DashboardCategoryResponse{
			Category:          ToCategoryResponse(c.Category),
			TransactionsCount: c.TransactionsCount,
			Total:             c.Total.InexactFloat64(),
			Income:            c.Income.InexactFloat64(),
			Expense:           c.Expense.InexactFloat64(),
		}
	}

	return DashboardSummaryResponse{
		Period:             output.Period,
		BalanceTotal:       output.BalanceTotal.InexactFloat64(),
		MonthIncome:        output.MonthIncome.InexactFloat64(),
		MonthExpense:       output.MonthExpense.InexactFloat64(),
		RecentTransactions: recent,
		Categories:         categories,
	}
}
