// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/domain/valueobject"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=80"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Type       string     `json:"type" binding:"required"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	CategoryID *string    `json:"category_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// ClearCategory distinguishes "clear the category" from "leave it alone".
type UpdateTransactionRequest struct {
	Title         *string    `json:"title,omitempty" binding:"omitempty,min=1,max=80"`
	Amount        *float64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Type          *string    `json:"type,omitempty"`
	OccurredAt    *time.Time `json:"occurred_at,omitempty"`
	CategoryID    *string    `json:"category_id,omitempty"`
	ClearCategory bool       `json:"clear_category,omitempty"`
}

// TransactionCategoryResponse represents category information nested inside
// a transaction response.
type TransactionCategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconKey  string `json:"icon_key"`
	ColorKey string `json:"color_key"`
}

// TransactionResponse represents a single transaction in API responses.
// Amount is the decimal units value, always non-negative; Type carries the
// sign contribution.
type TransactionResponse struct {
	ID         string                       `json:"id"`
	Title      string                       `json:"title"`
	Amount     float64                      `json:"amount"`
	Type       string                       `json:"type"`
	OccurredAt time.Time                    `json:"occurred_at"`
	CategoryID *string                      `json:"category_id,omitempty"`
	Category   *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// TransactionPeriodResponse is one calendar month holding transactions.
type TransactionPeriodResponse struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}

// TransactionPeriodListResponse represents the response for listing periods.
type TransactionPeriodListResponse struct {
	Periods []TransactionPeriodResponse `json:"periods"`
}

// ToTransactionResponse converts a transaction and its optional category to
// a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction, category *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:         transaction.ID.String(),
		Title:      transaction.Title,
		Amount:     valueobject.FromCents(transaction.AmountCents).InexactFloat64(),
		Type:       string(transaction.Type),
		OccurredAt: transaction.OccurredAt,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}

	if transaction.CategoryID != nil {
		id := transaction.CategoryID.String()
		response.CategoryID = &id
	}

	if category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:       category.ID.String(),
			Name:     category.Name,
			IconKey:  category.IconKey,
			ColorKey: category.ColorKey,
		}
	}

	return response
}
