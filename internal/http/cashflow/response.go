package cashflow

import (
	"github.com/dmafra/gestor/internal/cashflow"
)

type transactionResponse struct {
	ID            int             `json:"id"`
	Type          cashflow.Type   `json:"type"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Recurring     bool            `json:"recurring"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        cashflow.Status `json:"status"`
}

type summaryResponse struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toResponse(tx cashflow.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Description:   tx.Description,
		Amount:        tx.Amount,
		Date:          tx.Date,
		Category:      tx.Category,
		Recurring:     tx.Recurring,
		PaymentMethod: tx.PaymentMethod,
		Status:        tx.Status,
	}
}

func toResponseList(txs []cashflow.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toCategoryList(categories []cashflow.Category) []categoryResponse {
	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = categoryResponse{ID: c.ID, Name: c.Name}
	}

	return resp
}
