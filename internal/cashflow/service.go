package cashflow

import (
	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "transactions"

// Service manages the transaction collection. Unlike the other entity
// kinds there is no placeholder default: an absent snapshot is an empty
// ledger.
type Service struct {
	col *collection.Collection[Transaction]
}

func NewService(store kv.Store) *Service {
	return &Service{col: collection.New[Transaction](store, storageKey, nil)}
}

type CreateParams struct {
	Type          Type
	Description   string
	Amount        int64
	Date          string
	Category      string
	Recurring     bool
	PaymentMethod string
	Status        Status
}

type UpdateParams struct {
	Type          *Type
	Description   *string
	Amount        *int64
	Date          *string
	Category      *string
	Recurring     *bool
	PaymentMethod *string
	Status        *Status
}

type ListFilter struct {
	Type     *Type
	Date     *string
	Category *string
	Status   *Status
}

func (s *Service) Create(params CreateParams) Transaction {
	if params.Status == "" {
		params.Status = StatusCompleted
	}

	return s.col.Create(func(id int) Transaction {
		return Transaction{
			ID:            id,
			Type:          params.Type,
			Description:   params.Description,
			Amount:        params.Amount,
			Date:          params.Date,
			Category:      params.Category,
			Recurring:     params.Recurring,
			PaymentMethod: params.PaymentMethod,
			Status:        params.Status,
		}
	})
}

func (s *Service) Update(id int, params UpdateParams) (Transaction, bool) {
	return s.col.Update(id, func(t Transaction) Transaction {
		if params.Type != nil {
			t.Type = *params.Type
		}

		if params.Description != nil {
			t.Description = *params.Description
		}

		if params.Amount != nil {
			t.Amount = *params.Amount
		}

		if params.Date != nil {
			t.Date = *params.Date
		}

		if params.Category != nil {
			t.Category = *params.Category
		}

		if params.Recurring != nil {
			t.Recurring = *params.Recurring
		}

		if params.PaymentMethod != nil {
			t.PaymentMethod = *params.PaymentMethod
		}

		if params.Status != nil {
			t.Status = *params.Status
		}

		return t
	})
}

func (s *Service) Delete(id int) {
	s.col.Remove(id)
}

func (s *Service) Get(id int) (Transaction, bool) {
	return s.col.Get(id)
}

// List returns transactions matching the filter, in insertion order.
func (s *Service) List(filter ListFilter) []Transaction {
	all := s.col.List()

	matched := make([]Transaction, 0, len(all))

	for _, t := range all {
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}

		if filter.Date != nil && t.Date != *filter.Date {
			continue
		}

		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}

		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}

		matched = append(matched, t)
	}

	return matched
}

// CreateBatch appends one transaction per params entry, in order. Used by
// the statement importer.
func (s *Service) CreateBatch(params []CreateParams) []Transaction {
	txs := make([]Transaction, 0, len(params))

	for _, p := range params {
		txs = append(txs, s.Create(p))
	}

	return txs
}
