package deadline

import (
	"time"

	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "deadlines"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Deadline struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	DueDate    string   `json:"dueDate"`
	Priority   Priority `json:"priority"`
	Status     string   `json:"status"`
	AssignedTo string   `json:"assignedTo"`
}

func (d Deadline) EntityID() int { return d.ID }

func Defaults() []Deadline {
	return []Deadline{
		{
			ID:       1,
			DueDate:  time.Now().Format(time.DateOnly),
			Priority: PriorityMedium,
			Status:   "Pendente",
		},
	}
}

type Service struct {
	col *collection.Collection[Deadline]
}

func NewService(store kv.Store) *Service {
	return &Service{col: collection.New(store, storageKey, Defaults())}
}

type CreateParams struct {
	Title      string
	DueDate    string
	Priority   Priority
	Status     string
	AssignedTo string
}

type UpdateParams struct {
	Title      *string
	DueDate    *string
	Priority   *Priority
	Status     *string
	AssignedTo *string
}

func (s *Service) Create(params CreateParams) Deadline {
	if params.Priority == "" {
		params.Priority = PriorityMedium
	}

	if params.Status == "" {
		params.Status = "Pendente"
	}

	return s.col.Create(func(id int) Deadline {
		return Deadline{
			ID:         id,
			Title:      params.Title,
			DueDate:    params.DueDate,
			Priority:   params.Priority,
			Status:     params.Status,
			AssignedTo: params.AssignedTo,
		}
	})
}

func (s *Service) Update(id int, params UpdateParams) (Deadline, bool) {
	return s.col.Update(id, func(d Deadline) Deadline {
		if params.Title != nil {
			d.Title = *params.Title
		}

		if params.DueDate != nil {
			d.DueDate = *params.DueDate
		}

		if params.Priority != nil {
			d.Priority = *params.Priority
		}

		if params.Status != nil {
			d.Status = *params.Status
		}

		if params.AssignedTo != nil {
			d.AssignedTo = *params.AssignedTo
		}

		return d
	})
}

func (s *Service) Delete(id int) {
	s.col.Remove(id)
}

func (s *Service) Get(id int) (Deadline, bool) {
	return s.col.Get(id)
}

func (s *Service) List() []Deadline {
	return s.col.List()
}
