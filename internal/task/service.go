package task

import (
	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "tasks"

type Service struct {
	col *collection.Collection[Task]
}

func NewService(store kv.Store) *Service {
	return &Service{col: collection.New(store, storageKey, Defaults())}
}

type CreateParams struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Category    Category
}

// UpdateParams deliberately has no completed field: the edit path may
// recategorize a task but only the toggle flips completion.
type UpdateParams struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Category    *Category
}

func (s *Service) Create(params CreateParams) Task {
	if params.Priority == "" {
		params.Priority = PriorityMedium
	}

	if params.Category == "" {
		params.Category = CategoryPending
	}

	return s.col.Create(func(id int) Task {
		return Task{
			ID:          id,
			Title:       params.Title,
			Description: params.Description,
			DueDate:     params.DueDate,
			Completed:   false,
			Priority:    params.Priority,
			Category:    params.Category,
		}
	})
}

func (s *Service) Update(id int, params UpdateParams) (Task, bool) {
	return s.col.Update(id, func(t Task) Task {
		if params.Title != nil {
			t.Title = *params.Title
		}

		if params.Description != nil {
			t.Description = *params.Description
		}

		if params.DueDate != nil {
			t.DueDate = *params.DueDate
		}

		if params.Priority != nil {
			t.Priority = *params.Priority
		}

		if params.Category != nil {
			t.Category = *params.Category
		}

		return t
	})
}

// Toggle flips the completed flag and forces the category to match:
// completed when the task becomes done, pending when it becomes open. A
// task toggled out of completion lands in pending even if it was
// inProgress before being completed; the inProgress state is reachable
// again only through an edit.
func (s *Service) Toggle(id int) (Task, bool) {
	return s.col.Update(id, func(t Task) Task {
		t.Completed = !t.Completed

		if t.Completed {
			t.Category = CategoryCompleted
		} else {
			t.Category = CategoryPending
		}

		return t
	})
}

func (s *Service) Delete(id int) {
	s.col.Remove(id)
}

func (s *Service) Get(id int) (Task, bool) {
	return s.col.Get(id)
}

func (s *Service) List() []Task {
	return s.col.List()
}

// ListByCategory returns the tasks in one board section, preserving
// insertion order.
func (s *Service) ListByCategory(category Category) []Task {
	all := s.col.List()

	matched := make([]Task, 0, len(all))

	for _, t := range all {
		if t.Category == category {
			matched = append(matched, t)
		}
	}

	return matched
}
