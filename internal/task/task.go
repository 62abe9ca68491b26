package task

import "time"

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category is the board section a task is listed under. It is related to,
// but not derived from, the completed flag: the toggle keeps the two in
// lockstep while the edit form may set the category freely, so states such
// as {category: inProgress, completed: true} are representable. See
// Service.Toggle.
type Category string

const (
	CategoryPending    Category = "pending"
	CategoryInProgress Category = "inProgress"
	CategoryCompleted  Category = "completed"
)

type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
}

func (t Task) EntityID() int { return t.ID }

// Defaults is the placeholder collection used when no snapshot exists.
func Defaults() []Task {
	return []Task{
		{
			ID:       1,
			DueDate:  time.Now().Format(time.DateOnly),
			Priority: PriorityMedium,
			Category: CategoryPending,
		},
	}
}
