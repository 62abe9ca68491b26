package campaign

import (
	"time"

	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "campaigns"

// Campaign is one paid-traffic campaign. Budget and spent are in cents;
// ROI is a plain multiplier.
type Campaign struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Budget      int64   `json:"budget"`
	Spent       int64   `json:"spent"`
	ROI         float64 `json:"roi"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
}

func (c Campaign) EntityID() int { return c.ID }

func Defaults() []Campaign {
	today := time.Now().Format(time.DateOnly)

	return []Campaign{{ID: 1, StartDate: today, EndDate: today, Status: "Ativo"}}
}

type Service struct {
	col *collection.Collection[Campaign]
}

func NewService(store kv.Store) *Service {
	return &Service{col: collection.New(store, storageKey, Defaults())}
}

// CreateParams carries only the fields set at creation time; performance
// counters start at zero and status starts as active.
type CreateParams struct {
	Name      string
	Platform  string
	Budget    int64
	StartDate string
	EndDate   string
}

type UpdateParams struct {
	Name        *string
	Platform    *string
	Budget      *int64
	Spent       *int64
	ROI         *float64
	Clicks      *int
	Conversions *int
	StartDate   *string
	EndDate     *string
	Status      *string
}

func (s *Service) Create(params CreateParams) Campaign {
	return s.col.Create(func(id int) Campaign {
		return Campaign{
			ID:        id,
			Name:      params.Name,
			Platform:  params.Platform,
			Budget:    params.Budget,
			StartDate: params.StartDate,
			EndDate:   params.EndDate,
			Status:    "Ativo",
		}
	})
}

func (s *Service) Update(id int, params UpdateParams) (Campaign, bool) {
	return s.col.Update(id, func(c Campaign) Campaign {
		if params.Name != nil {
			c.Name = *params.Name
		}

		if params.Platform != nil {
			c.Platform = *params.Platform
		}

		if params.Budget != nil {
			c.Budget = *params.Budget
		}

		if params.Spent != nil {
			c.Spent = *params.Spent
		}

		if params.ROI != nil {
			c.ROI = *params.ROI
		}

		if params.Clicks != nil {
			c.Clicks = *params.Clicks
		}

		if params.Conversions != nil {
			c.Conversions = *params.Conversions
		}

		if params.StartDate != nil {
			c.StartDate = *params.StartDate
		}

		if params.EndDate != nil {
			c.EndDate = *params.EndDate
		}

		if params.Status != nil {
			c.Status = *params.Status
		}

		return c
	})
}

func (s *Service) Delete(id int) {
	s.col.Remove(id)
}

func (s *Service) Get(id int) (Campaign, bool) {
	return s.col.Get(id)
}

func (s *Service) List() []Campaign {
	return s.col.List()
}
