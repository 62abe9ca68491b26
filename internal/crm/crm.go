// Package crm manages the sales pipeline: client records partitioned
// across a fixed, ordered sequence of stage buckets.
package crm

// StageID identifies a pipeline stage. The identifiers are stable; the
// display names are presentation only.
type StageID string

const (
	StageLead        StageID = "lead"
	StageContact     StageID = "contact"
	StageProposal    StageID = "proposal"
	StageNegotiation StageID = "negotiation"
	StageClosed      StageID = "closed"
)

// StageOrder is the fixed progression of the pipeline.
var StageOrder = []StageID{StageLead, StageContact, StageProposal, StageNegotiation, StageClosed}

var stageNames = map[StageID]string{
	StageLead:        "Leads",
	StageContact:     "Em Contato",
	StageProposal:    "Proposta",
	StageNegotiation: "Negociação",
	StageClosed:      "Fechado",
}

// ValidStage reports whether id is one of the fixed stage identifiers.
func ValidStage(id StageID) bool {
	_, ok := stageNames[id]
	return ok
}

// StageName returns the display name for a stage.
func StageName(id StageID) string {
	return stageNames[id]
}

// Client is a pipeline record. Stage mirrors the bucket the record lives
// in; see Pipeline.UpdateClient for the one way they can drift apart.
type Client struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Company     string  `json:"company"`
	Stage       StageID `json:"stage"`
	Status      string  `json:"status"`
	Value       int64   `json:"value"` // Estimated value in cents
	LastContact string  `json:"lastContact"`
}

// Stage is one bucket of the pipeline with its resident clients.
type Stage struct {
	ID      StageID  `json:"id"`
	Name    string   `json:"name"`
	Clients []Client `json:"clients"`
}

// StageCount is the derived per-stage client tally.
type StageCount struct {
	ID    StageID `json:"id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
}

func defaultStages() []Stage {
	stages := make([]Stage, 0, len(StageOrder))

	for _, id := range StageOrder {
		stages = append(stages, Stage{ID: id, Name: stageNames[id], Clients: []Client{}})
	}

	// The seed record every fresh pipeline starts with.
	stages[0].Clients = append(stages[0].Clients, Client{
		ID:          1,
		Name:        "João Silva",
		Email:       "joao@email.com",
		Phone:       "(11) 99999-9999",
		Company:     "Tech Corp",
		Stage:       StageLead,
		Status:      "Novo",
		Value:       500000,
		LastContact: "2024-03-15",
	})

	return stages
}
