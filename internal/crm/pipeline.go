package crm

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "crm"

// Pipeline is the collection manager specialization for staged clients.
// The persisted snapshot is the full stage-bucket sequence under one key,
// rewritten on every mutation.
type Pipeline struct {
	mu    sync.Mutex
	store kv.Store

	stages []Stage
	loaded bool
}

func NewPipeline(store kv.Store) *Pipeline {
	return &Pipeline{store: store}
}

// Load reads the persisted buckets, falling back to the default pipeline
// when the snapshot is absent or unparsable.
func (p *Pipeline) Load() []Stage {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.load()

	return p.copyStages()
}

func (p *Pipeline) load() {
	p.loaded = true
	p.stages = defaultStages()

	raw, ok := p.store.Get(storageKey)
	if !ok {
		return
	}

	var stages []Stage
	if err := json.Unmarshal([]byte(raw), &stages); err != nil {
		slog.Warn("discarding unparsable snapshot", "key", storageKey, "error", err)
		return
	}

	p.stages = stages
}

// Stages returns the current bucket sequence.
func (p *Pipeline) Stages() []Stage {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	return p.copyStages()
}

type CreateParams struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Value   int64
}

// CreateClient inserts a new client into the first stage bucket. The
// identifier is one past the highest across all buckets combined, so ids
// stay unique pipeline-wide.
func (p *Pipeline) CreateClient(params CreateParams) Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	c := Client{
		ID:          p.nextID(),
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		Company:     params.Company,
		Stage:       StageOrder[0],
		Status:      "Novo",
		Value:       params.Value,
		LastContact: time.Now().Format(time.DateOnly),
	}

	p.stages[0].Clients = append(p.stages[0].Clients, c)
	p.persist()

	return c
}

type UpdateParams struct {
	Name        *string
	Email       *string
	Phone       *string
	Company     *string
	Status      *string
	Value       *int64
	LastContact *string

	// Stage rewrites the stage field without moving the record between
	// buckets, matching the legacy full-record edit path. Use MoveToStage
	// for an actual move.
	Stage *StageID
}

// UpdateClient edits the record in place in whichever bucket holds it. A
// missing identifier is a silent no-op.
func (p *Pipeline) UpdateClient(id int, params UpdateParams) (Client, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	for si := range p.stages {
		for ci := range p.stages[si].Clients {
			c := &p.stages[si].Clients[ci]
			if c.ID != id {
				continue
			}

			if params.Name != nil {
				c.Name = *params.Name
			}

			if params.Email != nil {
				c.Email = *params.Email
			}

			if params.Phone != nil {
				c.Phone = *params.Phone
			}

			if params.Company != nil {
				c.Company = *params.Company
			}

			if params.Status != nil {
				c.Status = *params.Status
			}

			if params.Value != nil {
				c.Value = *params.Value
			}

			if params.LastContact != nil {
				c.LastContact = *params.LastContact
			}

			if params.Stage != nil {
				c.Stage = *params.Stage
			}

			p.persist()

			return *c, true
		}
	}

	return Client{}, false
}

// DeleteClient removes the record from whichever bucket currently holds
// it. Deleting an absent identifier is a no-op.
func (p *Pipeline) DeleteClient(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	for si := range p.stages {
		clients := p.stages[si].Clients

		for ci, c := range clients {
			if c.ID != id {
				continue
			}

			p.stages[si].Clients = append(clients[:ci:ci], clients[ci+1:]...)
			p.persist()

			return
		}
	}
}

// MoveToStage removes the client from its current bucket and appends it to
// the target bucket, keeping the stage field consistent. Returns false for
// an unknown client or an invalid target stage, leaving the pipeline
// untouched.
func (p *Pipeline) MoveToStage(id int, target StageID) (Client, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	if !ValidStage(target) {
		return Client{}, false
	}

	for si := range p.stages {
		clients := p.stages[si].Clients

		for ci, c := range clients {
			if c.ID != id {
				continue
			}

			p.stages[si].Clients = append(clients[:ci:ci], clients[ci+1:]...)

			c.Stage = target

			for ti := range p.stages {
				if p.stages[ti].ID == target {
					p.stages[ti].Clients = append(p.stages[ti].Clients, c)
					break
				}
			}

			p.persist()

			return c, true
		}
	}

	return Client{}, false
}

// FindClient returns the record with the given identifier, searching all
// buckets.
func (p *Pipeline) FindClient(id int) (Client, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	for _, stage := range p.stages {
		for _, c := range stage.Clients {
			if c.ID == id {
				return c, true
			}
		}
	}

	return Client{}, false
}

// StageCounts derives the per-stage tallies; each count equals the bucket
// length.
func (p *Pipeline) StageCounts() []StageCount {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	counts := make([]StageCount, 0, len(p.stages))

	for _, stage := range p.stages {
		counts = append(counts, StageCount{ID: stage.ID, Name: stage.Name, Count: len(stage.Clients)})
	}

	return counts
}

// TotalClients is the client count across all buckets.
func (p *Pipeline) TotalClients() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ensureLoaded()

	total := 0
	for _, stage := range p.stages {
		total += len(stage.Clients)
	}

	return total
}

func (p *Pipeline) ensureLoaded() {
	if !p.loaded {
		p.load()
	}
}

func (p *Pipeline) nextID() int {
	max := 0

	for _, stage := range p.stages {
		for _, c := range stage.Clients {
			if c.ID > max {
				max = c.ID
			}
		}
	}

	return max + 1
}

func (p *Pipeline) persist() {
	raw, err := json.Marshal(p.stages)
	if err != nil {
		slog.Error("failed to serialize pipeline", "key", storageKey, "error", err)
		return
	}

	if err := p.store.Set(storageKey, string(raw)); err != nil {
		slog.Error("failed to persist pipeline", "key", storageKey, "error", err)
	}
}

func (p *Pipeline) copyStages() []Stage {
	stages := make([]Stage, len(p.stages))

	for i, stage := range p.stages {
		stage.Clients = append([]Client(nil), stage.Clients...)
		stages[i] = stage
	}

	return stages
}
