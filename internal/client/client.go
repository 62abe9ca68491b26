// Package client manages the flat client directory. The sales pipeline
// keeps its own client records; see internal/crm.
package client

import (
	"github.com/dmafra/gestor/internal/collection"
	"github.com/dmafra/gestor/internal/kv"
)

const storageKey = "clients"

type Client struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Project string `json:"project"`
	Status  string `json:"status"`
}

func (c Client) EntityID() int { return c.ID }

func Defaults() []Client {
	return []Client{{ID: 1, Status: "Ativo"}}
}

type Service struct {
	col *collection.Collection[Client]
}

func NewService(store kv.Store) *Service {
	return &Service{col: collection.New(store, storageKey, Defaults())}
}

type CreateParams struct {
	Name    string
	Email   string
	Project string
	Status  string
}

type UpdateParams struct {
	Name    *string
	Email   *string
	Project *string
	Status  *string
}

func (s *Service) Create(params CreateParams) Client {
	if params.Status == "" {
		params.Status = "Ativo"
	}

	return s.col.Create(func(id int) Client {
		return Client{
			ID:      id,
			Name:    params.Name,
			Email:   params.Email,
			Project: params.Project,
			Status:  params.Status,
		}
	})
}

func (s *Service) Update(id int, params UpdateParams) (Client, bool) {
	return s.col.Update(id, func(c Client) Client {
		if params.Name != nil {
			c.Name = *params.Name
		}

		if params.Email != nil {
			c.Email = *params.Email
		}

		if params.Project != nil {
			c.Project = *params.Project
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

func (s *Service) Get(id int) (Client, bool) {
	return s.col.Get(id)
}

func (s *Service) List() []Client {
	return s.col.List()
}
