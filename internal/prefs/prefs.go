// Package prefs holds the dashboard's UI-preference snapshots: the dark
// mode flag, the cached monthly chart series and the project status
// counters. Each lives under its own key with no cross-referencing.
package prefs

import (
	"encoding/json"
	"log/slog"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/kv"
)

const (
	keyDarkMode      = "darkMode"
	keyMonthlyData   = "monthlyData"
	keyProjectStatus = "projectStatus"
)

// StatusCount is one slice of the project status chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func defaultProjectStatus() []StatusCount {
	return []StatusCount{
		{Name: "Em Andamento"},
		{Name: "Concluídos"},
		{Name: "Em Pausa"},
		{Name: "Cancelados"},
	}
}

type Service struct {
	store kv.Store
}

func NewService(store kv.Store) *Service {
	return &Service{store: store}
}

func (s *Service) DarkMode() bool {
	var enabled bool

	s.get(keyDarkMode, &enabled)

	return enabled
}

func (s *Service) SetDarkMode(enabled bool) {
	s.set(keyDarkMode, enabled)
}

// MonthlyCache returns the persisted chart series, which may lag the
// ledger; the dashboard refreshes it from cashflow.MonthlyBuckets.
func (s *Service) MonthlyCache() []cashflow.MonthBucket {
	var buckets []cashflow.MonthBucket

	if !s.get(keyMonthlyData, &buckets) {
		return nil
	}

	return buckets
}

func (s *Service) SetMonthlyCache(buckets []cashflow.MonthBucket) {
	s.set(keyMonthlyData, buckets)
}

func (s *Service) ProjectStatus() []StatusCount {
	var counts []StatusCount

	if !s.get(keyProjectStatus, &counts) {
		return defaultProjectStatus()
	}

	return counts
}

func (s *Service) SetProjectStatus(counts []StatusCount) {
	s.set(keyProjectStatus, counts)
}

func (s *Service) get(key string, dest any) bool {
	raw, ok := s.store.Get(key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("discarding unparsable preference", "key", key, "error", err)
		return false
	}

	return true
}

func (s *Service) set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to serialize preference", "key", key, "error", err)
		return
	}

	if err := s.store.Set(key, string(raw)); err != nil {
		slog.Error("failed to persist preference", "key", key, "error", err)
	}
}
