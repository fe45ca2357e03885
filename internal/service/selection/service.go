// Package selection holds the operator's current company and payroll month.
// It lives for the whole session and is mutated only by explicit selection
// actions.
package selection

import (
	"sync"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
)

// Snapshot is an immutable view of the selection, carrying the epoch used by
// the stale-response guard: a response computed under an older epoch must not
// be applied.
type Snapshot struct {
	CompanyID string `json:"companyId,omitempty"`
	Month     string `json:"month,omitempty"`
	Epoch     uint64 `json:"-"`
}

type Service struct {
	mu        sync.RWMutex
	companyID string
	month     string
	epoch     uint64
	results   payroll.ResultStore
}

func NewService(results payroll.ResultStore) *Service {
	return &Service{results: results}
}

// SelectCompany replaces the selected company. Switching to a different
// company bumps the epoch (invalidating in-flight work keyed to the old one)
// and clears the result store; stored breakdowns belong to the old roster.
// Re-selecting the same company is a no-op.
func (s *Service) SelectCompany(companyID string) Snapshot {
	s.mu.Lock()
	changed := companyID != s.companyID
	if changed {
		s.companyID = companyID
		s.epoch++
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.results.Clear()
	}
	return snap
}

// SelectMonth replaces the payroll month. The roster stays valid; previously
// computed results keep their write-time month label and are not touched.
func (s *Service) SelectMonth(month string) (Snapshot, error) {
	if !validator.IsValidPayrollMonth(month) {
		return Snapshot{}, validator.ValidationErrors{
			{Field: "month", Message: "Payroll month must be in YYYY-MM format"},
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.month = month
	return s.snapshotLocked(), nil
}

func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Matches reports whether the snapshot's epoch is still current.
func (s *Service) Matches(snap Snapshot) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snap.Epoch == s.epoch
}

func (s *Service) snapshotLocked() Snapshot {
	return Snapshot{CompanyID: s.companyID, Month: s.month, Epoch: s.epoch}
}
