package memory

import (
	"sync"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
)

// ResultStore keeps the latest salary breakdown per employee. A recalculation
// overwrites; there is no history.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]payroll.SalaryBreakdown
	order   []string
}

func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string]payroll.SalaryBreakdown)}
}

func (s *ResultStore) Put(breakdown payroll.SalaryBreakdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[breakdown.EmployeeID]; !exists {
		s.order = append(s.order, breakdown.EmployeeID)
	}
	s.results[breakdown.EmployeeID] = breakdown
}

func (s *ResultStore) Get(employeeID string) (payroll.SalaryBreakdown, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	breakdown, ok := s.results[employeeID]
	return breakdown, ok
}

// All returns breakdowns in first-write order.
func (s *ResultStore) All() []payroll.SalaryBreakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]payroll.SalaryBreakdown, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.results[id])
	}
	return out
}

func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]payroll.SalaryBreakdown)
	s.order = nil
}
