// Package memory holds the session-scoped stores. Workstation state lives
// for the operator's session only and is never persisted, so the repository
// layer is in-process.
package memory

import (
	"sync"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
)

// RosterCache maps company id to its fetched roster. Entries are created on
// first selection and never evicted.
type RosterCache struct {
	mu      sync.RWMutex
	rosters map[string][]employee.Employee
}

func NewRosterCache() *RosterCache {
	return &RosterCache{rosters: make(map[string][]employee.Employee)}
}

func (c *RosterCache) Get(companyID string) ([]employee.Employee, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	roster, ok := c.rosters[companyID]
	if !ok {
		return nil, false
	}
	out := make([]employee.Employee, len(roster))
	copy(out, roster)
	return out, true
}

func (c *RosterCache) Put(companyID string, employees []employee.Employee) {
	stored := make([]employee.Employee, len(employees))
	copy(stored, employees)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rosters[companyID] = stored
}

func (c *RosterCache) Has(companyID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.rosters[companyID]
	return ok
}
