// Package roster is the fetch-through cache over company rosters. Fetches for
// the same company are deduplicated while one is in flight; the filter is a
// pure projection over the cache and never touches the network.
package roster

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
)

type Service struct {
	gateway employee.Gateway
	cache   employee.RosterCache
	group   singleflight.Group
}

func NewService(gateway employee.Gateway, cache employee.RosterCache) employee.RosterService {
	return &Service{gateway: gateway, cache: cache}
}

// Get returns the cached roster, fetching it on first use. Concurrent calls
// for the same company while a fetch is in flight share that one request.
func (s *Service) Get(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if roster, ok := s.cache.Get(companyID); ok {
		return roster, nil
	}
	return s.fetch(ctx, companyID)
}

// Refresh forces a reload from the backend. A failed refresh leaves the
// cached roster untouched.
func (s *Service) Refresh(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return s.fetch(ctx, companyID)
}

func (s *Service) fetch(ctx context.Context, companyID string) ([]employee.Employee, error) {
	resultChan := s.group.DoChan(companyID, func() (interface{}, error) {
		// Deliberately not the caller's context: a shared fetch must not die
		// with the first caller that gives up.
		roster, err := s.gateway.ListActiveEmployees(context.WithoutCancel(ctx), companyID)
		if err != nil {
			return nil, err
		}
		s.cache.Put(companyID, roster)
		return roster, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]employee.Employee), nil
	}
}

// Filter matches term case-insensitively against first+last name over the
// cached roster. An empty term returns the full roster in original order.
func (s *Service) Filter(companyID, term string) ([]employee.Employee, error) {
	roster, ok := s.cache.Get(companyID)
	if !ok {
		return nil, employee.ErrRosterNotLoaded
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return roster, nil
	}

	matched := make([]employee.Employee, 0, len(roster))
	for _, emp := range roster {
		if strings.Contains(emp.SearchName(), term) {
			matched = append(matched, emp)
		}
	}
	return matched, nil
}

// Find looks an employee up in the cached roster.
func (s *Service) Find(companyID, employeeID string) (employee.Employee, bool) {
	roster, ok := s.cache.Get(companyID)
	if !ok {
		return employee.Employee{}, false
	}
	for _, emp := range roster {
		if emp.EmployeeID == employeeID {
			return emp, true
		}
	}
	return employee.Employee{}, false
}
