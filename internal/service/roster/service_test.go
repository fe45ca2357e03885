package roster

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/repository/memory"
)

type fakeGateway struct {
	calls   atomic.Int32
	started chan struct{} // closed when the first fetch begins
	gate    chan struct{} // when set, fetches block until it closes
	list    func(companyID string) ([]employee.Employee, error)
}

func (g *fakeGateway) ListActiveEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if g.calls.Add(1) == 1 && g.started != nil {
		close(g.started)
	}
	if g.gate != nil {
		<-g.gate
	}
	return g.list(companyID)
}

func testRoster() []employee.Employee {
	return []employee.Employee{
		{EmployeeID: "E107", FirstName: "Asha", LastName: "Verma", Designation: "Engineer"},
		{EmployeeID: "E201", FirstName: "Rohan", LastName: "Mehta", Designation: "Analyst"},
		{EmployeeID: "E305", FirstName: "Priya", LastName: "Nair", Designation: "Manager"},
	}
}

func TestRosterService_GetFetchesOnceThenServesCache(t *testing.T) {
	gateway := &fakeGateway{list: func(string) ([]employee.Employee, error) { return testRoster(), nil }}
	svc := NewService(gateway, memory.NewRosterCache())

	first, err := svc.Get(context.Background(), "C1")
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), "C1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), gateway.calls.Load())
}

func TestRosterService_ConcurrentGetsShareOneFetch(t *testing.T) {
	gateway := &fakeGateway{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		list:    func(string) ([]employee.Employee, error) { return testRoster(), nil },
	}
	svc := NewService(gateway, memory.NewRosterCache())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Get(context.Background(), "C1")
		}(i)
	}

	// Hold the single fetch open long enough for every caller to join it.
	<-gateway.started
	time.Sleep(20 * time.Millisecond)
	close(gateway.gate)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), gateway.calls.Load())
}

func TestRosterService_FailedFetchLeavesCacheEmpty(t *testing.T) {
	cache := memory.NewRosterCache()
	gateway := &fakeGateway{list: func(string) ([]employee.Employee, error) {
		return nil, errors.New("backend down")
	}}
	svc := NewService(gateway, cache)

	_, err := svc.Get(context.Background(), "C1")
	require.Error(t, err)
	assert.False(t, cache.Has("C1"))
}

func TestRosterService_RefreshReplacesCache(t *testing.T) {
	cache := memory.NewRosterCache()
	full := testRoster()
	current := full
	gateway := &fakeGateway{list: func(string) ([]employee.Employee, error) { return current, nil }}
	svc := NewService(gateway, cache)

	_, err := svc.Get(context.Background(), "C1")
	require.NoError(t, err)

	current = full[:1]
	refreshed, err := svc.Refresh(context.Background(), "C1")
	require.NoError(t, err)

	assert.Len(t, refreshed, 1)
	cached, _ := cache.Get("C1")
	assert.Len(t, cached, 1)
	assert.Equal(t, int32(2), gateway.calls.Load())
}

func TestRosterService_FailedRefreshKeepsOldRoster(t *testing.T) {
	cache := memory.NewRosterCache()
	shouldFail := false
	gateway := &fakeGateway{list: func(string) ([]employee.Employee, error) {
		if shouldFail {
			return nil, errors.New("backend down")
		}
		return testRoster(), nil
	}}
	svc := NewService(gateway, cache)

	_, err := svc.Get(context.Background(), "C1")
	require.NoError(t, err)

	shouldFail = true
	_, err = svc.Refresh(context.Background(), "C1")
	require.Error(t, err)

	cached, ok := cache.Get("C1")
	require.True(t, ok)
	assert.Len(t, cached, 3)
}

func TestRosterService_Filter(t *testing.T) {
	cache := memory.NewRosterCache()
	cache.Put("C1", testRoster())
	svc := NewService(&fakeGateway{}, cache)

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"empty term returns all", "", []string{"E107", "E201", "E305"}},
		{"whitespace term returns all", "   ", []string{"E107", "E201", "E305"}},
		{"first name", "asha", []string{"E107"}},
		{"last name", "Mehta", []string{"E201"}},
		{"case insensitive", "PRIYA", []string{"E305"}},
		{"partial across names", "a v", []string{"E107"}},
		{"no match", "zzz", []string{}},
		{"designation is not searched", "Engineer", []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := svc.Filter("C1", c.term)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, emp := range got {
				ids = append(ids, emp.EmployeeID)
			}
			assert.Equal(t, c.want, ids)
		})
	}
}

func TestRosterService_FilterBeforeLoadFails(t *testing.T) {
	svc := NewService(&fakeGateway{}, memory.NewRosterCache())

	_, err := svc.Filter("C1", "asha")
	assert.ErrorIs(t, err, employee.ErrRosterNotLoaded)
}

func TestRosterService_Find(t *testing.T) {
	cache := memory.NewRosterCache()
	cache.Put("C1", testRoster())
	svc := NewService(&fakeGateway{}, cache)

	emp, ok := svc.Find("C1", "E201")
	require.True(t, ok)
	assert.Equal(t, "Rohan", emp.FirstName)

	_, ok = svc.Find("C1", "E999")
	assert.False(t, ok)

	_, ok = svc.Find("C9", "E201")
	assert.False(t, ok)
}
