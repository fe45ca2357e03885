package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
)

func TestRosterCache_PutAndGet(t *testing.T) {
	cache := NewRosterCache()
	roster := []employee.Employee{
		{EmployeeID: "E107", FirstName: "Asha", LastName: "Verma"},
		{EmployeeID: "E201", FirstName: "Rohan", LastName: "Mehta"},
	}

	cache.Put("C1", roster)

	got, ok := cache.Get("C1")
	require.True(t, ok)
	assert.Equal(t, roster, got)
	assert.True(t, cache.Has("C1"))
}

func TestRosterCache_MissingCompany(t *testing.T) {
	cache := NewRosterCache()

	_, ok := cache.Get("C9")
	assert.False(t, ok)
	assert.False(t, cache.Has("C9"))
}

func TestRosterCache_GetReturnsCopy(t *testing.T) {
	cache := NewRosterCache()
	cache.Put("C1", []employee.Employee{{EmployeeID: "E107", FirstName: "Asha"}})

	got, ok := cache.Get("C1")
	require.True(t, ok)
	got[0].FirstName = "mutated"

	fresh, _ := cache.Get("C1")
	assert.Equal(t, "Asha", fresh[0].FirstName)
}

func TestRosterCache_EmptyRosterIsCached(t *testing.T) {
	cache := NewRosterCache()

	cache.Put("C1", nil)

	got, ok := cache.Get("C1")
	require.True(t, ok)
	assert.Empty(t, got)
}
