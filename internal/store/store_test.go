package store

import (
	"testing"

	"orgboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_StartsLoadingAndMarksReadyOnce.
func TestStore_StartsLoadingAndMarksReadyOnce(t *testing.T) {
	s := New()
	assert.Equal(t, StateLoading, s.State())

	s.MarkReady()
	assert.Equal(t, StateReady, s.State())

	// No transition back; a second call changes nothing.
	s.MarkReady()
	assert.Equal(t, StateReady, s.State())
}

// TestStore_ReadyEvenWithoutData: the transition is unconditional, an empty
// load still resolves to Ready.
func TestStore_ReadyEvenWithoutData(t *testing.T) {
	s := New()
	s.ReplaceAll(nil)
	s.MarkReady()
	assert.Equal(t, StateReady, s.State())
	assert.Empty(t, s.Get())
}

// TestStore_GetReturnsSnapshot: consumers cannot mutate the store through
// the slice they are handed.
func TestStore_GetReturnsSnapshot(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Organization{{ID: 1, CompanyName: "Acme Inc"}})

	snapshot := s.Get()
	require.Len(t, snapshot, 1)
	snapshot[0].CompanyName = "Mutated"

	assert.Equal(t, "Acme Inc", s.Get()[0].CompanyName)
}

// TestStore_ReplaceAllSwapsWholesale: the previous sequence is discarded,
// never patched, and later edits to the input slice do not leak in.
func TestStore_ReplaceAllSwapsWholesale(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.Organization{{ID: 1}, {ID: 2}})
	assert.Equal(t, 2, s.Len())

	next := []domain.Organization{{ID: 1, CompanyName: "Globex"}}
	s.ReplaceAll(next)
	next[0].CompanyName = "Edited"

	got := s.Get()
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].CompanyName)
}
