package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/trainbook/internal/database"
	"github.com/jask/trainbook/internal/database/repository"
)

func newResolver(t *testing.T) *StationResolver {
	t.Helper()
	db, err := database.OpenCatalog(context.Background(), uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &StationResolver{Stations: repository.NewStationRepo(db)}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cases := []struct {
		in   string
		want string // station code, "" for no match
	}{
		{"Dehradun UK", "DDN"},
		{"Pune MAHARASHTRA", "PUNE"},
		{"pune", "PUNE"},
		{"ndls", "NDLS"},
		{"  Mumbai  ", "CSMT"},
		{"Kings Cross, London, UK", "KGX"},
		{"Birmingham, UK", "BHM"},
		{"Bengaluru", "SBC"},
		{"Delhi", "NDLS"},
		{"New Delhi", "NDLS"},
		{"piccadilly", "MAN"},
		{"Lucknw", "LKO"},
		{"Jaipurr", "JP"},
		{"", ""},
		{"   ", ""},
		{"Zzyzx", ""},
		{"elhi", ""},
	}
	for _, tc := range cases {
		got, err := r.Resolve(ctx, tc.in)
		require.NoError(t, err, tc.in)
		if tc.want == "" {
			require.Nil(t, got, tc.in)
			continue
		}
		require.NotNil(t, got, tc.in)
		require.Equal(t, tc.want, got.Code, tc.in)
	}
}

func TestContainsWords(t *testing.T) {
	t.Parallel()

	require.True(t, containsWords("new delhi", "delhi"))
	require.True(t, containsWords("new delhi", "new delhi"))
	require.False(t, containsWords("new delhi", "elhi"))
	require.False(t, containsWords("new delhi", "new del"))
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, similarity("pune", "pune"))
	require.Equal(t, 0.0, similarity("", ""))
	require.InDelta(t, 0.75, similarity("pune", "puna"), 1e-9)
}
