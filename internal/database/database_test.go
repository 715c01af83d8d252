package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/trainbook/internal/database/repository"
)

func TestOpenCatalogMigratesAndSeeds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := OpenCatalog(ctx, uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stations := repository.NewStationRepo(db)
	n, err := stations.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(defaultStations), n)

	ddn, err := stations.ByCode(ctx, "ddn")
	require.NoError(t, err)
	require.NotNil(t, ddn)
	require.Equal(t, "Dehradun Railway Station", ddn.Label())
	require.Equal(t, StationID("DDN"), ddn.ID)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := OpenCatalog(ctx, uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(ctx, db))

	n, err := repository.NewStationRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(defaultStations), n)
}

func TestCatalogsAreIsolatedByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := OpenCatalog(ctx, uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := OpenCatalog(ctx, uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	extra := repository.Station{ID: StationID("XYZ"), Code: "XYZ", Name: "Nowhere Halt", City: "Nowhere"}
	require.NoError(t, repository.NewStationRepo(a).Upsert(ctx, extra))

	got, err := repository.NewStationRepo(b).ByCode(ctx, "XYZ")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSeedDefaultsReportsCountError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	db, err := OpenCatalog(ctx, uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cancel()
	require.ErrorIs(t, SeedDefaults(ctx, db), context.Canceled)
}
