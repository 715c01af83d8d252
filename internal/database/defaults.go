package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/trainbook/internal/database/repository"
)

type seedStation struct {
	code, name, city, region string
}

var defaultStations = []seedStation{
	{"DDN", "Dehradun Railway Station", "Dehradun", "Uttarakhand"},
	{"PUNE", "Pune Railway Station", "Pune", "Maharashtra"},
	{"NDLS", "New Delhi Railway Station", "New Delhi", "Delhi"},
	{"CSMT", "Chhatrapati Shivaji Maharaj Terminus", "Mumbai", "Maharashtra"},
	{"HWH", "Howrah Junction", "Kolkata", "West Bengal"},
	{"MAS", "Chennai Central", "Chennai", "Tamil Nadu"},
	{"SBC", "KSR Bengaluru City Junction", "Bengaluru", "Karnataka"},
	{"JP", "Jaipur Junction", "Jaipur", "Rajasthan"},
	{"LKO", "Lucknow Charbagh", "Lucknow", "Uttar Pradesh"},
	{"HW", "Haridwar Junction", "Haridwar", "Uttarakhand"},
	{"KGX", "Kings Cross", "London", "UK"},
	{"BHM", "Birmingham New Street", "Birmingham", "UK"},
	{"MAN", "Manchester Piccadilly", "Manchester", "UK"},
}

// StationID derives the stable id of a station from its code.
func StationID(code string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("station:"+code)).String()
}

// SeedDefaults ensures the baseline station catalog exists.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	stations := repository.NewStationRepo(db)
	n, err := stations.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for idx, s := range defaultStations {
			st := repository.Station{ID: StationID(s.code), Code: s.code, Name: s.name, City: s.city, Region: s.region, SortOrder: idx}
			if err := repository.UpsertTx(ctx, tx, st); err != nil {
				return err
			}
		}
		return nil
	})
}

// OpenCatalog opens the named in-memory station catalog, migrated and
// seeded. Catalogs opened under the same name share their data.
func OpenCatalog(ctx context.Context, name string) (*sql.DB, error) {
	db, err := OpenMemory(name)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
