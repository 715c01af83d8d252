package repository

import (
	"context"
	"database/sql"
	"strings"
)

// StationRepo handles stations.
type StationRepo struct {
	db *sql.DB
}

func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

func (r *StationRepo) Upsert(ctx context.Context, s Station) error {
	return upsertStation(ctx, r.db, s)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// UpsertTx writes s inside an open transaction.
func UpsertTx(ctx context.Context, tx *sql.Tx, s Station) error {
	return upsertStation(ctx, tx, s)
}

func upsertStation(ctx context.Context, db execer, s Station) error {
	_, err := db.ExecContext(ctx, `
	INSERT INTO stations(id, code, name, city, region, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 code=excluded.code,
	 name=excluded.name,
	 city=excluded.city,
	 region=excluded.region,
	 sort_order=excluded.sort_order;
	`, s.ID, strings.ToUpper(s.Code), s.Name, s.City, s.Region, s.SortOrder)
	return err
}

func (r *StationRepo) ByCode(ctx context.Context, code string) (*Station, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, code, name, city, region, sort_order FROM stations WHERE code = ?`, strings.ToUpper(strings.TrimSpace(code)))
	var s Station
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.City, &s.Region, &s.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ByCityPrefix returns stations whose city or name starts with prefix,
// ignoring case.
func (r *StationRepo) ByCityPrefix(ctx context.Context, prefix string) ([]Station, error) {
	p := escapeLike(strings.TrimSpace(prefix)) + "%"
	return r.query(ctx, `
	SELECT id, code, name, city, region, sort_order FROM stations
	WHERE city LIKE ? ESCAPE '\' OR name LIKE ? ESCAPE '\'
	ORDER BY sort_order, name`, p, p)
}

func (r *StationRepo) List(ctx context.Context) ([]Station, error) {
	return r.query(ctx, `SELECT id, code, name, city, region, sort_order FROM stations ORDER BY sort_order, name`)
}

func (r *StationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stations`).Scan(&n)
	return n, err
}

func (r *StationRepo) query(ctx context.Context, q string, args ...any) ([]Station, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.City, &s.Region, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
