package postgres

import (
	"context"
	"database/sql"

	"github.com/seastack/ecnctl/internal/model"
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queryListProfiles reads the whole wred_profile_fields table and groups the
// (profile, field, value) rows into profiles. Rows come back ordered by
// profile, so one pass over consecutive rows is enough; field order within a
// profile is insertion order.
func queryListProfiles(ctx context.Context, db executor) ([]*model.Profile, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT profile, field, value
		FROM wred_profile_fields
		ORDER BY profile, created_at, field`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*model.Profile
	var current *model.Profile
	for rows.Next() {
		var name, field, value string
		if err := rows.Scan(&name, &field, &value); err != nil {
			return nil, err
		}
		if current == nil || current.Name != name {
			current = &model.Profile{Name: name}
			profiles = append(profiles, current)
		}
		current.Fields = append(current.Fields, model.Field{Name: field, Value: value})
	}
	return profiles, rows.Err()
}

// querySetProfileField upserts one (profile, field) row. The ON CONFLICT
// clause is what makes this a merge-update: other fields of the profile are
// never read or written, and a missing profile row is implicitly created.
func querySetProfileField(ctx context.Context, db executor, profile, field, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO wred_profile_fields (profile, field, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile, field) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		profile, field, value,
	)
	return err
}
