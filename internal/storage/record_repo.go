package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const MainUserKey = "main_user"

// ErrVersionConflict means the stored record changed since it was loaded.
// The caller should reload and retry the mutation.
var ErrVersionConflict = errors.New("record version conflict")

type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// Get loads the record stored under key and its version.
// A missing record is (nil, 0, nil): first visit, not an error.
func (r *RecordRepo) Get(ctx context.Context, key string) (*Record, int64, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data, version FROM records WHERE key = ?`, key)

	var raw string
	var version int64
	if err := row.Scan(&raw, &version); err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("record get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, 0, fmt.Errorf("record decode: %w", err)
	}
	return &rec, version, nil
}

// Save overwrites the full record under key, but only if the stored version
// still equals expectedVersion (0 = the record did not exist yet). On success
// it returns the new version; on a stale expectedVersion it returns
// ErrVersionConflict and leaves the stored record untouched.
func (r *RecordRepo) Save(ctx context.Context, key string, rec *Record, expectedVersion int64) (int64, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("record encode: %w", err)
	}

	newVersion := expectedVersion + 1
	err = WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if expectedVersion == 0 {
			// First write: the row must not exist.
			var one int
			row := tx.QueryRowContext(ctx, `SELECT 1 FROM records WHERE key = ?`, key)
			if scanErr := row.Scan(&one); scanErr == nil {
				return ErrVersionConflict
			} else if scanErr != sql.ErrNoRows {
				return fmt.Errorf("record probe: %w", scanErr)
			}
			if _, execErr := tx.ExecContext(ctx, `
				INSERT INTO records (key, version, data, updated_at)
				VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			`, key, newVersion, string(data)); execErr != nil {
				return fmt.Errorf("record insert: %w", execErr)
			}
			return nil
		}

		res, execErr := tx.ExecContext(ctx, `
			UPDATE records
			SET version = ?, data = ?, updated_at = CURRENT_TIMESTAMP
			WHERE key = ? AND version = ?
		`, newVersion, string(data), key, expectedVersion)
		if execErr != nil {
			return fmt.Errorf("record update: %w", execErr)
		}
		n, execErr := res.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("record rows affected: %w", execErr)
		}
		if n == 0 {
			return ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}
