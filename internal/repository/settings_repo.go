package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/db"
)

const settingOpenLate = "open_late"

// SettingsRepo is a SQLite implementation of SettingsRepository
type SettingsRepo struct {
	db *db.DB
}

// NewSettingsRepo creates a new SettingsRepo
func NewSettingsRepo(database *db.DB) *SettingsRepo {
	return &SettingsRepo{db: database}
}

// OpenLate returns the stored flag, false when it was never set
func (r *SettingsRepo) OpenLate(ctx context.Context) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingOpenLate).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", settingOpenLate, err)
	}

	openLate, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", settingOpenLate, err)
	}
	return openLate, nil
}

// SetOpenLate stores the flag
func (r *SettingsRepo) SetOpenLate(ctx context.Context, openLate bool) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, settingOpenLate, strconv.FormatBool(openLate), formatTime()); err != nil {
		return fmt.Errorf("failed to set %s: %w", settingOpenLate, err)
	}
	return nil
}
