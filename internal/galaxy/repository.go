package galaxy

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"starmap-server/internal/shared/database"

	"github.com/lib/pq"
)

// Repository persists save rows. Only the seed and the commander's
// progress hit the database; galaxies regenerate from the seed.
type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing galaxy repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const saveColumns = `id, commander, name, seed, size, current_system, discovered, created_at, updated_at`

func scanSave(row interface{ Scan(...interface{}) error }) (*Save, error) {
	var save Save
	err := row.Scan(
		&save.ID,
		&save.Commander,
		&save.Name,
		&save.Seed,
		&save.Size,
		&save.CurrentSystem,
		pq.Array(&save.Discovered),
		&save.CreatedAt,
		&save.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &save, nil
}

func (r *Repository) CreateSave(ctx context.Context, commander, name string, seed int64, size, startSystem int) (*Save, error) {
	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "create_save",
		"commander", commander,
		"seed", seed,
		"size", size,
	)
	logger.Debug("Creating save")

	query := `
		INSERT INTO saves (commander, name, seed, size, current_system, discovered)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + saveColumns

	save, err := scanSave(r.db.QueryRowContext(ctx, query,
		commander, name, seed, size, startSystem, pq.Array([]int64{int64(startSystem)})))
	if err != nil {
		logger.Error("Failed to create save", "error", err)
		return nil, fmt.Errorf("failed to create save: %w", err)
	}

	logger.Info("Save created", "save_id", save.ID)
	return save, nil
}

func (r *Repository) GetSave(ctx context.Context, id int) (*Save, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_save", "save_id", id)
	logger.Debug("Getting save")

	query := `SELECT ` + saveColumns + ` FROM saves WHERE id = $1`

	save, err := scanSave(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("Failed to get save", "error", err)
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return save, nil
}

func (r *Repository) ListSavesByCommander(ctx context.Context, commander string) ([]Save, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "list_saves", "commander", commander)
	logger.Debug("Listing saves")

	query := `SELECT ` + saveColumns + ` FROM saves WHERE commander = $1 ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, commander)
	if err != nil {
		logger.Error("Failed to query saves", "error", err)
		return nil, fmt.Errorf("failed to query saves: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var saves []Save
	for rows.Next() {
		save, err := scanSave(rows)
		if err != nil {
			logger.Error("Failed to scan save", "error", err)
			return nil, fmt.Errorf("failed to scan save: %w", err)
		}
		saves = append(saves, *save)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saves: %w", err)
	}

	return saves, nil
}

// UpdateProgress moves the commander and appends to the discovered set.
// The discovered array is replaced wholesale; callers pass the merged
// set so the row never loses earlier discoveries.
func (r *Repository) UpdateProgress(ctx context.Context, id, currentSystem int, discovered []int64) (*Save, error) {
	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "update_progress",
		"save_id", id,
		"current_system", currentSystem,
	)
	logger.Debug("Updating save progress")

	query := `
		UPDATE saves
		SET current_system = $2, discovered = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + saveColumns

	save, err := scanSave(r.db.QueryRowContext(ctx, query, id, currentSystem, pq.Array(discovered)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("Failed to update progress", "error", err)
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return save, nil
}

func (r *Repository) DeleteSave(ctx context.Context, id int) error {
	logger := r.logger.With("component", "galaxy_repository", "operation", "delete_save", "save_id", id)
	logger.Info("Deleting save")

	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE id = $1`, id); err != nil {
		logger.Error("Failed to delete save", "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
