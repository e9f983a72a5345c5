package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"sales-coach-assistant/internal/rubric"
	repo "sales-coach-assistant/internal/rubric/repository"
)

const configColumns = `id, name, version, is_active, is_draft, categories, red_flags, activated_at, created_at, updated_at`

// CreateConfig inserts a new draft config row. Categories and red flags are
// stored as JSONB.
func (r *implRepository) CreateConfig(ctx context.Context, opt repo.CreateConfigOptions) (rubric.Config, error) {
	const query = `
		INSERT INTO rubric_configs (id, name, version, is_active, is_draft, categories, red_flags, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, TRUE, $4, $5, NOW(), NOW())
		RETURNING ` + configColumns

	catsJSON, flagsJSON, err := marshalContent(opt.Categories, opt.RedFlags)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToInsert
	}

	row := r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.Version, catsJSON, flagsJSON)
	cfg, err := scanConfig(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToInsert
	}
	return cfg, nil
}

// GetConfig retrieves a single config by ID.
// Returns zero-value Config (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetConfig(ctx context.Context, id string) (rubric.Config, error) {
	const query = `SELECT ` + configColumns + ` FROM rubric_configs WHERE id = $1`

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return rubric.Config{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConfig"), err)
		return rubric.Config{}, repo.ErrFailedToGet
	}
	return cfg, nil
}

// GetActiveConfig retrieves the single active config, zero-value when none.
func (r *implRepository) GetActiveConfig(ctx context.Context) (rubric.Config, error) {
	const query = `SELECT ` + configColumns + ` FROM rubric_configs WHERE is_active = TRUE LIMIT 1`

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return rubric.Config{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetActiveConfig"), err)
		return rubric.Config{}, repo.ErrFailedToGet
	}
	return cfg, nil
}

// ListConfigs returns all configs ordered by version descending.
func (r *implRepository) ListConfigs(ctx context.Context) ([]rubric.Config, error) {
	const query = `SELECT ` + configColumns + ` FROM rubric_configs ORDER BY version DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConfigs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var configs []rubric.Config
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListConfigs"), err)
			return nil, repo.ErrFailedToList
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// MaxVersion returns the highest version across all configs, 0 when empty.
func (r *implRepository) MaxVersion(ctx context.Context) (int, error) {
	const query = `SELECT COALESCE(MAX(version), 0) FROM rubric_configs`

	var max int
	if err := r.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MaxVersion"), err)
		return 0, repo.ErrFailedToGet
	}
	return max, nil
}

// UpdateConfig replaces the mutable content of a config row.
func (r *implRepository) UpdateConfig(ctx context.Context, opt repo.UpdateConfigOptions) (rubric.Config, error) {
	const query = `
		UPDATE rubric_configs
		SET name = $1, categories = $2, red_flags = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + configColumns

	catsJSON, flagsJSON, err := marshalContent(opt.Categories, opt.RedFlags)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToUpdate
	}

	row := r.db.QueryRowContext(ctx, query, opt.Name, catsJSON, flagsJSON, time.Now(), opt.ID)
	cfg, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return rubric.Config{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToUpdate
	}
	return cfg, nil
}

// ActivateConfig atomically demotes the currently active config and promotes
// the given one in a single transaction.
func (r *implRepository) ActivateConfig(ctx context.Context, id string) (rubric.Config, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ActivateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToActivate
	}
	defer tx.Rollback()

	const demote = `UPDATE rubric_configs SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE`
	if _, err := tx.ExecContext(ctx, demote); err != nil {
		r.l.Errorf(ctx, "%s demote: %v", r.dsn("ActivateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToActivate
	}

	const promote = `
		UPDATE rubric_configs
		SET is_active = TRUE, is_draft = FALSE, activated_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + configColumns

	cfg, err := scanConfig(tx.QueryRowContext(ctx, promote, id))
	if err == sql.ErrNoRows {
		return rubric.Config{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s promote: %v", r.dsn("ActivateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToActivate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ActivateConfig"), err)
		return rubric.Config{}, repo.ErrFailedToActivate
	}
	return cfg, nil
}

// DeleteConfig removes a config row by ID.
func (r *implRepository) DeleteConfig(ctx context.Context, id string) error {
	const query = `DELETE FROM rubric_configs WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteConfig"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (rubric.Config, error) {
	var (
		cfg         rubric.Config
		catsJSON    []byte
		flagsJSON   []byte
		activatedAt sql.NullTime
	)

	err := row.Scan(
		&cfg.ID, &cfg.Name, &cfg.Version, &cfg.IsActive, &cfg.IsDraft,
		&catsJSON, &flagsJSON, &activatedAt, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return rubric.Config{}, err
	}

	if err := json.Unmarshal(catsJSON, &cfg.Categories); err != nil {
		return rubric.Config{}, err
	}
	if err := json.Unmarshal(flagsJSON, &cfg.RedFlags); err != nil {
		return rubric.Config{}, err
	}
	if activatedAt.Valid {
		cfg.ActivatedAt = &activatedAt.Time
	}
	return cfg, nil
}

func marshalContent(cats []rubric.Category, flags []rubric.RedFlag) ([]byte, []byte, error) {
	if cats == nil {
		cats = []rubric.Category{}
	}
	if flags == nil {
		flags = []rubric.RedFlag{}
	}
	catsJSON, err := json.Marshal(cats)
	if err != nil {
		return nil, nil, err
	}
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return nil, nil, err
	}
	return catsJSON, flagsJSON, nil
}
