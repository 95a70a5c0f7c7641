package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
)

const rolesSchema = `
CREATE TABLE IF NOT EXISTS roles (
	id UUID PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	tags JSONB NOT NULL DEFAULT '[]',
	required_skills JSONB NOT NULL DEFAULT '[]'
);`

// Postgres stores the role catalog in a single jsonb-backed table.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes the connection pool, verifies it with a ping
// and ensures the roles table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, rolesSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create roles table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) List(ctx context.Context) ([]roles.Definition, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, title, description, tags, required_skills FROM roles ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var catalog []roles.Definition
	for rows.Next() {
		var (
			role         roles.Definition
			id           uuid.UUID
			tagsJSON     []byte
			requiredJSON []byte
		)
		if err := rows.Scan(&id, &role.Title, &role.Description, &tagsJSON, &requiredJSON); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.ID = id.String()
		if err := json.Unmarshal(tagsJSON, &role.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %q: %w", role.Title, err)
		}
		if err := json.Unmarshal(requiredJSON, &role.RequiredSkills); err != nil {
			return nil, fmt.Errorf("decode required skills for %q: %w", role.Title, err)
		}
		catalog = append(catalog, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	return catalog, nil
}

func (p *Postgres) Append(ctx context.Context, role roles.Definition) (roles.Definition, error) {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}

	tagsJSON, err := json.Marshal(role.Tags)
	if err != nil {
		return roles.Definition{}, fmt.Errorf("encode tags: %w", err)
	}
	requiredJSON, err := json.Marshal(role.RequiredSkills)
	if err != nil {
		return roles.Definition{}, fmt.Errorf("encode required skills: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO roles (id, title, description, tags, required_skills)
		 VALUES ($1, $2, $3, $4, $5)`,
		role.ID, role.Title, role.Description, tagsJSON, requiredJSON)
	if err != nil {
		return roles.Definition{}, fmt.Errorf("insert role %q: %w", role.Title, err)
	}

	return role, nil
}

// SeedFrom copies the file catalog into an empty roles table. A populated
// table is left untouched.
func (p *Postgres) SeedFrom(ctx context.Context, file *File) error {
	var count int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed, err := file.List(ctx)
	if err != nil {
		return fmt.Errorf("read seed roles: %w", err)
	}

	for _, role := range seed {
		if _, err := p.Append(ctx, role); err != nil {
			return err
		}
	}

	return nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
