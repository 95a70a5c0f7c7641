// Package store persists the role catalog. A Postgres pool is used when a
// database URL is configured and reachable; otherwise the JSON roles file
// serves as both seed data and the live store.
package store

import (
	"context"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
	"go.uber.org/zap"
)

// Store reads and extends the role catalog.
type Store interface {
	// List returns every role in the catalog.
	List(ctx context.Context) ([]roles.Definition, error)
	// Append adds a role and returns it with its assigned ID.
	Append(ctx context.Context, role roles.Definition) (roles.Definition, error)
	Close()
}

// Open selects the backing store. When databaseURL is set it probes Postgres,
// creates the schema and seeds it from rolesFile if the table is empty. A
// failed probe degrades to the file store rather than aborting startup.
func Open(ctx context.Context, databaseURL, rolesFile string, logger *zap.Logger) (Store, error) {
	file := NewFile(rolesFile)

	if databaseURL == "" {
		logger.Info("no database configured, using roles file", zap.String("path", rolesFile))
		return file, nil
	}

	pg, err := ConnectPostgres(ctx, databaseURL)
	if err != nil {
		logger.Warn("postgres unavailable, falling back to roles file",
			zap.String("path", rolesFile), zap.Error(err))
		return file, nil
	}

	if err := pg.SeedFrom(ctx, file); err != nil {
		logger.Warn("seeding postgres from roles file failed", zap.Error(err))
	}

	logger.Info("role catalog backed by postgres")
	return pg, nil
}
