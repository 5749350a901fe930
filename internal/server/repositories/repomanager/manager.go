// Package repomanager wires the database connection to the repository set
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/legalease/legallite/internal/server/repositories/uploads"
	"github.com/legalease/legallite/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Uploads() uploads.Repository
	Close() error
}
