package repomanager

import (
	"context"
	"database/sql"

	"github.com/Dev-Puneet-V/xianinfotech/internal/dbx"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/repositories/refreshtokens"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx, so
// services can run the same repository code inside and outside transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
