package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdash/internal/dbx"
)

// Keys used in the metadata table.
const (
	TokenKey    = "token"
	IdentityKey = "identity"
)

// Persister is the durable side of the Store.
type Persister interface {
	// Load returns the persisted state, Anonymous when nothing is stored.
	Load(ctx context.Context) (State, error)
	// Save writes st. An Unauthorized state deletes the stored keys.
	Save(ctx context.Context, st State) error
}

// SQLitePersister keeps the state in the metadata table, token and identity
// written in one transaction.
type SQLitePersister struct {
	db *sql.DB
}

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db}
}

func (p *SQLitePersister) Load(ctx context.Context) (State, error) {
	repo := metadata.NewSQLiteRepository(p.db)

	token, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return Anonymous(), fmt.Errorf("load token: %w", err)
	}
	identity, err := repo.Get(ctx, IdentityKey)
	if err != nil {
		return Anonymous(), fmt.Errorf("load identity: %w", err)
	}
	return SignedIn(Token(token), string(identity)), nil
}

func (p *SQLitePersister) Save(ctx context.Context, st State) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if !st.Authorized() {
			if err := repo.Delete(ctx, TokenKey); err != nil {
				return err
			}
			return repo.Delete(ctx, IdentityKey)
		}

		if err := repo.Set(ctx, TokenKey, []byte(st.Token())); err != nil {
			return err
		}
		if st.Identity() == "" {
			return repo.Delete(ctx, IdentityKey)
		}
		return repo.Set(ctx, IdentityKey, []byte(st.Identity()))
	})
}
