package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Recognised configuration keys. PUT /api/config only ever touches these.
const (
	KeyStoreOpen     = "loja_aberta"
	KeyWhatsappPhone = "telefone_whatsapp"
)

// PGRepository implements Store using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// GetAll folds every config row into a key→value map.
func (r *PGRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT chave, valor FROM config`)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config row: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

// SetKnown updates exactly the two recognised keys in one transaction.
// Unrecognised keys are never created by this path.
func (r *PGRepository) SetKnown(ctx context.Context, storeOpen, whatsappPhone string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for key, value := range map[string]string{
		KeyStoreOpen:     storeOpen,
		KeyWhatsappPhone: whatsappPhone,
	} {
		if _, err := tx.Exec(ctx, `UPDATE config SET valor = $1 WHERE chave = $2`, value, key); err != nil {
			return fmt.Errorf("update config %s: %w", key, err)
		}
	}
	return tx.Commit(ctx)
}
