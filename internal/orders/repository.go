package orders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for order intake.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// TxRepository exposes the inserts of one submission. All three run
// inside a single transaction so a partial cart never becomes visible.
type TxRepository interface {
	CreateCustomer(ctx context.Context, c Customer) (int64, error)
	CreateOrder(ctx context.Context, o Order) (int64, error)
	InsertOrderLine(ctx context.Context, line OrderLine) (int64, error)
}

type txRepo struct {
	tx pgx.Tx
}

// WithTx wraps callback in a transaction, rolling back on error.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	wrapper := &txRepo{tx: tx}
	if err := fn(ctx, wrapper); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (t *txRepo) CreateCustomer(ctx context.Context, c Customer) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
		INSERT INTO clientes (nome, telefone, email, endereco)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.Phone, c.Email, c.Address).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

func (t *txRepo) CreateOrder(ctx context.Context, o Order) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
		INSERT INTO pedidos (cliente_id, endereco_entrega, forma_pagamento, observacoes, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, o.CustomerID, o.DeliveryAddress, o.PaymentMethod, o.Notes, o.Total).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

func (t *txRepo) InsertOrderLine(ctx context.Context, line OrderLine) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
		INSERT INTO pedido_itens (pedido_id, produto_id, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order line: %w", err)
	}
	return id, nil
}

// ListForAdmin returns all orders joined with their customer, newest
// first by creation timestamp.
func (r *Repository) ListForAdmin(ctx context.Context) ([]AdminOrderView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.cliente_id, p.endereco_entrega, p.forma_pagamento, p.observacoes,
		       p.total, p.created_at,
		       c.nome AS cliente_nome, c.telefone, c.endereco
		FROM pedidos p
		JOIN clientes c ON p.cliente_id = c.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	views := []AdminOrderView{}
	for rows.Next() {
		var v AdminOrderView
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.DeliveryAddress, &v.PaymentMethod, &v.Notes,
			&v.Total, &v.CreatedAt,
			&v.CustomerName, &v.CustomerPhone, &v.CustomerAddress,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
