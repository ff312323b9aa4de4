package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nahora-delivery/nahora/internal/shared"
)

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// List returns products ordered by ascending id, optionally filtered to
// available ones (the customer-facing view).
func (r *PGRepository) List(ctx context.Context, onlyAvailable bool) ([]Product, error) {
	query := `
		SELECT id, nome, descricao, preco, categoria, imagem_url, disponivel
		FROM produtos
		ORDER BY id
	`
	if onlyAvailable {
		query = `
			SELECT id, nome, descricao, preco, categoria, imagem_url, disponivel
			FROM produtos
			WHERE disponivel = true
			ORDER BY id
		`
	}
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.Available); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Insert creates a new product row.
func (r *PGRepository) Insert(ctx context.Context, p Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO produtos (nome, descricao, preco, categoria, imagem_url, disponivel)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing row. Updating an
// absent id affects zero rows and is not an error.
func (r *PGRepository) Update(ctx context.Context, p Product) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE produtos
		SET nome = $1, descricao = $2, preco = $3, categoria = $4, imagem_url = $5, disponivel = $6
		WHERE id = $7
	`, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// GetImageURL fetches just the image locator of a product.
func (r *PGRepository) GetImageURL(ctx context.Context, id int64) (*string, error) {
	var imageURL *string
	err := r.pool.QueryRow(ctx, `SELECT imagem_url FROM produtos WHERE id = $1`, id).Scan(&imageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return imageURL, nil
}

// Delete removes a product row. Deleting an absent id is a no-op.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
