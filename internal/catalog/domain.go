package catalog

import "github.com/shopspring/decimal"

// Product is one menu entry. JSON field names are the storefront contract.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	ImageURL    *string         `json:"imagem_url"`
	Available   bool            `json:"disponivel"`
}

// SaveProductInput is the multipart form contents of an admin upsert.
// A present ID selects update; absence selects insert. PriceText is
// parsed to decimal by the service. ImageURL is kept verbatim unless an
// upload replaces it.
type SaveProductInput struct {
	ID          *int64
	Name        string
	Description string
	PriceText   string
	Category    string
	ImageURL    string
	Available   bool
}
