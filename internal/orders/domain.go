package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is created fresh on every submission; there is no
// deduplication by phone or email.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	Address string `json:"endereco"`
}

// Order is the header row of one submission.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"cliente_id"`
	DeliveryAddress string          `json:"endereco_entrega"`
	PaymentMethod   string          `json:"forma_pagamento"`
	Notes           string          `json:"observacoes"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderLine captures quantity and unit price at order time; the price
// is a snapshot, independent of the product's current price.
type OrderLine struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"pedido_id"`
	ProductID int64           `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

// AdminOrderView joins an order with its owning customer for the
// operator dashboard.
type AdminOrderView struct {
	Order
	CustomerName    string `json:"cliente_nome"`
	CustomerPhone   string `json:"telefone"`
	CustomerAddress string `json:"endereco"`
}

// CustomerInput is the `cliente` object of a cart submission.
type CustomerInput struct {
	Name    string `json:"nome" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Email   string `json:"email"`
	Address string `json:"endereco" validate:"required"`
}

// CartItem is one line of the submitted cart. Preco arrives as text and
// is parsed to decimal before any row is written.
type CartItem struct {
	ProductID int64  `json:"id" validate:"required,gt=0"`
	Quantity  int    `json:"quantidade" validate:"required,gt=0"`
	Price     string `json:"preco" validate:"required"`
}

// SubmitOrderRequest is the full cart payload. An empty itens list is
// accepted and produces an order with no lines.
type SubmitOrderRequest struct {
	Customer        CustomerInput `json:"cliente" validate:"required"`
	Items           []CartItem    `json:"itens" validate:"dive"`
	DeliveryAddress string        `json:"endereco_entrega" validate:"required"`
	PaymentMethod   string        `json:"forma_pagamento" validate:"required"`
	Notes           string        `json:"observacoes"`
	Total           string        `json:"total" validate:"required"`
}
