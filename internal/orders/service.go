package orders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nahora-delivery/nahora/internal/shared"
)

// Store defines the persistence contract used by the service.
type Store interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	ListForAdmin(ctx context.Context) ([]AdminOrderView, error)
}

// Service wraps order intake business rules.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs an orders service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Submit persists one cart: customer, order header, then one line per
// item in submitted order, all inside a single transaction. The stored
// total is the submitted total verbatim, never recomputed from lines.
func (s *Service) Submit(ctx context.Context, req SubmitOrderRequest) (int64, error) {
	total, err := decimal.NewFromString(strings.TrimSpace(req.Total))
	if err != nil {
		return 0, fmt.Errorf("%w: total %q", shared.ErrValidation, req.Total)
	}

	prices := make([]decimal.Decimal, len(req.Items))
	for i, item := range req.Items {
		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil {
			return 0, fmt.Errorf("%w: item %d preco %q", shared.ErrValidation, i, item.Price)
		}
		prices[i] = price
	}

	var orderID int64
	err = s.store.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		customerID, err := tx.CreateCustomer(ctx, Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		})
		if err != nil {
			return err
		}

		orderID, err = tx.CreateOrder(ctx, Order{
			CustomerID:      customerID,
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
			Total:           total,
		})
		if err != nil {
			return err
		}

		// Lines are inserted sequentially to keep their ordering
		// deterministic and failure attribution simple.
		for i, item := range req.Items {
			if _, err := tx.InsertOrderLine(ctx, OrderLine{
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: prices[i],
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("submit order: %w", err)
	}

	s.logger.Info("order received", slog.Int64("pedido_id", orderID), slog.Int("itens", len(req.Items)))
	return orderID, nil
}

// ListForAdmin returns the operator dashboard view.
func (s *Service) ListForAdmin(ctx context.Context) ([]AdminOrderView, error) {
	return s.store.ListForAdmin(ctx)
}
