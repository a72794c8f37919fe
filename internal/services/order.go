package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/Muashef/audiophile-ecommerce/internal/cache"
	"github.com/Muashef/audiophile-ecommerce/internal/config"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/metrics"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/internal/pricing"
	repository "github.com/Muashef/audiophile-ecommerce/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// OrderRepository is the slice of the persistence layer the service needs;
// *repository.OrderRepository satisfies it.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
}

type orderService struct {
	repo   OrderRepository
	cache  cache.Cache
	policy string
}

func NewOrderService(repo OrderRepository, orderCache cache.Cache, checkoutCfg *config.Checkout) OrderService {
	return &orderService{repo: repo, cache: orderCache, policy: checkoutCfg.Policy}
}

// CreateOrder issues the order id and asks the backend to persist the
// order. The id is chosen before the insert and, under the lenient policy,
// is returned as a success even when the insert fails: checkout never
// hard-fails on a backend outage, at the cost of a possible confirmation
// page without a backing record.
func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {

	lines := make([]pricing.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, pricing.Line{Price: item.Price, Quantity: item.Quantity})
	}

	totals := pricing.ComputeTotals(lines)
	if !pricing.Matches(totals, req.Subtotal, req.Shipping, req.Tax, req.Total) {
		return nil, errors.ValidationError("Order totals do not match the submitted items")
	}

	order := &models.Order{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Zip:           req.Zip,
		PaymentMethod: req.PaymentMethod,
		EmoneyNumber:  req.EmoneyNumber,
		EmoneyPin:     req.EmoneyPin,
		Items:         req.Items,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {

		metrics.PersistenceFailures.Inc()

		if s.policy == config.PolicyStrict {
			return nil, errors.DatabaseError("Failed to create order").WithError(err)
		}

		slog.Warn("Order persistence failed, returning soft success",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()))
		metrics.OrdersCreated.WithLabelValues(metrics.OutcomeSoft).Inc()

		// Keep the soft-created order retrievable for the confirmation page.
		s.cacheOrder(ctx, order)

		return &models.CreateOrderResponse{
			OrderID: order.ID,
			Success: true,
			Message: "Order created successfully",
		}, nil
	}

	metrics.OrdersCreated.WithLabelValues(metrics.OutcomePersisted).Inc()
	s.cacheOrder(ctx, order)

	return &models.CreateOrderResponse{
		OrderID: order.ID,
		Success: true,
		Message: "Order created successfully",
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	key := cache.Key(cache.OrderKeyPrefix, id.String())

	var cached models.Order
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {

		if stderrors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	s.cacheOrder(ctx, order)

	return order, nil
}

func (s *orderService) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {

	orders, err := s.repo.ListOrdersByEmail(ctx, email)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// cacheOrder is best effort; a cache failure never affects the caller.
func (s *orderService) cacheOrder(ctx context.Context, order *models.Order) {

	key := cache.Key(cache.OrderKeyPrefix, order.ID.String())

	if err := s.cache.Set(ctx, key, order, 0); err != nil {
		slog.Warn("Failed to cache order", slog.String("orderId", order.ID.String()), slog.String("error", err.Error()))
	}
}
