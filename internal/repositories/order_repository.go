package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/internal/utils"
	"github.com/google/uuid"
)

// ErrOrderNotFound lets the service layer tell "no such order" apart from
// a backend failure; the two surface as different HTTP statuses.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder inserts the order as a single row; the line items travel in a
// JSONB column so the insert stays one atomic statement.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = r.DB.ExecContext(dbCtx, query,
		order.ID, order.CustomerName, order.Email, order.Phone, order.Address,
		order.City, order.Country, order.Zip, order.PaymentMethod,
		order.EmoneyNumber, order.EmoneyPin, items,
		order.Subtotal, order.Shipping, order.Tax, order.Total,
		order.Status, order.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{
		ID: id,
	}

	query := `
		SELECT customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at
		FROM orders
		WHERE id = $1
	`

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&order.CustomerName, &order.Email, &order.Phone, &order.Address,
		&order.City, &order.Country, &order.Zip, &order.PaymentMethod,
		&order.EmoneyNumber, &order.EmoneyPin, &itemsJSON,
		&order.Subtotal, &order.Shipping, &order.Tax, &order.Total,
		&order.Status, &order.CreatedAt)

	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return order, nil
}

// ListOrdersByEmail returns a customer's orders, newest first, using the
// email index.
func (r *OrderRepository) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		var order models.Order
		var itemsJSON []byte

		err := rows.Scan(
			&order.ID, &order.CustomerName, &order.Email, &order.Phone, &order.Address,
			&order.City, &order.Country, &order.Zip, &order.PaymentMethod,
			&order.EmoneyNumber, &order.EmoneyPin, &itemsJSON,
			&order.Subtotal, &order.Shipping, &order.Tax, &order.Total,
			&order.Status, &order.CreatedAt)

		if err != nil {
			return nil, fmt.Errorf("failed to scan the orders: %w", err)
		}

		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}

		orders = append(orders, order)

	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
