package repository_test

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	repository "github.com/Muashef/audiophile-ecommerce/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (*repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewOrderRepository(db)
	require.NotNil(t, repo, "NewOrderRepository should return a non-nil repository")

	return repo, mock
}

func testOrder(t *testing.T) *models.Order {
	t.Helper()

	return &models.Order{
		ID:            uuid.New(),
		CustomerName:  "Alexei Ward",
		Email:         "alexei@mail.com",
		Phone:         "+1 202-555-0136",
		Address:       "1137 Williams Avenue",
		City:          "New York",
		Country:       "United States",
		Zip:           "10001",
		PaymentMethod: models.PaymentMethodEMoney,
		EmoneyNumber:  "238521993",
		EmoneyPin:     "6891",
		Items: []models.OrderItem{
			{ID: "1", Name: "XX99 MK II", Price: 100, Quantity: 2},
		},
		Subtotal:  200,
		Shipping:  50,
		Tax:       20,
		Total:     270,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateOrder(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	order := testOrder(t)

	itemsJSON, err := json.Marshal(order.Items)
	require.NoError(t, err)

	expectedInsertSQL := regexp.QuoteMeta(`
		INSERT INTO orders (id, customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`)

	t.Run("Success - Create Order", func(t *testing.T) {
		mock.ExpectExec(expectedInsertSQL).
			WithArgs(order.ID, order.CustomerName, order.Email, order.Phone, order.Address,
				order.City, order.Country, order.Zip, order.PaymentMethod,
				order.EmoneyNumber, order.EmoneyPin, itemsJSON,
				order.Subtotal, order.Shipping, order.Tax, order.Total,
				order.Status, order.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateOrder(ctx, order)

		assert.NoError(t, err, "CreateOrder should succeed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		dbErr := errors.New("connection refused")

		mock.ExpectExec(expectedInsertSQL).
			WithArgs(order.ID, order.CustomerName, order.Email, order.Phone, order.Address,
				order.City, order.Country, order.Zip, order.PaymentMethod,
				order.EmoneyNumber, order.EmoneyPin, itemsJSON,
				order.Subtotal, order.Shipping, order.Tax, order.Total,
				order.Status, order.CreatedAt).
			WillReturnError(dbErr)

		err := repo.CreateOrder(ctx, order)

		assert.ErrorIs(t, err, dbErr)
	})
}

func orderRows(order *models.Order, includeID bool) *sqlmock.Rows {

	itemsJSON, _ := json.Marshal(order.Items)

	columns := []string{
		"customer_name", "email", "phone", "address", "city", "country", "zip",
		"payment_method", "emoney_number", "emoney_pin", "items",
		"subtotal", "shipping", "tax", "total", "status", "created_at",
	}

	values := []driverValueList{{
		order.CustomerName, order.Email, order.Phone, order.Address, order.City,
		order.Country, order.Zip, string(order.PaymentMethod),
		order.EmoneyNumber, order.EmoneyPin, itemsJSON,
		order.Subtotal, order.Shipping, order.Tax, order.Total,
		string(order.Status), order.CreatedAt,
	}}

	if includeID {
		columns = append([]string{"id"}, columns...)
		values[0] = append(driverValueList{order.ID}, values[0]...)
	}

	rows := sqlmock.NewRows(columns)
	for _, v := range values {
		rows.AddRow(v...)
	}

	return rows
}

type driverValueList = []driver.Value

func TestGetOrderByID(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	order := testOrder(t)
	expectedSelectSQL := `SELECT customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at\s+FROM orders\s+WHERE id = \$1`

	t.Run("Success - Order Found", func(t *testing.T) {
		mock.ExpectQuery(expectedSelectSQL).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order, false))

		got, err := repo.GetOrderByID(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, order.CustomerName, got.CustomerName)
		assert.Equal(t, order.Total, got.Total)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "XX99 MK II", got.Items[0].Name)
	})

	t.Run("Failure - No Rows Maps To ErrOrderNotFound", func(t *testing.T) {
		mock.ExpectQuery(expectedSelectSQL).
			WithArgs(order.ID).
			WillReturnRows(sqlmock.NewRows([]string{"customer_name"}))

		_, err := repo.GetOrderByID(ctx, order.ID)

		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("Failure - Backend Error Is Not ErrOrderNotFound", func(t *testing.T) {
		dbErr := errors.New("connection reset")

		mock.ExpectQuery(expectedSelectSQL).
			WithArgs(order.ID).
			WillReturnError(dbErr)

		_, err := repo.GetOrderByID(ctx, order.ID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrOrderNotFound)
	})
}

func TestListOrdersByEmail(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	order := testOrder(t)
	expectedListSQL := `SELECT id, customer_name, email, phone, address, city, country, zip, payment_method, emoney_number, emoney_pin, items, subtotal, shipping, tax, total, status, created_at\s+FROM orders\s+WHERE email = \$1\s+ORDER BY created_at DESC`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(expectedListSQL).
			WithArgs(order.Email).
			WillReturnRows(orderRows(order, true))

		orders, err := repo.ListOrdersByEmail(ctx, order.Email)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
	})

	t.Run("Success - No Orders", func(t *testing.T) {
		mock.ExpectQuery(expectedListSQL).
			WithArgs("nobody@mail.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		orders, err := repo.ListOrdersByEmail(ctx, "nobody@mail.com")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
