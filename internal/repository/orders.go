package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sifted_back_end/internal/database"
	"sifted_back_end/internal/models"

	"github.com/gocql/gocql"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) error
	// MarkPaid flips the order identified by the gateway session id to
	// "paid". The bool reports whether a transition happened; replayed
	// webhooks find the order already paid and report false.
	MarkPaid(ctx context.Context, externalID string) (models.Order, bool, error)
	List(ctx context.Context) ([]models.Order, error)
}

type ScyllaOrderRepository struct{}

func NewScyllaOrderRepository() *ScyllaOrderRepository {
	return &ScyllaOrderRepository{}
}

// Items and customer are stored as JSON text columns; the dashboard decodes
// them when it aggregates.
func (r *ScyllaOrderRepository) Insert(ctx context.Context, order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	customerJSON, err := json.Marshal(order.Customer)
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO orders (order_id, external_id, items, total, customer, status, invoice_url, created_at)
	                      VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.ExternalID, string(itemsJSON), order.Total, string(customerJSON),
		order.Status, order.InvoiceURL, order.CreatedAt).
		WithContext(ctx).Exec()
}

func (r *ScyllaOrderRepository) MarkPaid(ctx context.Context, externalID string) (models.Order, bool, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, false, err
	}

	var (
		order                   models.Order
		itemsJSON, customerJSON string
	)
	// external_id carries a secondary index, see scripts/scylladb_init.cql.
	err = session.Query(`SELECT order_id, external_id, items, total, customer, status, invoice_url, created_at
	                     FROM orders WHERE external_id = ?`, externalID).
		WithContext(ctx).
		Scan(&order.ID, &order.ExternalID, &itemsJSON, &order.Total, &customerJSON,
			&order.Status, &order.InvoiceURL, &order.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Order{}, false, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, false, err
	}

	_ = json.Unmarshal([]byte(itemsJSON), &order.Items)
	_ = json.Unmarshal([]byte(customerJSON), &order.Customer)

	if order.Status == models.OrderStatusPaid {
		return order, false, nil
	}

	if err := session.Query(`UPDATE orders SET status = ? WHERE order_id = ?`,
		models.OrderStatusPaid, order.ID).WithContext(ctx).Exec(); err != nil {
		return models.Order{}, false, err
	}

	order.Status = models.OrderStatusPaid
	return order, true, nil
}

func (r *ScyllaOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, external_id, items, total, customer, status, invoice_url, created_at FROM orders`).
		WithContext(ctx).Iter()

	var orders []models.Order
	var (
		order                   models.Order
		itemsJSON, customerJSON string
		createdAt               time.Time
	)

	for iter.Scan(&order.ID, &order.ExternalID, &itemsJSON, &order.Total, &customerJSON,
		&order.Status, &order.InvoiceURL, &createdAt) {
		order.CreatedAt = createdAt
		_ = json.Unmarshal([]byte(itemsJSON), &order.Items)
		_ = json.Unmarshal([]byte(customerJSON), &order.Customer)
		orders = append(orders, order)
		order = models.Order{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}
