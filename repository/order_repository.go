package repository

import (
	"database/sql"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/sirupsen/logrus"
)

// IOrderRepository defines the contract for order database operations.
type IOrderRepository interface {
	Create(order *model.Order) error
	GetByID(id int) (*model.Order, error)
	UpdateStatus(id int, status model.OrderStatus) error
	DailySummary(date string) (*model.DailySummary, error)
}

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order header and its line items in one transaction so a
// partial order can never be observed.
func (r *OrderRepository) Create(order *model.Order) error {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id":    order.CustomerID,
		"receipt_number": order.ReceiptNumber,
	})

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin order transaction")
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (customer_id, receipt_number, status, total) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if err := tx.QueryRow(query, order.CustomerID, order.ReceiptNumber, order.Status, order.Total).Scan(&order.ID, &order.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to insert order")
		return err
	}

	itemQuery := `INSERT INTO order_items (order_id, service_id, service_name, unit_price, quantity, subtotal) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	for _, item := range order.Items {
		item.OrderID = order.ID
		if err := tx.QueryRow(itemQuery, item.OrderID, item.ServiceID, item.ServiceName, item.UnitPrice, item.Quantity, item.Subtotal).Scan(&item.ID); err != nil {
			log.WithError(err).Error("Failed to insert order item")
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(id int) (*model.Order, error) {
	order := &model.Order{}
	query := `SELECT id, customer_id, receipt_number, status, total, created_at FROM orders WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&order.ID, &order.CustomerID, &order.ReceiptNumber, &order.Status, &order.Total, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	itemQuery := `SELECT id, order_id, service_id, service_name, unit_price, quantity, subtotal FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.DB.Query(itemQuery, id)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list order items query")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ServiceID, &item.ServiceName, &item.UnitPrice, &item.Quantity, &item.Subtotal); err != nil {
			logger.Log.WithError(err).Error("Failed to scan order item row")
			return nil, err
		}
		order.Items = append(order.Items, &item)
	}
	return order, rows.Err()
}

func (r *OrderRepository) UpdateStatus(id int, status model.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`
	res, err := r.DB.Exec(query, id, status)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update order status query")
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DailySummary aggregates order count and completed revenue for one calendar
// day (date formatted YYYY-MM-DD).
func (r *OrderRepository) DailySummary(date string) (*model.DailySummary, error) {
	summary := &model.DailySummary{Date: date}
	query := `SELECT COUNT(*), COALESCE(SUM(total) FILTER (WHERE status = 'completed'), 0)
		FROM orders WHERE created_at::date = $1::date`
	err := r.DB.QueryRow(query, date).Scan(&summary.Orders, &summary.Revenue)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute daily summary query")
		return nil, err
	}
	return summary, nil
}
