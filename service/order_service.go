// file: service/order_service.go

package service

import (
	"errors"
	"fmt"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// allowedTransitions is the order workflow. Terminal states have no entries.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.StatusReceived:   {model.StatusProcessing, model.StatusCanceled},
	model.StatusProcessing: {model.StatusReady, model.StatusCanceled},
	model.StatusReady:      {model.StatusCompleted},
}

// OrderService handles order intake, the status workflow, receipts and the
// daily revenue summary.
type OrderService struct {
	orders    repository.IOrderRepository
	customers repository.ICustomerRepository
	catalog   repository.ICatalogRepository
}

func NewOrderService(orders repository.IOrderRepository, customers repository.ICustomerRepository, catalog repository.ICatalogRepository) *OrderService {
	return &OrderService{orders: orders, customers: customers, catalog: catalog}
}

// Create prices the order at intake time: every line item copies the current
// catalog name and price, so later catalog edits never reprice this order.
func (s *OrderService) Create(req *model.CreateOrderRequest) (*model.Order, error) {
	if _, err := s.customers.GetByID(req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, err)
	}

	order := &model.Order{
		CustomerID:    req.CustomerID,
		ReceiptNumber: uuid.NewString(),
		Status:        model.StatusReceived,
	}

	for _, line := range req.Items {
		item, err := s.catalog.GetByID(line.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", line.ServiceID, err)
		}
		subtotal := item.Price * line.Quantity
		order.Items = append(order.Items, &model.OrderItem{
			ServiceID:   item.ID,
			ServiceName: item.Name,
			UnitPrice:   item.Price,
			Quantity:    line.Quantity,
			Subtotal:    subtotal,
		})
		order.Total += subtotal
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"order_id":       order.ID,
		"receipt_number": order.ReceiptNumber,
		"total":          order.Total,
	}).Info("Order created")

	return order, nil
}

func (s *OrderService) Get(id int) (*model.Order, error) {
	return s.orders.GetByID(id)
}

// UpdateStatus enforces the workflow received → processing → ready →
// completed, with cancellation possible until the order is ready.
func (s *OrderService) UpdateStatus(id int, status model.OrderStatus) (*model.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range allowedTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Receipt assembles the customer-facing view of one order.
func (s *OrderService) Receipt(id int) (*model.Receipt, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}

	return &model.Receipt{
		ReceiptNumber: order.ReceiptNumber,
		Customer:      customer,
		Items:         order.Items,
		Total:         order.Total,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
	}, nil
}

func (s *OrderService) DailySummary(date string) (*model.DailySummary, error) {
	return s.orders.DailySummary(date)
}
