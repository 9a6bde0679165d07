// file: service/order_service_test.go

package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/derangga/laundry-app-sub001/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(id int) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(id int, status model.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *mockOrderRepo) DailySummary(date string) (*model.DailySummary, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailySummary), args.Error(1)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(customer *model.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

// --- Unused methods that are required to satisfy the interface contract ---
func (m *mockCustomerRepo) Search(string) ([]*model.Customer, error) { return nil, nil }
func (m *mockCustomerRepo) Update(*model.Customer) error             { return nil }
func (m *mockCustomerRepo) Delete(int) error                         { return nil }

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) Create(item *model.ServiceItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *mockCatalogRepo) GetByID(id int) (*model.ServiceItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceItem), args.Error(1)
}

func (m *mockCatalogRepo) List() ([]*model.ServiceItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ServiceItem), args.Error(1)
}

func (m *mockCatalogRepo) Update(item *model.ServiceItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func TestOrderService_CreateSnapshotsPrices(t *testing.T) {
	orders := new(mockOrderRepo)
	customers := new(mockCustomerRepo)
	catalog := new(mockCatalogRepo)
	svc := NewOrderService(orders, customers, catalog)

	customers.On("GetByID", 1).Return(&model.Customer{ID: 1, Name: "Ayu"}, nil).Once()
	catalog.On("GetByID", 2).Return(&model.ServiceItem{ID: 2, Name: "Wash & Fold", Unit: "kg", Price: 10.0}, nil).Once()
	orders.On("Create", mock.MatchedBy(func(o *model.Order) bool {
		return o.Status == model.StatusReceived && o.ReceiptNumber != "" && len(o.Items) == 1
	})).Return(nil).Once()

	order, err := svc.Create(&model.CreateOrderRequest{
		CustomerID: 1,
		Items:      []model.OrderItemRequest{{ServiceID: 2, Quantity: 2.5}},
	})

	assert.NoError(t, err)
	// The line item carries a copy of the catalog name and price; repricing
	// the catalog later must not change this order.
	assert.Equal(t, "Wash & Fold", order.Items[0].ServiceName)
	assert.Equal(t, 10.0, order.Items[0].UnitPrice)
	assert.Equal(t, 25.0, order.Items[0].Subtotal)
	assert.Equal(t, 25.0, order.Total)
	orders.AssertExpectations(t)
}

func TestOrderService_CreateUnknownCustomer(t *testing.T) {
	orders := new(mockOrderRepo)
	customers := new(mockCustomerRepo)
	svc := NewOrderService(orders, customers, new(mockCatalogRepo))

	customers.On("GetByID", 9).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.Create(&model.CreateOrderRequest{
		CustomerID: 9,
		Items:      []model.OrderItemRequest{{ServiceID: 2, Quantity: 1}},
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		orders := new(mockOrderRepo)
		svc := NewOrderService(orders, new(mockCustomerRepo), new(mockCatalogRepo))

		orders.On("GetByID", 4).Return(&model.Order{ID: 4, Status: model.StatusReceived}, nil).Once()
		orders.On("UpdateStatus", 4, model.StatusProcessing).Return(nil).Once()

		order, err := svc.UpdateStatus(4, model.StatusProcessing)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusProcessing, order.Status)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		orders := new(mockOrderRepo)
		svc := NewOrderService(orders, new(mockCustomerRepo), new(mockCatalogRepo))

		orders.On("GetByID", 4).Return(&model.Order{ID: 4, Status: model.StatusReceived}, nil).Once()

		_, err := svc.UpdateStatus(4, model.StatusReady)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("terminal state cannot move", func(t *testing.T) {
		orders := new(mockOrderRepo)
		svc := NewOrderService(orders, new(mockCustomerRepo), new(mockCatalogRepo))

		orders.On("GetByID", 4).Return(&model.Order{ID: 4, Status: model.StatusCompleted}, nil).Once()

		_, err := svc.UpdateStatus(4, model.StatusProcessing)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOrderService_Receipt(t *testing.T) {
	orders := new(mockOrderRepo)
	customers := new(mockCustomerRepo)
	svc := NewOrderService(orders, customers, new(mockCatalogRepo))

	created := time.Now()
	orders.On("GetByID", 4).Return(&model.Order{
		ID: 4, CustomerID: 1, ReceiptNumber: "rcpt-1", Status: model.StatusReady,
		Total: 40, CreatedAt: created,
		Items: []*model.OrderItem{{ServiceName: "Ironing", Subtotal: 40}},
	}, nil).Once()
	customers.On("GetByID", 1).Return(&model.Customer{ID: 1, Name: "Ayu"}, nil).Once()

	receipt, err := svc.Receipt(4)
	assert.NoError(t, err)
	assert.Equal(t, "rcpt-1", receipt.ReceiptNumber)
	assert.Equal(t, "Ayu", receipt.Customer.Name)
	assert.Len(t, receipt.Items, 1)
	assert.Equal(t, 40.0, receipt.Total)
}
