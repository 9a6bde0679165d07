package repository

import (
	"database/sql"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
)

// ICustomerRepository defines the contract for customer database operations.
type ICustomerRepository interface {
	Create(customer *model.Customer) error
	GetByID(id int) (*model.Customer, error)
	Search(query string) ([]*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id int) error
}

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(customer *model.Customer) error {
	query := `INSERT INTO customers (name, phone, email, address) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, customer.Name, customer.Phone, customer.Email, customer.Address).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create customer query")
		return err
	}
	return nil
}

func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	customer := &model.Customer{}
	query := `SELECT id, name, phone, email, address, created_at FROM customers WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.Address, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Search matches customers by name or phone fragment. An empty query lists
// everyone, most recent first.
func (r *CustomerRepository) Search(q string) ([]*model.Customer, error) {
	query := `SELECT id, name, phone, email, address, created_at FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT 100`
	rows, err := r.DB.Query(query, q)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute customer search query")
		return nil, err
	}
	defer rows.Close()

	var customers []*model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan customer row")
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(customer *model.Customer) error {
	query := `UPDATE customers SET name = $2, phone = $3, email = $4, address = $5 WHERE id = $1`
	res, err := r.DB.Exec(query, customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update customer query")
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CustomerRepository) Delete(id int) error {
	query := `DELETE FROM customers WHERE id = $1`
	_, err := r.DB.Exec(query, id)
	return err
}
