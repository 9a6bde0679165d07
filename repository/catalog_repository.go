package repository

import (
	"database/sql"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
)

// ICatalogRepository defines the contract for service catalog operations.
type ICatalogRepository interface {
	Create(item *model.ServiceItem) error
	GetByID(id int) (*model.ServiceItem, error)
	List() ([]*model.ServiceItem, error)
	Update(item *model.ServiceItem) error
}

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) Create(item *model.ServiceItem) error {
	query := `INSERT INTO services (name, unit, price, turnaround_hours) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, item.Name, item.Unit, item.Price, item.TurnaroundHours).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create service query")
		return err
	}
	return nil
}

func (r *CatalogRepository) GetByID(id int) (*model.ServiceItem, error) {
	item := &model.ServiceItem{}
	query := `SELECT id, name, unit, price, turnaround_hours, created_at FROM services WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&item.ID, &item.Name, &item.Unit, &item.Price, &item.TurnaroundHours, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CatalogRepository) List() ([]*model.ServiceItem, error) {
	query := `SELECT id, name, unit, price, turnaround_hours, created_at FROM services ORDER BY name`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list services query")
		return nil, err
	}
	defer rows.Close()

	var items []*model.ServiceItem
	for rows.Next() {
		var item model.ServiceItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &item.Price, &item.TurnaroundHours, &item.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan service row")
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) Update(item *model.ServiceItem) error {
	query := `UPDATE services SET name = $2, unit = $3, price = $4, turnaround_hours = $5 WHERE id = $1`
	res, err := r.DB.Exec(query, item.ID, item.Name, item.Unit, item.Price, item.TurnaroundHours)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update service query")
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
