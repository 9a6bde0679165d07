// file: service/customer_service.go

package service

import (
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/repository"
)

// CustomerService handles the customer registry. Thin field mapping over the
// repository; kept as a layer so handlers never touch storage directly.
type CustomerService struct {
	repo repository.ICustomerRepository
}

func NewCustomerService(repo repository.ICustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(req *model.CreateCustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(id int) (*model.Customer, error) {
	return s.repo.GetByID(id)
}

func (s *CustomerService) Search(query string) ([]*model.Customer, error) {
	return s.repo.Search(query)
}

func (s *CustomerService) Update(id int, req *model.CreateCustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(id int) error {
	return s.repo.Delete(id)
}
