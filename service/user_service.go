// file: service/user_service.go

package service

import (
	"errors"
	"fmt"

	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/repository"
)

// UserService handles staff account administration.
type UserService struct {
	repo   repository.IUserRepository
	hasher *PasswordHasher
}

func NewUserService(repo repository.IUserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register creates a staff or admin account with a freshly hashed password.
func (s *UserService) Register(req *model.RegisterRequest) (*model.User, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
		Role:     req.Role,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserRole validates the role and calls the repository to update it.
func (s *UserService) UpdateUserRole(userID int, newRole model.Role) error {
	if newRole != model.RoleAdmin && newRole != model.RoleStaff {
		return errors.New("invalid role specified")
	}
	return s.repo.UpdateUserRole(userID, string(newRole))
}
