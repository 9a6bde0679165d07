// file: model/request.go

package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest carries the raw refresh secret back to the server.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes the presented session, or every session of its owner
// when All is set.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	All          bool   `json:"all"`
}

// RegisterRequest defines the payload for creating a new staff account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=admin staff"`
}

// UpdateUserRoleRequest defines the payload for updating a user's role.
type UpdateUserRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=admin staff"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required,min=6,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=255"`
}

type CreateServiceItemRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Unit            string  `json:"unit" validate:"required,oneof=kg item"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	TurnaroundHours int     `json:"turnaround_hours" validate:"required,gt=0"`
}

type OrderItemRequest struct {
	ServiceID int     `json:"service_id" validate:"required,gt=0"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID int                `json:"customer_id" validate:"required,gt=0"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=received processing ready completed canceled"`
}
