package rest

import (
	"time"

	"github.com/google/uuid"
)

// Wire shapes. Field names mirror the API's camelCase JSON exactly; the
// converters translate them into domain types.

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        userDTO `json:"user"`
	AccessToken string  `json:"accessToken,omitempty"`
}

type meResponse struct {
	User userDTO `json:"user"`
}

type userDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type equipmentDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	SerialNumber string    `json:"serialNumber"`
	PricePerDay  int64     `json:"pricePerDay"`
	Status       string    `json:"status"`
	ImageURLs    []string  `json:"imageUrls"`
	CreatedAt    time.Time `json:"createdAt"`
}

type equipmentForm struct {
	Name         string   `json:"name"`
	Brand        string   `json:"brand,omitempty"`
	SerialNumber string   `json:"serialNumber,omitempty"`
	PricePerDay  int64    `json:"pricePerDay"`
	Status       string   `json:"status,omitempty"`
	ImageURLs    []string `json:"imageUrls,omitempty"`
}

type customerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type customerForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type orderDTO struct {
	ID             uuid.UUID   `json:"id"`
	CustomerID     uuid.UUID   `json:"customerId"`
	CustomerName   string      `json:"customerName"`
	EquipmentIDs   []uuid.UUID `json:"equipmentIds"`
	EquipmentNames []string    `json:"equipmentNames"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	TotalDays      int         `json:"totalDays"`
	PricePerDay    int64       `json:"pricePerDay"`
	Deposit        int64       `json:"deposit"`
	Discount       int64       `json:"discount"`
	TotalAmount    int64       `json:"totalAmount"`
	Status         string      `json:"status"`
	Note           string      `json:"note"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type createOrderRequest struct {
	CustomerID   uuid.UUID   `json:"customerId"`
	EquipmentIDs []uuid.UUID `json:"equipmentIds"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	TotalDays    int         `json:"totalDays"`
	PricePerDay  int64       `json:"pricePerDay"`
	Deposit      int64       `json:"deposit"`
	Discount     int64       `json:"discount"`
	TotalAmount  int64       `json:"totalAmount"`
	Note         string      `json:"note"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type bookingDTO struct {
	OrderID      uuid.UUID `json:"orderId"`
	CustomerName string    `json:"customerName"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
}

type availabilityDTO struct {
	EquipmentID   uuid.UUID    `json:"equipmentId"`
	EquipmentName string       `json:"equipmentName"`
	Bookings      []bookingDTO `json:"bookings"`
}

type summaryDTO struct {
	TodayRevenue        int64 `json:"todayRevenue"`
	MonthlyRevenue      int64 `json:"monthlyRevenue"`
	ActiveOrders        int   `json:"activeOrders"`
	PendingOrders       int   `json:"pendingOrders"`
	AvailableEquipments int   `json:"availableEquipments"`
}
