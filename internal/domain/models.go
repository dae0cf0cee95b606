package domain

import (
	"fmt"
	"time"
)

// Category is the closed set of menu categories. Free-text categories
// from client payloads are rejected at parse time.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryBiryani   Category = "biryani"
	CategoryCurry     Category = "curry"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAppetizer, CategoryMain, CategoryBiryani, CategoryCurry, CategoryDessert, CategoryBeverage:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// OrderStatus tracks an order or booking through the kitchen workflow.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// statusTransitions is the legal forward graph; admin updates outside
// it are rejected.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus records how far payment verification has gone. The
// system never verifies payment programmatically; a human promotes
// screenshot_uploaded to confirmed.
type PaymentStatus string

const (
	PaymentPending            PaymentStatus = "pending"
	PaymentScreenshotUploaded PaymentStatus = "screenshot_uploaded"
	PaymentConfirmed          PaymentStatus = "confirmed"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentScreenshotUploaded, PaymentConfirmed:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// MenuItem is a catalog entry. Price is in paise so totals stay exact.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Category    Category  `json:"category"`
	Vegetarian  bool      `json:"vegetarian"`
	Spicy       bool      `json:"spicy"`
	Available   bool      `json:"available"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartLine carries a denormalized name and unit price so the cart can
// render after a reload without refetching the catalog.
type CartLine struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderItem is a snapshot of a cart line at submission time, not a
// live catalog reference.
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Order is the durable projection of a cart plus checkout contact
// fields, written once per successful checkout.
type Order struct {
	OrderID         string        `json:"order_id"`
	UserID          string        `json:"user_id"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email,omitempty"`
	PickupTime      string        `json:"pickup_time"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     int           `json:"total_amount"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Booking is a table reservation with an advance fee per guest.
type Booking struct {
	BookingID     string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Guests        int           `json:"guests"`
	Fee           int           `json:"fee"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Feedback struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfile struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is an authenticated identity handle resolved from an opaque
// token.
type Session struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// OrderEvent is published to Kafka when an order document is written.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Total     int         `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"
