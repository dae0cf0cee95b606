package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"reeves-booking/internal/domain"
)

// Advance fee collected per guest, in paise.
const bookingFeePerGuest = 10000

var ErrBadTransition = errors.New("status transition not allowed")

// Bookings covers table reservations, feedback, the customer's own
// history and the admin back-office reads and status updates.
type Bookings struct {
	gateway DocumentGateway
	newID   func() string
	now     func() time.Time
}

func NewBookings(gateway DocumentGateway) *Bookings {
	return &Bookings{gateway: gateway, newID: NewOrderID, now: time.Now}
}

func (s *Bookings) CreateBooking(ctx context.Context, sess *domain.Session, b *domain.Booking) error {
	if sess == nil {
		return ErrNotAuthenticated
	}
	if b.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if b.Phone == "" {
		return &ValidationError{Field: "phone"}
	}
	if b.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if b.Time == "" {
		return &ValidationError{Field: "time"}
	}
	if b.Guests < 1 {
		return &ValidationError{Field: "guests"}
	}

	b.BookingID = s.newID()
	b.UserID = sess.UID
	b.Fee = b.Guests * bookingFeePerGuest
	b.Status = domain.StatusPending
	b.PaymentStatus = domain.PaymentPending
	b.CreatedAt = s.now()
	return s.gateway.Create(ctx, CollectionBookings, b.BookingID, b)
}

func (s *Bookings) ListUserBookings(ctx context.Context, uid string) ([]domain.Booking, error) {
	return decodeBookings(s.gateway.Query(ctx, CollectionBookings, map[string]string{"user_id": uid}, "created_at", true))
}

func (s *Bookings) ListUserOrders(ctx context.Context, uid string) ([]domain.Order, error) {
	return decodeOrders(s.gateway.Query(ctx, CollectionPreOrders, map[string]string{"user_id": uid}, "created_at", true))
}

func (s *Bookings) CreateFeedback(ctx context.Context, fb *domain.Feedback) error {
	if fb.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if fb.Message == "" {
		return &ValidationError{Field: "message"}
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return &ValidationError{Field: "rating"}
	}
	fb.CreatedAt = s.now()
	return s.gateway.Create(ctx, CollectionFeedback, s.newID(), fb)
}

func (s *Bookings) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return decodeBookings(s.gateway.Query(ctx, CollectionBookings, nil, "created_at", true))
}

func (s *Bookings) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return decodeOrders(s.gateway.Query(ctx, CollectionPreOrders, nil, "created_at", true))
}

// UpdateStatus moves a booking or pre-order along the status graph.
// Transitions outside the graph are rejected.
func (s *Bookings) UpdateStatus(ctx context.Context, collection, id, status string) error {
	if collection != CollectionBookings && collection != CollectionPreOrders {
		return fmt.Errorf("unknown collection %q", collection)
	}
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	var doc struct {
		Status domain.OrderStatus `json:"status"`
	}
	found, err := s.gateway.Get(ctx, collection, id, &doc)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s/%s not found", collection, id)
	}
	if !doc.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, doc.Status, next)
	}
	return s.gateway.Update(ctx, collection, id, map[string]interface{}{"status": next})
}

// UpdatePaymentStatus is how an operator promotes screenshot_uploaded
// to confirmed after checking the payment manually.
func (s *Bookings) UpdatePaymentStatus(ctx context.Context, collection, id, status string) error {
	if collection != CollectionBookings && collection != CollectionPreOrders {
		return fmt.Errorf("unknown collection %q", collection)
	}
	next, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return err
	}
	return s.gateway.Update(ctx, collection, id, map[string]interface{}{"payment_status": next})
}

func decodeBookings(docs []json.RawMessage, err error) ([]domain.Booking, error) {
	if err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0, len(docs))
	for _, doc := range docs {
		var b domain.Booking
		if err := json.Unmarshal(doc, &b); err != nil {
			log.Printf("[bookings] skipping malformed booking: %v", err)
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func decodeOrders(docs []json.RawMessage, err error) ([]domain.Order, error) {
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		var o domain.Order
		if err := json.Unmarshal(doc, &o); err != nil {
			log.Printf("[bookings] skipping malformed order: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

var _ BookingServiceInterface = (*Bookings)(nil)
