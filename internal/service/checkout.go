package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"reeves-booking/internal/cart"
	"reeves-booking/internal/domain"
	"reeves-booking/internal/storage"
)

type Step string

const (
	StepReview    Step = "review"
	StepDetails   Step = "details"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("sign in required")
	ErrNoSession        = errors.New("no checkout session")
	ErrWrongStep        = errors.New("operation not valid in current step")
	ErrSubmitFailed     = errors.New("order submission failed")
)

// ValidationError reports a missing or malformed checkout field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

type Contact struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	PickupTime      string `json:"pickup_time"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type checkoutSession struct {
	step      Step
	contact   Contact
	orderID   string
	userID    string
	updatedAt time.Time
}

// Snapshot is a read-only copy of a checkout session for the API
// surface.
type Snapshot struct {
	Step    Step    `json:"step"`
	Contact Contact `json:"contact"`
	OrderID string  `json:"order_id,omitempty"`
}

// Checkout drives the Review -> Details -> Payment -> Confirmed flow.
// Sessions are keyed by the client session key and expire after an idle
// TTL; an expired session never wrote an order, so discarding it has no
// side effects.
type Checkout struct {
	mu       sync.Mutex
	sessions map[string]*checkoutSession

	gateway   DocumentGateway
	identity  IdentityGateway
	marker    OrderMarker
	publisher OrderPublisher

	ttl        time.Duration
	newOrderID func() string
	now        func() time.Time
}

func NewCheckout(gateway DocumentGateway, identity IdentityGateway, marker OrderMarker, publisher OrderPublisher) *Checkout {
	return &Checkout{
		sessions:   make(map[string]*checkoutSession),
		gateway:    gateway,
		identity:   identity,
		marker:     marker,
		publisher:  publisher,
		ttl:        30 * time.Minute,
		newOrderID: NewOrderID,
		now:        time.Now,
	}
}

func snapshotOf(s *checkoutSession) Snapshot {
	return Snapshot{Step: s.step, Contact: s.contact, OrderID: s.orderID}
}

// Begin starts (or restarts) a checkout attempt in the Review step.
func (c *Checkout) Begin(sessionKey string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := &checkoutSession{step: StepReview, updatedAt: c.now()}
	c.sessions[sessionKey] = s
	return snapshotOf(s)
}

func (c *Checkout) Current(sessionKey string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[sessionKey]
	if !ok {
		return Snapshot{}, false
	}
	return snapshotOf(s), true
}

// ToDetails advances Review -> Details. The cart must be non-empty and
// the caller must be signed in; a guard failure leaves the session in
// Review so the caller can retry after fixing the precondition.
func (c *Checkout) ToDetails(ctx context.Context, sessionKey, token string, crt *cart.Cart) error {
	sess, err := c.identity.CurrentSession(ctx, token)
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[sessionKey]
	if !ok {
		return ErrNoSession
	}
	if s.step != StepReview && s.step != StepDetails {
		return ErrWrongStep
	}
	if crt.IsEmpty() {
		return ErrEmptyCart
	}
	if sess == nil {
		return ErrNotAuthenticated
	}
	s.userID = sess.UID
	s.step = StepDetails
	s.updatedAt = c.now()
	return nil
}

// SubmitDetails validates the contact fields and advances Details ->
// Payment, generating the order identifier exactly once. Re-entering
// Payment with corrected contact details keeps the identifier stable.
func (c *Checkout) SubmitDetails(ctx context.Context, sessionKey string, contact Contact) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[sessionKey]
	if !ok {
		return "", ErrNoSession
	}
	if s.step != StepDetails && s.step != StepPayment {
		return "", ErrWrongStep
	}
	if contact.Name == "" {
		return "", &ValidationError{Field: "name"}
	}
	if contact.Phone == "" {
		return "", &ValidationError{Field: "phone"}
	}
	if contact.PickupTime == "" {
		return "", &ValidationError{Field: "pickup_time"}
	}

	s.contact = contact
	if s.orderID == "" {
		s.orderID = c.newOrderID()
	}
	s.step = StepPayment
	s.updatedAt = c.now()
	return s.orderID, nil
}

// ConfirmPayment advances Payment -> Confirmed: it writes exactly one
// order document for the session's order identifier, publishes the
// order event and clears the cart. A retried call after an ambiguous
// failure finds the existing document instead of writing a duplicate.
// Any write failure leaves the session in Payment with the cart intact.
func (c *Checkout) ConfirmPayment(ctx context.Context, sessionKey string, crt *cart.Cart) (*domain.Order, error) {
	c.mu.Lock()
	s, ok := c.sessions[sessionKey]
	if !ok {
		c.mu.Unlock()
		return nil, ErrNoSession
	}
	if s.step != StepPayment {
		c.mu.Unlock()
		return nil, ErrWrongStep
	}
	orderID := s.orderID
	contact := s.contact
	userID := s.userID
	c.mu.Unlock()

	existing, err := c.findExisting(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	order := existing
	if order == nil {
		order = &domain.Order{
			OrderID:         orderID,
			UserID:          userID,
			CustomerName:    contact.Name,
			Phone:           contact.Phone,
			Email:           contact.Email,
			PickupTime:      contact.PickupTime,
			SpecialRequests: contact.SpecialRequests,
			Items:           orderItems(crt),
			TotalAmount:     crt.TotalPrice(),
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentScreenshotUploaded,
			CreatedAt:       c.now(),
		}
		err = c.gateway.Create(ctx, CollectionPreOrders, orderID, order)
		if errors.Is(err, storage.ErrDuplicateID) {
			// Lost the race against our own retry; adopt the stored copy.
			order, err = c.findExisting(ctx, orderID)
			if err == nil && order == nil {
				err = fmt.Errorf("order %s vanished after duplicate insert", orderID)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
		}
	}

	if err := c.marker.SetMarker(ctx, c.marker.OrderMarkerKey(orderID)); err != nil {
		log.Printf("[checkout] marker write failed for %s: %v", orderID, err)
	}
	if c.publisher != nil {
		event := domain.OrderEvent{
			Type:      domain.EventOrderPlaced,
			OrderID:   orderID,
			Items:     order.Items,
			Total:     order.TotalAmount,
			Timestamp: c.now(),
		}
		if err := c.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[checkout] publish failed for %s: %v", orderID, err)
		}
	}

	crt.Clear(ctx)

	c.mu.Lock()
	if s, ok := c.sessions[sessionKey]; ok {
		s.step = StepConfirmed
		s.updatedAt = c.now()
	}
	c.mu.Unlock()
	return order, nil
}

// findExisting reports any document already stored for the order
// identifier. The Redis marker is a fast hint only; the document store
// stays authoritative.
func (c *Checkout) findExisting(ctx context.Context, orderID string) (*domain.Order, error) {
	if exists, err := c.marker.Exists(ctx, c.marker.OrderMarkerKey(orderID)); err != nil {
		log.Printf("[checkout] marker check failed for %s: %v", orderID, err)
	} else if exists {
		log.Printf("[checkout] duplicate submit detected for %s", orderID)
	}
	var order domain.Order
	found, err := c.gateway.Get(ctx, CollectionPreOrders, orderID, &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &order, nil
}

func orderItems(crt *cart.Cart) []domain.OrderItem {
	lines := crt.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return items
}

// Abandon discards the session. Nothing was written before the
// Payment -> Confirmed transition, so there is nothing to undo.
func (c *Checkout) Abandon(sessionKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, sessionKey)
}

// Sweep drops sessions idle past the TTL. Confirmed sessions are
// removed too; the durable order document outlives them.
func (c *Checkout) Sweep() {
	cutoff := c.now().Add(-c.ttl)
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, s := range c.sessions {
		if s.updatedAt.Before(cutoff) {
			delete(c.sessions, key)
		}
	}
}

// StartSweeper runs Sweep periodically until the context is cancelled.
func (c *Checkout) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

var _ CheckoutInterface = (*Checkout)(nil)
