package service

import (
	"context"
	"encoding/json"

	"reeves-booking/internal/cart"
	"reeves-booking/internal/domain"
	"reeves-booking/internal/storage"
)

// Collections the service reads and writes through the document
// gateway.
const (
	CollectionMenuItems   = "menu_items"
	CollectionBookings    = "bookings"
	CollectionPreOrders   = "preorders"
	CollectionUsers       = "users"
	CollectionCredentials = "credentials"
	CollectionFeedback    = "feedback"
	CollectionAdmins      = "admin_credentials"
)

// DocumentGateway is the abstract create/read/query/update surface over
// the backing document database. Aggregation happens client-side over
// the returned documents.
type DocumentGateway interface {
	Create(ctx context.Context, collection, id string, doc interface{}) error
	Get(ctx context.Context, collection, id string, out interface{}) (bool, error)
	Query(ctx context.Context, collection string, filter map[string]string, orderBy string, desc bool) ([]json.RawMessage, error)
	Update(ctx context.Context, collection, id string, partial map[string]interface{}) error
}

// IdentityGateway authenticates users and resolves admin privilege. A
// privilege record must already exist; nothing on the client path can
// create one.
type IdentityGateway interface {
	SignUp(ctx context.Context, email, password, name, phone string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*domain.Session, error)
	IsPrivileged(ctx context.Context, sess *domain.Session) (bool, error)
	Profile(ctx context.Context, uid string) (*domain.UserProfile, error)
}

type SessionStore interface {
	PutSession(ctx context.Context, token string, sess domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// OrderMarker is the fast duplicate-submission check consulted before
// the document store.
type OrderMarker interface {
	OrderMarkerKey(orderID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PopularityStore interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
	TopItems(ctx context.Context, limit int64) ([]storage.ItemScore, error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

type CheckoutInterface interface {
	Begin(sessionKey string) Snapshot
	Current(sessionKey string) (Snapshot, bool)
	ToDetails(ctx context.Context, sessionKey, token string, c *cart.Cart) error
	SubmitDetails(ctx context.Context, sessionKey string, contact Contact) (string, error)
	ConfirmPayment(ctx context.Context, sessionKey string, c *cart.Cart) (*domain.Order, error)
	Abandon(sessionKey string)
}

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, sess *domain.Session, b *domain.Booking) error
	ListUserBookings(ctx context.Context, uid string) ([]domain.Booking, error)
	ListUserOrders(ctx context.Context, uid string) ([]domain.Order, error)
	CreateFeedback(ctx context.Context, fb *domain.Feedback) error
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, collection, id, status string) error
	UpdatePaymentStatus(ctx context.Context, collection, id, status string) error
}

type AnalyticsInterface interface {
	TopItems(ctx context.Context, limit int64) ([]ItemPopularity, error)
}

type QRGenerator interface {
	PaymentQR(note string, amount int) ([]byte, error)
}

var (
	_ cart.Store      = (*storage.RedisStore)(nil)
	_ SessionStore    = (*storage.RedisStore)(nil)
	_ OrderMarker     = (*storage.RedisStore)(nil)
	_ PopularityStore = (*storage.RedisStore)(nil)
	_ DocumentGateway = (*storage.DocumentStore)(nil)
	_ OrderPublisher  = (*storage.KafkaPublisher)(nil)
)
