package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reeves-booking/internal/cart"
	"reeves-booking/internal/domain"
	"reeves-booking/internal/mocks"
	"reeves-booking/internal/service"
)

type checkoutFixture struct {
	gateway   *mocks.DocumentGateway
	identity  *mocks.IdentityGateway
	marker    *mocks.OrderMarker
	publisher *mocks.OrderPublisher
	checkout  *service.Checkout
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	f := &checkoutFixture{
		gateway:   mocks.NewDocumentGateway(t),
		identity:  mocks.NewIdentityGateway(t),
		marker:    mocks.NewOrderMarker(t),
		publisher: mocks.NewOrderPublisher(t),
	}
	f.checkout = service.NewCheckout(f.gateway, f.identity, f.marker, f.publisher)
	return f
}

func loadedCart(ctx context.Context, store cart.Store) *cart.Cart {
	c := cart.New(store, "s1")
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("b", 100))
	return c
}

func TestCheckout_ToDetailsGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_cart_refused", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()

		f.checkout.Begin("s1")
		err := f.checkout.ToDetails(ctx, "s1", "tok", cart.New(newMemStore(), "s1"))
		assert.ErrorIs(t, err, service.ErrEmptyCart)

		snap, _ := f.checkout.Current("s1")
		assert.Equal(t, service.StepReview, snap.Step)
	})

	t.Run("unauthenticated_refused_then_retry_succeeds", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.identity.On("CurrentSession", ctx, "").Return(nil, nil).Once()
		f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()

		f.checkout.Begin("s1")
		crt := loadedCart(ctx, newMemStore())

		err := f.checkout.ToDetails(ctx, "s1", "", crt)
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
		snap, _ := f.checkout.Current("s1")
		assert.Equal(t, service.StepReview, snap.Step)

		assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", crt))
		snap, _ = f.checkout.Current("s1")
		assert.Equal(t, service.StepDetails, snap.Step)
	})

	t.Run("no_session_started", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()

		err := f.checkout.ToDetails(ctx, "s1", "tok", loadedCart(ctx, newMemStore()))
		assert.ErrorIs(t, err, service.ErrNoSession)
	})
}

func TestCheckout_SubmitDetailsValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		contact service.Contact
		field   string
	}{
		{name: "missing_name", contact: service.Contact{Phone: "9999999999", PickupTime: "2026-09-02T19:00"}, field: "name"},
		{name: "missing_phone", contact: service.Contact{Name: "Asha", PickupTime: "2026-09-02T19:00"}, field: "phone"},
		{name: "missing_pickup_time", contact: service.Contact{Name: "Asha", Phone: "9999999999"}, field: "pickup_time"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()
			f.checkout.Begin("s1")
			assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", loadedCart(ctx, newMemStore())))

			_, err := f.checkout.SubmitDetails(ctx, "s1", testCase.contact)
			var vErr *service.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, testCase.field, vErr.Field)

			snap, _ := f.checkout.Current("s1")
			assert.Equal(t, service.StepDetails, snap.Step)
		})
	}
}

func TestCheckout_OrderIDStableAcrossPaymentReentry(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()

	f.checkout.Begin("s1")
	assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", loadedCart(ctx, newMemStore())))

	contact := service.Contact{Name: "Asha", Phone: "9999999999", PickupTime: "2026-09-02T19:00"}
	first, err := f.checkout.SubmitDetails(ctx, "s1", contact)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	contact.SpecialRequests = "less spicy"
	second, err := f.checkout.SubmitDetails(ctx, "s1", contact)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckout_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	store := newMemStore()
	crt := loadedCart(ctx, store)

	f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()
	f.marker.On("OrderMarkerKey", mock.Anything).Return("order:x")
	f.marker.On("Exists", ctx, "order:x").Return(false, nil).Once()
	f.gateway.On("Get", ctx, service.CollectionPreOrders, mock.Anything, mock.Anything).
		Return(false, nil).Once()

	var written domain.Order
	f.gateway.On("Create", ctx, service.CollectionPreOrders, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = *args.Get(3).(*domain.Order)
		}).
		Return(nil).Once()
	f.marker.On("SetMarker", ctx, "order:x").Return(nil).Once()
	f.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	f.checkout.Begin("s1")
	assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", crt))
	orderID, err := f.checkout.SubmitDetails(ctx, "s1", service.Contact{
		Name: "Asha", Phone: "9999999999", PickupTime: "2026-09-02T19:00",
	})
	assert.NoError(t, err)

	order, err := f.checkout.ConfirmPayment(ctx, "s1", crt)
	assert.NoError(t, err)
	assert.Equal(t, orderID, order.OrderID)
	assert.Equal(t, orderID, written.OrderID)
	assert.Equal(t, 500, written.TotalAmount)
	assert.Equal(t, domain.StatusPending, written.Status)
	assert.Equal(t, domain.PaymentScreenshotUploaded, written.PaymentStatus)
	assert.Len(t, written.Items, 2)

	assert.True(t, crt.IsEmpty())
	snap, _ := f.checkout.Current("s1")
	assert.Equal(t, service.StepConfirmed, snap.Step)
}

func TestCheckout_FailedWriteStaysInPayment(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	crt := loadedCart(ctx, newMemStore())

	f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()
	f.marker.On("OrderMarkerKey", mock.Anything).Return("order:x")
	f.marker.On("Exists", ctx, "order:x").Return(false, nil).Once()
	f.gateway.On("Get", ctx, service.CollectionPreOrders, mock.Anything, mock.Anything).
		Return(false, nil).Once()
	f.gateway.On("Create", ctx, service.CollectionPreOrders, mock.Anything, mock.Anything).
		Return(errors.New("network down")).Once()

	f.checkout.Begin("s1")
	assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", crt))
	_, err := f.checkout.SubmitDetails(ctx, "s1", service.Contact{
		Name: "Asha", Phone: "9999999999", PickupTime: "2026-09-02T19:00",
	})
	assert.NoError(t, err)

	_, err = f.checkout.ConfirmPayment(ctx, "s1", crt)
	assert.ErrorIs(t, err, service.ErrSubmitFailed)

	// Session still in Payment, cart untouched.
	snap, _ := f.checkout.Current("s1")
	assert.Equal(t, service.StepPayment, snap.Step)
	assert.Equal(t, 500, crt.TotalPrice())
}

func TestCheckout_RetryAdoptsExistingOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	crt := loadedCart(ctx, newMemStore())

	f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()
	f.marker.On("OrderMarkerKey", mock.Anything).Return("order:x")
	f.marker.On("Exists", ctx, "order:x").Return(true, nil).Once()
	f.gateway.On("Get", ctx, service.CollectionPreOrders, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*domain.Order)
			*out = domain.Order{
				OrderID:     "RVEXISTING",
				TotalAmount: 500,
				Status:      domain.StatusPending,
			}
		}).
		Return(true, nil).Once()
	f.marker.On("SetMarker", ctx, "order:x").Return(nil).Once()
	f.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	f.checkout.Begin("s1")
	assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", crt))
	_, err := f.checkout.SubmitDetails(ctx, "s1", service.Contact{
		Name: "Asha", Phone: "9999999999", PickupTime: "2026-09-02T19:00",
	})
	assert.NoError(t, err)

	// The document already exists (ambiguous earlier failure); no
	// second Create must happen.
	order, err := f.checkout.ConfirmPayment(ctx, "s1", crt)
	assert.NoError(t, err)
	assert.Equal(t, "RVEXISTING", order.OrderID)
	f.gateway.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_AbandonmentWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	crt := loadedCart(ctx, newMemStore())

	f.identity.On("CurrentSession", ctx, "tok").Return(&domain.Session{UID: "u1"}, nil).Once()

	f.checkout.Begin("s1")
	assert.NoError(t, f.checkout.ToDetails(ctx, "s1", "tok", crt))
	_, err := f.checkout.SubmitDetails(ctx, "s1", service.Contact{
		Name: "Asha", Phone: "9999999999", PickupTime: "2026-09-02T19:00",
	})
	assert.NoError(t, err)

	f.checkout.Abandon("s1")

	_, found := f.checkout.Current("s1")
	assert.False(t, found)
	assert.Equal(t, 500, crt.TotalPrice())
	f.gateway.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_SweepKeepsFreshSessions(t *testing.T) {
	f := newCheckoutFixture(t)
	f.checkout.Begin("s1")
	f.checkout.Sweep()
	_, found := f.checkout.Current("s1")
	assert.True(t, found)
}
