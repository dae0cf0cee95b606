package tests

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reeves-booking/internal/domain"
	"reeves-booking/internal/mocks"
	"reeves-booking/internal/service"
)

func validBooking() domain.Booking {
	return domain.Booking{
		Name:   "Guest",
		Phone:  "9999999999",
		Date:   "2026-09-12",
		Time:   "19:30",
		Guests: 4,
	}
}

func TestBookings_CreateBookingComputesFee(t *testing.T) {
	ctx := context.Background()
	gateway := mocks.NewDocumentGateway(t)
	bookings := service.NewBookings(gateway)

	gateway.On("Create", ctx, service.CollectionBookings, mock.Anything, mock.Anything).
		Return(nil).Once()

	b := validBooking()
	err := bookings.CreateBooking(ctx, &domain.Session{UID: "u1", Email: "guest@example.com"}, &b)
	assert.NoError(t, err)
	assert.Equal(t, 40000, b.Fee)
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.NotEmpty(t, b.BookingID)
}

func TestBookings_CreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	sess := &domain.Session{UID: "u1"}

	tests := []struct {
		name   string
		mutate func(*domain.Booking)
	}{
		{"missing_name", func(b *domain.Booking) { b.Name = "" }},
		{"missing_phone", func(b *domain.Booking) { b.Phone = "" }},
		{"missing_date", func(b *domain.Booking) { b.Date = "" }},
		{"missing_time", func(b *domain.Booking) { b.Time = "" }},
		{"zero_guests", func(b *domain.Booking) { b.Guests = 0 }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gateway := mocks.NewDocumentGateway(t)
			bookings := service.NewBookings(gateway)

			b := validBooking()
			testCase.mutate(&b)
			err := bookings.CreateBooking(ctx, sess, &b)

			var verr *service.ValidationError
			assert.ErrorAs(t, err, &verr)
			gateway.AssertNotCalled(t, "Create")
		})
	}

	t.Run("anonymous_refused", func(t *testing.T) {
		gateway := mocks.NewDocumentGateway(t)
		bookings := service.NewBookings(gateway)

		b := validBooking()
		err := bookings.CreateBooking(ctx, nil, &b)
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	})
}

func TestBookings_ListUserBookingsSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	gateway := mocks.NewDocumentGateway(t)
	bookings := service.NewBookings(gateway)

	good, err := json.Marshal(domain.Booking{BookingID: "b1", UserID: "u1", Guests: 2})
	assert.NoError(t, err)
	docs := []json.RawMessage{good, json.RawMessage(`{broken`)}

	gateway.On("Query", ctx, service.CollectionBookings, map[string]string{"user_id": "u1"}, "created_at", true).
		Return(docs, nil).Once()

	got, err := bookings.ListUserBookings(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].BookingID)
}

func TestBookings_CreateFeedbackValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("rating_out_of_range", func(t *testing.T) {
		gateway := mocks.NewDocumentGateway(t)
		bookings := service.NewBookings(gateway)

		err := bookings.CreateFeedback(ctx, &domain.Feedback{Name: "Guest", Message: "great", Rating: 6})
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
	})

	t.Run("valid_feedback_stored", func(t *testing.T) {
		gateway := mocks.NewDocumentGateway(t)
		bookings := service.NewBookings(gateway)

		gateway.On("Create", ctx, service.CollectionFeedback, mock.Anything, mock.Anything).
			Return(nil).Once()

		err := bookings.CreateFeedback(ctx, &domain.Feedback{Name: "Guest", Message: "great", Rating: 5})
		assert.NoError(t, err)
	})
}

func TestBookings_UpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		current domain.OrderStatus
		next    string
		allowed bool
	}{
		{"pending_to_confirmed", domain.StatusPending, "confirmed", true},
		{"confirmed_to_preparing", domain.StatusConfirmed, "preparing", true},
		{"preparing_to_completed", domain.StatusPreparing, "completed", true},
		{"confirmed_skips_preparing", domain.StatusConfirmed, "completed", false},
		{"pending_to_cancelled", domain.StatusPending, "cancelled", true},
		{"completed_is_terminal", domain.StatusCompleted, "pending", false},
		{"cancelled_is_terminal", domain.StatusCancelled, "confirmed", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gateway := mocks.NewDocumentGateway(t)
			bookings := service.NewBookings(gateway)

			gateway.On("Get", ctx, service.CollectionBookings, "b1", mock.Anything).
				Run(fillFromMap(t, map[string]interface{}{"status": string(testCase.current)})).
				Return(true, nil).Once()
			if testCase.allowed {
				gateway.On("Update", ctx, service.CollectionBookings, "b1", mock.Anything).
					Return(nil).Once()
			}

			err := bookings.UpdateStatus(ctx, service.CollectionBookings, "b1", testCase.next)
			if testCase.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, service.ErrBadTransition)
			}
		})
	}

	t.Run("unknown_collection_refused", func(t *testing.T) {
		gateway := mocks.NewDocumentGateway(t)
		bookings := service.NewBookings(gateway)

		err := bookings.UpdateStatus(ctx, "menu_items", "1", "confirmed")
		assert.Error(t, err)
	})

	t.Run("unknown_status_refused", func(t *testing.T) {
		gateway := mocks.NewDocumentGateway(t)
		bookings := service.NewBookings(gateway)

		err := bookings.UpdateStatus(ctx, service.CollectionBookings, "b1", "lost")
		assert.Error(t, err)
	})
}

func TestBookings_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	gateway := mocks.NewDocumentGateway(t)
	bookings := service.NewBookings(gateway)

	gateway.On("Update", ctx, service.CollectionPreOrders, "RV1", map[string]interface{}{
		"payment_status": domain.PaymentConfirmed,
	}).Return(nil).Once()

	assert.NoError(t, bookings.UpdatePaymentStatus(ctx, service.CollectionPreOrders, "RV1", "confirmed"))

	err := bookings.UpdatePaymentStatus(ctx, service.CollectionPreOrders, "RV1", "maybe")
	assert.Error(t, err)
}
