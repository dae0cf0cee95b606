package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"reeves-booking/internal/cart"
	"reeves-booking/internal/domain"
	"reeves-booking/internal/service"
)

// Handler is the boundary the UI shell talks to. Every route is a thin
// adapter over the services; error mapping lives in writeServiceError.
type Handler struct {
	Catalog   service.CatalogServiceInterface
	Identity  service.IdentityGateway
	Checkout  service.CheckoutInterface
	Bookings  service.BookingServiceInterface
	Analytics service.AnalyticsInterface
	CartStore cart.Store
	QR        service.QRGenerator
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	identity service.IdentityGateway,
	checkout service.CheckoutInterface,
	bookings service.BookingServiceInterface,
	analytics service.AnalyticsInterface,
	cartStore cart.Store,
	qr service.QRGenerator,
) *Handler {
	return &Handler{
		Catalog:   catalog,
		Identity:  identity,
		Checkout:  checkout,
		Bookings:  bookings,
		Analytics: analytics,
		CartStore: cartStore,
		QR:        qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")
	r.HandleFunc("/api/auth/signout", h.signOut).Methods("POST")
	r.HandleFunc("/api/auth/me", h.me).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.setCartQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkoutState).Methods("GET")
	r.HandleFunc("/api/checkout", h.abandonCheckout).Methods("DELETE")
	r.HandleFunc("/api/checkout/begin", h.beginCheckout).Methods("POST")
	r.HandleFunc("/api/checkout/details", h.checkoutDetails).Methods("POST")
	r.HandleFunc("/api/checkout/payment", h.checkoutPayment).Methods("POST")
	r.HandleFunc("/api/checkout/payment/qr", h.paymentQR).Methods("GET")
	r.HandleFunc("/api/checkout/confirm", h.confirmPayment).Methods("POST")

	r.HandleFunc("/api/bookings", h.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings", h.listOwnBookings).Methods("GET")
	r.HandleFunc("/api/orders", h.listOwnOrders).Methods("GET")
	r.HandleFunc("/api/feedback", h.createFeedback).Methods("POST")

	r.HandleFunc("/api/admin/menu", h.adminCreateMenuItem).Methods("POST")
	r.HandleFunc("/api/admin/menu/{id}", h.adminUpdateMenuItem).Methods("PUT")
	r.HandleFunc("/api/admin/menu/{id}/availability", h.adminSetAvailability).Methods("PUT")
	r.HandleFunc("/api/admin/bookings", h.adminListBookings).Methods("GET")
	r.HandleFunc("/api/admin/preorders", h.adminListOrders).Methods("GET")
	r.HandleFunc("/api/admin/{collection}/{id}/status", h.adminUpdateStatus).Methods("PUT")
	r.HandleFunc("/api/admin/{collection}/{id}/payment", h.adminUpdatePayment).Methods("PUT")
	r.HandleFunc("/api/admin/analytics/top-items", h.adminTopItems).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "reeves-booking",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps service failures onto HTTP statuses. Every
// failure produces a visible outcome; nothing is swallowed.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, service.ErrWeakCredentials):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoSession),
		errors.Is(err, service.ErrWrongStep),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrBadTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrSubmitFailed):
		http.Error(w, "order submission failed, please try again", http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// clientKey identifies the browser session owning the cart and the
// checkout attempt.
func clientKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.Header.Get("X-Session-Key")
	if key == "" {
		http.Error(w, "missing X-Session-Key header", http.StatusBadRequest)
		return "", false
	}
	return key, true
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	sess, err := h.Identity.CurrentSession(r.Context(), bearerToken(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if sess == nil {
		http.Error(w, "sign in required", http.StatusUnauthorized)
		return nil, false
	}
	return sess, true
}

func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return nil, false
	}
	privileged, err := h.Identity.IsPrivileged(r.Context(), sess)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if !privileged {
		http.Error(w, "admin access required", http.StatusForbidden)
		return nil, false
	}
	return sess, true
}

// --- auth ---

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, err := h.Identity.SignUp(r.Context(), payload.Email, payload.Password, payload.Name, payload.Phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, err := h.Identity.SignIn(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Identity.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	profile, err := h.Identity.Profile(r.Context(), sess.UID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// --- menu ---

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" {
		if _, err := domain.ParseCategory(category); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	items, err := h.Catalog.List(r.Context(), category)
	if err != nil {
		// Never blocks the page: degrade to an empty catalog.
		log.Printf("[http] catalog load failed: %v", err)
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// --- cart ---

type cartView struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice int               `json:"total_price"`
	Message    string            `json:"message,omitempty"`
}

func viewOf(c *cart.Cart, message string) cartView {
	return cartView{
		Lines:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Message:    message,
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	writeJSON(w, http.StatusOK, viewOf(c, ""))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	var payload struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.Get(r.Context(), payload.ItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !item.Available {
		writeServiceError(w, service.ErrItemUnavailable)
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	c.AddItem(r.Context(), *item)
	writeJSON(w, http.StatusOK, viewOf(c, item.Name+" added to cart"))
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	c.SetQuantity(r.Context(), mux.Vars(r)["itemId"], payload.Quantity)
	writeJSON(w, http.StatusOK, viewOf(c, ""))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	c.RemoveItem(r.Context(), mux.Vars(r)["itemId"])
	writeJSON(w, http.StatusOK, viewOf(c, ""))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	c.Clear(r.Context())
	writeJSON(w, http.StatusOK, viewOf(c, ""))
}

// --- checkout ---

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Checkout.Begin(key))
}

func (h *Handler) checkoutState(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	snap, found := h.Checkout.Current(key)
	if !found {
		http.Error(w, "no checkout session", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) checkoutDetails(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	if err := h.Checkout.ToDetails(r.Context(), key, bearerToken(r), c); err != nil {
		writeServiceError(w, err)
		return
	}
	snap, _ := h.Checkout.Current(key)
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) checkoutPayment(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	var contact service.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	orderID, err := h.Checkout.SubmitDetails(r.Context(), key, contact)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID})
}

func (h *Handler) paymentQR(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	snap, found := h.Checkout.Current(key)
	if !found || snap.Step != service.StepPayment {
		http.Error(w, "no payment pending", http.StatusConflict)
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	png, err := h.QR.PaymentQR("Order "+snap.OrderID, c.TotalPrice())
	if err != nil {
		http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	c := cart.Load(r.Context(), h.CartStore, key)
	order, err := h.Checkout.ConfirmPayment(r.Context(), key, c)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) abandonCheckout(w http.ResponseWriter, r *http.Request) {
	key, ok := clientKey(w, r)
	if !ok {
		return
	}
	h.Checkout.Abandon(key)
	w.WriteHeader(http.StatusNoContent)
}

// --- bookings & feedback ---

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	var booking domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Bookings.CreateBooking(r.Context(), sess, &booking); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) listOwnBookings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListUserBookings(r.Context(), sess.UID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) listOwnOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	orders, err := h.Bookings.ListUserOrders(r.Context(), sess.UID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	var fb domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Bookings.CreateFeedback(r.Context(), &fb); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

// --- admin ---

func (h *Handler) adminCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.Create(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) adminUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Catalog.Update(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) adminSetAvailability(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var payload struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.SetAvailability(r.Context(), mux.Vars(r)["id"], payload.Available); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminListBookings(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	bookings, err := h.Bookings.ListBookings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	orders, err := h.Bookings.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) adminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	if err := h.Bookings.UpdateStatus(r.Context(), vars["collection"], vars["id"], payload.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminUpdatePayment(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var payload struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	if err := h.Bookings.UpdatePaymentStatus(r.Context(), vars["collection"], vars["id"], payload.PaymentStatus); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminTopItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	top, err := h.Analytics.TopItems(r.Context(), 10)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
