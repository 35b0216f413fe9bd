package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lushlocks-backend/models"
)

func testAddress() map[string]interface{} {
	return map[string]interface{}{
		"street":     "12 Adeola Odeku St",
		"city":       "Lagos",
		"state":      "Lagos",
		"postalCode": "101241",
		"country":    "Nigeria",
	}
}

func TestCheckout(t *testing.T) {
	s := newTestStores()
	s.cart.Add(models.CartItem{ID: "p1", Name: "Lace Front Wig", Price: 85000, Quantity: 1})
	s.cart.Add(models.CartItem{ID: "p2", Name: "Body Wave Bundle", Price: 45000, Quantity: 2})
	router := setupRouter(s)

	body := map[string]interface{}{
		"shippingAddress": testAddress(),
		"paymentMethod":   "paystack",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/checkout", body, customerToken(t)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(t, w.Body)

	// 85000 + 2*45000 cart total plus the flat shipping fee.
	if total := int(resp["totalAmount"].(float64)); total != 180000 {
		t.Errorf("expected totalAmount 180000, got %d", total)
	}
	if resp["status"] != "pending" {
		t.Errorf("expected new order pending, got %v", resp["status"])
	}
	if resp["customerId"] != "1" {
		t.Errorf("expected customerId from token, got %v", resp["customerId"])
	}
	if items, _ := resp["items"].([]interface{}); len(items) != 2 {
		t.Errorf("expected 2 order items, got %v", resp["items"])
	}

	if s.cart.ItemCount() != 0 {
		t.Error("expected cart cleared after checkout")
	}
	if len(s.crud.Orders()) != 1 {
		t.Errorf("expected 1 stored order, got %d", len(s.crud.Orders()))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newTestStores()
	router := setupRouter(s)

	body := map[string]interface{}{
		"shippingAddress": testAddress(),
		"paymentMethod":   "paystack",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/checkout", body, customerToken(t)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", w.Code)
	}
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	s := newTestStores()
	s.cart.Add(models.CartItem{ID: "p1", Name: "Wig", Price: 1000, Quantity: 1})
	router := setupRouter(s)

	body := map[string]interface{}{
		"shippingAddress": testAddress(),
		"paymentMethod":   "cash-on-delivery",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/checkout", body, customerToken(t)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown payment method, got %d", w.Code)
	}
	if s.cart.ItemCount() != 1 {
		t.Error("cart must be untouched when checkout is rejected")
	}
}

func TestCreateOrderAdmin(t *testing.T) {
	s := newTestStores()
	router := setupRouter(s)

	// The store keeps whatever total the admin supplies.
	body := map[string]interface{}{
		"customerId": "customer-1",
		"items": []map[string]interface{}{
			{"productId": "p1", "quantity": 2, "price": 45000, "name": "Body Wave Bundle"},
		},
		"totalAmount":   850000,
		"paymentMethod": "bank-transfer",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/orders", body, adminToken(t)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(t, w.Body)
	if total := int(resp["totalAmount"].(float64)); total != 850000 {
		t.Errorf("expected caller total 850000 kept, got %d", total)
	}
	id, _ := resp["id"].(string)
	if !strings.HasPrefix(id, "order-") {
		t.Errorf("expected generated order id, got %q", id)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestStores()
	router := setupRouter(s)
	token := adminToken(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing customer", map[string]interface{}{
			"items": []map[string]interface{}{{"productId": "p1", "quantity": 1, "price": 100}},
		}},
		{"no items", map[string]interface{}{
			"customerId": "customer-1",
			"items":      []map[string]interface{}{},
		}},
		{"zero quantity line", map[string]interface{}{
			"customerId": "customer-1",
			"items":      []map[string]interface{}{{"productId": "p1", "quantity": 0, "price": 100}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authRequest("POST", "/api/admin/orders", tt.body, token))
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetOrders(t *testing.T) {
	s := newTestStores()
	seedTestOrder(t, s, "customer-1")
	seedTestOrder(t, s, "customer-1")
	seedTestOrder(t, s, "customer-2")
	router := setupRouter(s)
	token := customerToken(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/orders", nil, token))
	resp := parseResponse(t, w.Body)
	if total, _ := resp["total"].(float64); int(total) != 3 {
		t.Errorf("expected 3 orders, got %v", resp["total"])
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/orders?customer_id=customer-1", nil, token))
	resp = parseResponse(t, w.Body)
	if total, _ := resp["total"].(float64); int(total) != 2 {
		t.Errorf("expected 2 orders for customer-1, got %v", resp["total"])
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStores()
	order := seedTestOrder(t, s, "customer-1")
	router := setupRouter(s)
	token := adminToken(t)

	// pending -> processing -> shipped is a valid path.
	for _, status := range []string{"processing", "shipped"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authRequest("PUT", "/api/admin/orders/"+order.ID+"/status", map[string]string{"status": status}, token))
		if w.Code != http.StatusOK {
			t.Fatalf("transition to %s: expected 200, got %d: %s", status, w.Code, w.Body.String())
		}
		resp := parseResponse(t, w.Body)
		if resp["status"] != status {
			t.Errorf("expected status %s, got %v", status, resp["status"])
		}
	}
}

func TestUpdateOrderStatusInvalidTransition(t *testing.T) {
	s := newTestStores()
	order := seedTestOrder(t, s, "customer-1")
	router := setupRouter(s)
	token := adminToken(t)

	// A pending order cannot jump straight to delivered.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "delivered"}, token))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	stored, _ := s.crud.GetOrder(order.ID)
	if stored.Status != models.OrderStatusPending {
		t.Errorf("expected order left pending, got %s", stored.Status)
	}
}

func TestUpdateOrderStatusUnknown(t *testing.T) {
	s := newTestStores()
	order := seedTestOrder(t, s, "customer-1")
	router := setupRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "teleported"}, adminToken(t)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestUpdateOrderTracking(t *testing.T) {
	s := newTestStores()
	order := seedTestOrder(t, s, "customer-1")
	router := setupRouter(s)

	body := map[string]interface{}{"trackingNumber": "NG-TRACK-001"}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/orders/"+order.ID, body, adminToken(t)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(t, w.Body)
	if resp["trackingNumber"] != "NG-TRACK-001" {
		t.Errorf("expected tracking number set, got %v", resp["trackingNumber"])
	}
	if resp["status"] != "pending" {
		t.Errorf("expected status untouched, got %v", resp["status"])
	}
}

func TestDeleteOrder(t *testing.T) {
	s := newTestStores()
	order := seedTestOrder(t, s, "customer-1")
	router := setupRouter(s)
	token := adminToken(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authRequest("DELETE", "/api/admin/orders/"+order.ID, nil, token))
		if w.Code != http.StatusOK {
			t.Fatalf("delete %d: expected 200, got %d", i+1, w.Code)
		}
	}

	if _, ok := s.crud.GetOrder(order.ID); ok {
		t.Error("expected order removed")
	}
}

func seedTestOrder(t *testing.T, s testStores, customerID string) models.Order {
	t.Helper()
	order, err := s.crud.AddOrder(models.Order{
		CustomerID: customerID,
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 1, Price: 45000, Name: "Body Wave Bundle"},
		},
		TotalAmount:   50000,
		PaymentMethod: models.PaymentMethodPaystack,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}
