package store

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"lushlocks-backend/models"
	"lushlocks-backend/storage"

	"github.com/google/uuid"
)

// crudSnapshot is the persisted shape of the admin dataset. All three
// collections share one blob, matching the layout the storefront has
// always written.
type crudSnapshot struct {
	Products  []models.Product  `json:"products"`
	Orders    []models.Order    `json:"orders"`
	Customers []models.Customer `json:"customers"`
}

// CRUD owns the admin-managed collections: products, orders and customers.
// Customer order aggregates (totalOrders, totalSpent, lastOrderDate) are
// recomputed from the order collection on every order mutation.
type CRUD struct {
	mu        sync.Mutex
	products  []models.Product
	orders    []models.Order
	customers []models.Customer
	backend   storage.Backend
	key       string

	now func() time.Time
}

func NewCRUD(backend storage.Backend) *CRUD {
	s := &CRUD{backend: backend, key: storage.CRUDKey, now: time.Now}

	data, err := backend.Load(s.key)
	if err != nil {
		log.Printf("WARNING: could not load crud snapshot, starting empty: %v", err)
		return s
	}
	if data == nil {
		return s
	}

	var snap crudSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("WARNING: malformed crud snapshot, starting empty: %v", err)
		return s
	}
	s.products = snap.Products
	s.orders = snap.Orders
	s.customers = snap.Customers
	return s
}

func (s *CRUD) persist() {
	data, err := json.Marshal(crudSnapshot{
		Products:  s.products,
		Orders:    s.orders,
		Customers: s.customers,
	})
	if err != nil {
		log.Printf("ERROR: failed to serialize crud store: %v", err)
		return
	}
	if err := s.backend.Save(s.key, data); err != nil {
		log.Printf("ERROR: failed to persist crud store: %v", err)
	}
}

// newID keeps the historical "<prefix>-<millis>-<suffix>" id format but
// draws the suffix from a UUID instead of math/rand.
func (s *CRUD) newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, s.now().UnixMilli(), suffix)
}

// --- Products ---

// AddProduct stores a new catalog entry with a generated id and matching
// creation/update timestamps.
func (s *CRUD) AddProduct(input models.Product) (models.Product, error) {
	if input.Name == "" {
		return models.Product{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if input.Price < 0 {
		return models.Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if input.Category == "" {
		return models.Product{}, &ValidationError{Field: "category", Reason: "required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	input.ID = s.newID("product")
	input.CreatedAt = now
	input.UpdatedAt = now

	s.products = append(s.products, input)
	s.persist()
	return input, nil
}

// UpdateProduct merges the non-nil fields of updates into the product and
// refreshes updatedAt.
func (s *CRUD) UpdateProduct(id string, updates models.ProductUpdate) (models.Product, error) {
	if updates.Name != nil && *updates.Name == "" {
		return models.Product{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if updates.Price != nil && *updates.Price < 0 {
		return models.Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if updates.Name != nil {
			p.Name = *updates.Name
		}
		if updates.Price != nil {
			p.Price = *updates.Price
		}
		if updates.ImageKeyword != nil {
			p.ImageKeyword = *updates.ImageKeyword
		}
		if updates.Category != nil {
			p.Category = *updates.Category
		}
		if updates.HairType != nil {
			p.HairType = *updates.HairType
		}
		if updates.Length != nil {
			p.Length = *updates.Length
		}
		if updates.Texture != nil {
			p.Texture = *updates.Texture
		}
		if updates.Rating != nil {
			p.Rating = *updates.Rating
		}
		if updates.Reviews != nil {
			p.Reviews = *updates.Reviews
		}
		if updates.Colors != nil {
			p.Colors = *updates.Colors
		}
		if updates.InStock != nil {
			p.InStock = *updates.InStock
		}
		if updates.OnSale != nil {
			p.OnSale = *updates.OnSale
		}
		if updates.Description != nil {
			p.Description = *updates.Description
		}
		if updates.Specifications != nil {
			p.Specifications = *updates.Specifications
		}
		if updates.Images != nil {
			p.Images = *updates.Images
		}
		p.UpdatedAt = s.now()
		s.persist()
		return *p, nil
	}

	return models.Product{}, &NotFoundError{Entity: "product", ID: id}
}

// DeleteProduct removes the product. Deleting an absent id is a no-op.
func (s *CRUD) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *CRUD) GetProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CRUD) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// --- Orders ---

// AddOrder stores a new order. The total is taken from the caller as-is;
// the store never recomputes it from the items. Status defaults to
// pending, payment status to pending, and the order date is stamped here.
func (s *CRUD) AddOrder(input models.Order) (models.Order, error) {
	if input.CustomerID == "" {
		return models.Order{}, &ValidationError{Field: "customerId", Reason: "required"}
	}
	if len(input.Items) == 0 {
		return models.Order{}, &ValidationError{Field: "items", Reason: "at least one item required"}
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return models.Order{}, &ValidationError{Field: "items", Reason: "quantity must be at least 1"}
		}
	}
	if input.TotalAmount < 0 {
		return models.Order{}, &ValidationError{Field: "totalAmount", Reason: "must not be negative"}
	}
	if input.Status == "" {
		input.Status = models.OrderStatusPending
	} else if !models.IsValidStatus(input.Status) {
		return models.Order{}, &ValidationError{Field: "status", Reason: "unknown status " + string(input.Status)}
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = models.PaymentStatusPending
	} else if !models.IsValidPaymentStatus(input.PaymentStatus) {
		return models.Order{}, &ValidationError{Field: "paymentStatus", Reason: "unknown payment status " + string(input.PaymentStatus)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	input.ID = s.newID("order")
	input.OrderDate = s.now()

	s.orders = append(s.orders, input)
	s.syncCustomerAggregates(input.CustomerID)
	s.persist()
	return input, nil
}

// UpdateOrder merges the non-nil fields of updates into the order. Status
// changes must follow the fulfillment state machine.
func (s *CRUD) UpdateOrder(id string, updates models.OrderUpdate) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		o := &s.orders[i]

		if updates.Status != nil && *updates.Status != o.Status {
			if !models.IsValidTransition(o.Status, *updates.Status) {
				return models.Order{}, &InvalidTransitionError{From: o.Status, To: *updates.Status}
			}
		}
		if updates.PaymentStatus != nil && !models.IsValidPaymentStatus(*updates.PaymentStatus) {
			return models.Order{}, &ValidationError{Field: "paymentStatus", Reason: "unknown payment status " + string(*updates.PaymentStatus)}
		}
		if updates.TotalAmount != nil && *updates.TotalAmount < 0 {
			return models.Order{}, &ValidationError{Field: "totalAmount", Reason: "must not be negative"}
		}

		if updates.Status != nil {
			o.Status = *updates.Status
		}
		if updates.PaymentStatus != nil {
			o.PaymentStatus = *updates.PaymentStatus
		}
		if updates.PaymentMethod != nil {
			o.PaymentMethod = *updates.PaymentMethod
		}
		if updates.ShippingAddress != nil {
			o.ShippingAddress = *updates.ShippingAddress
		}
		if updates.TotalAmount != nil {
			o.TotalAmount = *updates.TotalAmount
		}
		if updates.Items != nil {
			o.Items = *updates.Items
		}
		if updates.EstimatedDelivery != nil {
			o.EstimatedDelivery = updates.EstimatedDelivery
		}
		if updates.TrackingNumber != nil {
			o.TrackingNumber = *updates.TrackingNumber
		}
		if updates.Notes != nil {
			o.Notes = *updates.Notes
		}

		s.syncCustomerAggregates(o.CustomerID)
		s.persist()
		return *o, nil
	}

	return models.Order{}, &NotFoundError{Entity: "order", ID: id}
}

// DeleteOrder removes the order and refreshes the owning customer's
// aggregates. Deleting an absent id is a no-op.
func (s *CRUD) DeleteOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			customerID := s.orders[i].CustomerID
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.syncCustomerAggregates(customerID)
			s.persist()
			return
		}
	}
}

func (s *CRUD) GetOrder(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *CRUD) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersByCustomer returns all orders placed by the given customer.
func (s *CRUD) OrdersByCustomer(customerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// syncCustomerAggregates recomputes totalOrders, totalSpent and
// lastOrderDate for the customer from the order collection. Orders may
// reference a customer id with no matching record; that is not an error,
// there is just nothing to refresh. Caller must hold the lock.
func (s *CRUD) syncCustomerAggregates(customerID string) {
	var idx = -1
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	count := 0
	spent := 0
	var last *time.Time
	for _, o := range s.orders {
		if o.CustomerID != customerID {
			continue
		}
		count++
		spent += o.TotalAmount
		if last == nil || o.OrderDate.After(*last) {
			d := o.OrderDate
			last = &d
		}
	}

	s.customers[idx].TotalOrders = count
	s.customers[idx].TotalSpent = spent
	s.customers[idx].LastOrderDate = last
}

// --- Customers ---

// AddCustomer stores a new customer record. Aggregates start at zero and
// the join date is stamped here.
func (s *CRUD) AddCustomer(input models.Customer) (models.Customer, error) {
	if input.Name == "" {
		return models.Customer{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return models.Customer{}, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	input.ID = s.newID("customer")
	input.JoinDate = s.now()
	input.TotalOrders = 0
	input.TotalSpent = 0
	input.LastOrderDate = nil

	s.customers = append(s.customers, input)
	s.persist()
	return input, nil
}

// UpdateCustomer merges the non-nil fields of updates into the customer.
func (s *CRUD) UpdateCustomer(id string, updates models.CustomerUpdate) (models.Customer, error) {
	if updates.Name != nil && *updates.Name == "" {
		return models.Customer{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if updates.Email != nil && !strings.Contains(*updates.Email, "@") {
		return models.Customer{}, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		cu := &s.customers[i]
		if updates.Name != nil {
			cu.Name = *updates.Name
		}
		if updates.Email != nil {
			cu.Email = *updates.Email
		}
		if updates.Phone != nil {
			cu.Phone = *updates.Phone
		}
		if updates.Address != nil {
			cu.Address = *updates.Address
		}
		if updates.IsActive != nil {
			cu.IsActive = *updates.IsActive
		}
		if updates.Preferences != nil {
			cu.Preferences = *updates.Preferences
		}
		s.persist()
		return *cu, nil
	}

	return models.Customer{}, &NotFoundError{Entity: "customer", ID: id}
}

// DeleteCustomer removes the customer record. Orders referencing the id
// are left in place; there is no foreign-key enforcement between the
// collections. Deleting an absent id is a no-op.
func (s *CRUD) DeleteCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *CRUD) GetCustomer(id string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// GetCustomerByEmail returns the first customer with the given email.
func (s *CRUD) GetCustomerByEmail(email string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.Email == email {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *CRUD) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
