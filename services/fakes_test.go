package services

import (
	"context"
	"time"

	"storefront/models"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces, mirroring the SQL layer's
// contracts (sentinel errors, upsert-increment, ownership-scoped deletes).

type fakeCustomerStore struct {
	usersByEmail map[string]*models.User
	customers    map[int]*models.Customer
	nextUserID   int
	nextCustID   int
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{
		usersByEmail: map[string]*models.User{},
		customers:    map[int]*models.Customer{},
	}
}

func (f *fakeCustomerStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeCustomerStore) CreateUserWithCustomer(_ context.Context, user *models.User) (*models.Customer, error) {
	f.nextUserID++
	user.ID = f.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.usersByEmail[user.Email] = user

	f.nextCustID++
	customer := &models.Customer{
		ID:        f.nextCustID,
		UserID:    user.ID,
		Address:   "",
		CreatedAt: time.Now(),
	}
	f.customers[user.ID] = customer
	return customer, nil
}

func (f *fakeCustomerStore) GetByUserID(_ context.Context, userID int) (*models.Customer, error) {
	if c, ok := f.customers[userID]; ok {
		return c, nil
	}
	return nil, models.ErrProfileMissing
}

func (f *fakeCustomerStore) GetProfile(_ context.Context, userID int) (*models.CustomerProfile, error) {
	c, ok := f.customers[userID]
	if !ok {
		return nil, models.ErrProfileMissing
	}
	var email, role string
	for _, u := range f.usersByEmail {
		if u.ID == userID {
			email, role = u.Email, u.Role
		}
	}
	return &models.CustomerProfile{
		ID: c.ID, UserID: c.UserID, Email: email, Role: role, Address: c.Address,
	}, nil
}

func (f *fakeCustomerStore) UpdateAddress(_ context.Context, userID int, address string) error {
	c, ok := f.customers[userID]
	if !ok {
		return models.ErrProfileMissing
	}
	c.Address = address
	return nil
}

// addCustomer seeds a user and its customer row, returning the user id.
func (f *fakeCustomerStore) addCustomer(email string) int {
	u := &models.User{Email: email, Role: "customer"}
	c, _ := f.CreateUserWithCustomer(context.Background(), u)
	return c.UserID
}

type fakeProductReader struct {
	products map[int]*models.Product
}

func newFakeProductReader(products ...models.Product) *fakeProductReader {
	f := &fakeProductReader{products: map[int]*models.Product{}}
	for i := range products {
		p := products[i]
		f.products[p.ID] = &p
	}
	return f
}

func (f *fakeProductReader) GetAll(_ context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductReader) GetByID(_ context.Context, id int) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, models.ErrNotFound
}

type fakeCartStore struct {
	products   *fakeProductReader
	carts      map[int]*models.Cart
	items      map[int][]*models.CartItem
	nextCartID int
	nextItemID int
}

func newFakeCartStore(products *fakeProductReader) *fakeCartStore {
	return &fakeCartStore{
		products: products,
		carts:    map[int]*models.Cart{},
		items:    map[int][]*models.CartItem{},
	}
}

func (f *fakeCartStore) GetByCustomer(_ context.Context, customerID int) (*models.Cart, error) {
	if c, ok := f.carts[customerID]; ok {
		return c, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeCartStore) GetOrCreate(ctx context.Context, customerID int) (*models.Cart, error) {
	if c, ok := f.carts[customerID]; ok {
		return c, nil
	}
	f.nextCartID++
	cart := &models.Cart{ID: f.nextCartID, CustomerID: customerID, CreatedAt: time.Now()}
	f.carts[customerID] = cart
	return cart, nil
}

func (f *fakeCartStore) UpsertItemIncrement(_ context.Context, cartID, productID int) (*models.CartItem, error) {
	for _, item := range f.items[cartID] {
		if item.ProductID == productID {
			item.Quantity++
			item.UpdatedAt = time.Now()
			return item, nil
		}
	}
	f.nextItemID++
	item := &models.CartItem{
		ID:        f.nextItemID,
		CartID:    cartID,
		ProductID: productID,
		Quantity:  1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.items[cartID] = append(f.items[cartID], item)
	return item, nil
}

func (f *fakeCartStore) ListItems(_ context.Context, cartID int) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, item := range f.items[cartID] {
		copied := *item
		if p, ok := f.products.products[item.ProductID]; ok {
			copied.Product = p
		}
		out = append(out, copied)
	}
	return out, nil
}

func (f *fakeCartStore) DeleteItemOwned(_ context.Context, itemID, cartID int) error {
	items := f.items[cartID]
	for i, item := range items {
		if item.ID == itemID {
			f.items[cartID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeOrderStore struct {
	itemsFor func(cartID int) []models.CartItem
	orders   map[int]*models.Order
	nextID   int
}

func newFakeOrderStore(carts *fakeCartStore) *fakeOrderStore {
	return &fakeOrderStore{
		itemsFor: func(cartID int) []models.CartItem {
			items, _ := carts.ListItems(context.Background(), cartID)
			return items
		},
		orders: map[int]*models.Order{},
	}
}

func (f *fakeOrderStore) CreateFromCart(_ context.Context, customerID, cartID int) (*models.Order, error) {
	items := f.itemsFor(cartID)
	if len(items) == 0 {
		return nil, models.ErrEmptyCart
	}
	f.nextID++
	order := &models.Order{
		ID:          f.nextID,
		OrderNumber: uuid.NewString(),
		CustomerID:  customerID,
		CartID:      cartID,
		Status:      models.OrderStatusPending,
		TotalAmount: models.CartTotal(items),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id int) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeOrderStore) ListByCustomer(_ context.Context, customerID int) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) ListAll(_ context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if status == "" || status == "All" || string(o.Status) == status {
			out = append(out, *o)
		}
	}
	return out, len(out), nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id int, status models.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = status
	return nil
}
