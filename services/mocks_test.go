package services_test

import (
	"context"
	"sync"

	"github.com/Chekwachibuike/ecommerce/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// In-memory repositories backing the service tests. Updates apply only the
// keys the services actually write.

// --- Users ---

type mockUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["name"].(string); ok {
		u.Name = v
	}
	if v, ok := updates["email"].(string); ok {
		u.Email = v
	}
	if v, ok := updates["phone"].(string); ok {
		u.Phone = v
	}
	if v, ok := updates["role"].(string); ok {
		u.Role = v
	}
	if v, ok := updates["password"].(string); ok {
		u.Password = v
	}
	return 1, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

// --- Categories ---

type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[primitive.ObjectID]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[primitive.ObjectID]*models.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *c
	return &copied, nil
}

func (m *mockCategoryRepo) FindByNameOrSlug(_ context.Context, name, slug string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Name == name || c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Category
	for _, id := range ids {
		if c, ok := m.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) CountByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, id := range ids {
		if _, ok := m.categories[id]; ok {
			count++
		}
	}
	return count, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["name"].(string); ok {
		c.Name = v
	}
	if v, ok := updates["slug"].(string); ok {
		c.Slug = v
	}
	if v, ok := updates["image"].(string); ok {
		c.Image = v
	}
	if v, ok := updates["description"].(string); ok {
		c.Description = v
	}
	return 1, nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return 0, nil
	}
	delete(m.categories, id)
	return 1, nil
}

// --- Products ---

type mockProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
}

func (m *mockProductRepo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products)
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *p
	return &copied, nil
}

func (m *mockProductRepo) FindOne(_ context.Context, filter bson.M) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if slug, ok := filter["slug"].(string); ok && p.Slug == slug {
			copied := *p
			return &copied, nil
		}
		if sku, ok := filter["sku"].(int); ok && p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockProductRepo) Find(_ context.Context, _ bson.M, _ *options.FindOptions) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Count(_ context.Context, _ bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["title"].(string); ok {
		p.Title = v
	}
	if v, ok := updates["slug"].(string); ok {
		p.Slug = v
	}
	if v, ok := updates["sku"].(int); ok {
		p.SKU = v
	}
	if v, ok := updates["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := updates["quantity"].(int); ok {
		p.Quantity = v
	}
	if v, ok := updates["in_stock"].(bool); ok {
		p.InStock = v
	}
	if v, ok := updates["category"].([]primitive.ObjectID); ok {
		p.Category = v
	}
	return 1, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

// --- Carts ---

type mockCartRepo struct {
	mu    sync.Mutex
	carts map[primitive.ObjectID]*models.Cart
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (m *mockCartRepo) Create(_ context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CartItem == nil {
		c.CartItem = []primitive.ObjectID{}
	}
	m.carts[c.UserID] = c
	return nil
}

func (m *mockCartRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *c
	copied.CartItem = append([]primitive.ObjectID{}, c.CartItem...)
	return &copied, nil
}

func (m *mockCartRepo) UpdateByUserID(_ context.Context, userID primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["cart_item"].([]primitive.ObjectID); ok {
		c.CartItem = append([]primitive.ObjectID{}, v...)
	}
	if v, ok := updates["sub_total"].(float64); ok {
		c.SubTotal = v
	}
	return 1, nil
}

func (m *mockCartRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[userID]; !ok {
		return 0, nil
	}
	delete(m.carts, userID)
	return 1, nil
}

// --- Cart items ---

type mockCartItemRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*models.CartItem
}

func newMockCartItemRepo() *mockCartItemRepo {
	return &mockCartItemRepo{items: make(map[primitive.ObjectID]*models.CartItem)}
}

func (m *mockCartItemRepo) Create(_ context.Context, item *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockCartItemRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *item
	return &copied, nil
}

func (m *mockCartItemRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CartItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockCartItemRepo) FindAll(_ context.Context) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CartItem
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockCartItemRepo) FindByProductID(_ context.Context, productID primitive.ObjectID) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CartItem
	for _, item := range m.items {
		if item.Product == productID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockCartItemRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["quantity"].(int); ok {
		item.Quantity = v
	}
	if v, ok := updates["total_price"].(float64); ok {
		item.TotalPrice = v
	}
	return 1, nil
}

func (m *mockCartItemRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

// --- Billing ---

type mockBillingRepo struct {
	mu    sync.Mutex
	infos map[primitive.ObjectID]*models.BillingInformation
}

func newMockBillingRepo() *mockBillingRepo {
	return &mockBillingRepo{infos: make(map[primitive.ObjectID]*models.BillingInformation)}
}

func (m *mockBillingRepo) Create(_ context.Context, info *models.BillingInformation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if info.ID.IsZero() {
		info.ID = primitive.NewObjectID()
	}
	m.infos[info.UserID] = info
	return nil
}

func (m *mockBillingRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*models.BillingInformation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.infos[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *info
	return &copied, nil
}

func (m *mockBillingRepo) UpdateByUserID(_ context.Context, userID primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.infos[userID]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["address"].(string); ok {
		info.Address = v
	}
	if v, ok := updates["country"].(string); ok {
		info.Country = v
	}
	if v, ok := updates["zip_code"].(string); ok {
		info.ZipCode = v
	}
	if v, ok := updates["postal_code"].(string); ok {
		info.PostalCode = v
	}
	return 1, nil
}

func (m *mockBillingRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.infos[userID]; !ok {
		return 0, nil
	}
	delete(m.infos, userID)
	return 1, nil
}

func (m *mockBillingRepo) FindAll(_ context.Context, _, _ int) ([]models.BillingInformation, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.BillingInformation
	for _, info := range m.infos {
		out = append(out, *info)
	}
	return out, int64(len(out)), nil
}

// --- Orders ---

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*models.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["delivery_fee"].(float64); ok {
		o.DeliveryFee = v
	}
	if v, ok := updates["vat"].(float64); ok {
		o.VAT = v
	}
	if v, ok := updates["coupon"].(float64); ok {
		o.Coupon = v
	}
	if v, ok := updates["sub_total"].(float64); ok {
		o.SubTotal = v
	}
	if v, ok := updates["total"].(float64); ok {
		o.Total = v
	}
	if v, ok := updates["currency"].(string); ok {
		o.Currency = v
	}
	return 1, nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return 0, nil
	}
	delete(m.orders, id)
	return 1, nil
}

// --- Event publisher ---

type mockPublisher struct {
	mu     sync.Mutex
	events []*models.OrderCreatedEvent
}

func (m *mockPublisher) PublishOrderCreated(_ context.Context, event *models.OrderCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}
