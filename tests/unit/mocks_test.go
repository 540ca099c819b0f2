package unit

import (
	"context"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	inventory  repo.IngredientRepository
	products   repo.ProductRepository
	promoCodes repo.PromoCodeRepository
	payments   repo.PaymentRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository           { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository   { return r.orderItems }
func (r *TxReposMock) Ingredients() repo.IngredientRepository { return r.inventory }
func (r *TxReposMock) Products() repo.ProductRepository       { return r.products }
func (r *TxReposMock) PromoCodes() repo.PromoCodeRepository   { return r.promoCodes }
func (r *TxReposMock) Payments() repo.PaymentRepository       { return r.payments }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SetPromoCode(ctx context.Context, orderID int64, code string) error {
	args := m.Called(ctx, orderID, code)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByDateRange(ctx context.Context, from time.Time, to time.Time) ([]model.Order, error) {
	args := m.Called(ctx, from, to)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ApplyDiscount(ctx context.Context, orderID int64, percentage int64) error {
	args := m.Called(ctx, orderID, percentage)
	return args.Error(0)
}

type IngredientRepoMock struct{ mock.Mock }

func (m *IngredientRepoMock) List(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Ingredient)
	return items, args.Error(1)
}

func (m *IngredientRepoMock) FindByID(ctx context.Context, ingredientID int64) (model.Ingredient, error) {
	args := m.Called(ctx, ingredientID)
	ing, _ := args.Get(0).(model.Ingredient)
	return ing, args.Error(1)
}

func (m *IngredientRepoMock) FindByName(ctx context.Context, name string) (model.Ingredient, error) {
	args := m.Called(ctx, name)
	ing, _ := args.Get(0).(model.Ingredient)
	return ing, args.Error(1)
}

func (m *IngredientRepoMock) Create(ctx context.Context, ing model.Ingredient) (int64, error) {
	args := m.Called(ctx, ing)
	return args.Get(0).(int64), args.Error(1)
}

func (m *IngredientRepoMock) Save(ctx context.Context, ing model.Ingredient) error {
	args := m.Called(ctx, ing)
	return args.Error(0)
}

func (m *IngredientRepoMock) Delete(ctx context.Context, ingredientID int64) error {
	args := m.Called(ctx, ingredientID)
	return args.Error(0)
}

func (m *IngredientRepoMock) DecreaseIfEnough(ctx context.Context, name string, qty int64) (bool, error) {
	args := m.Called(ctx, name, qty)
	return args.Bool(0), args.Error(1)
}

func (m *IngredientRepoMock) CreateAdjustment(ctx context.Context, adj model.IngredientAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Save(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type PromoCodeRepoMock struct{ mock.Mock }

func (m *PromoCodeRepoMock) FindByCode(ctx context.Context, code string) (model.PromoCode, error) {
	args := m.Called(ctx, code)
	pc, _ := args.Get(0).(model.PromoCode)
	return pc, args.Error(1)
}

func (m *PromoCodeRepoMock) List(ctx context.Context) ([]model.PromoCode, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.PromoCode)
	return items, args.Error(1)
}

func (m *PromoCodeRepoMock) Create(ctx context.Context, pc model.PromoCode) (int64, error) {
	args := m.Called(ctx, pc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PromoCodeRepoMock) Save(ctx context.Context, pc model.PromoCode) error {
	args := m.Called(ctx, pc)
	return args.Error(0)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepoMock) Save(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type FeedbackRepoMock struct{ mock.Mock }

func (m *FeedbackRepoMock) Create(ctx context.Context, f model.Feedback) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FeedbackRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Feedback, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Feedback)
	return items, args.Error(1)
}

type StaffRepoMock struct{ mock.Mock }

func (m *StaffRepoMock) FindByEmail(ctx context.Context, email string) (model.Staff, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(model.Staff)
	return s, args.Error(1)
}

func (m *StaffRepoMock) Create(ctx context.Context, s model.Staff) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}
