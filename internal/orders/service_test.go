package orders

import (
	"testing"

	evbus "github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/store"
	"github.com/opsline/stockpile/pkg/common"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

type fixture struct {
	products  *store.MemoryProductStore
	suppliers *store.MemorySupplierStore
	orders    *store.MemoryOrderStore
	svc       *Service
	bus       evbus.Bus
}

// newFixture seeds sup-1 "Acme Supplies", prod-1 "Vitamin C 500mg" (12.50)
// and prod-2 "Herbal Tea Pack" (8.75).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		products:  store.NewMemoryProductStore(common.NewSequenceGenerator("prod")),
		suppliers: store.NewMemorySupplierStore(common.NewSequenceGenerator("sup")),
		orders:    store.NewMemoryOrderStore(),
		bus:       evbus.New(),
	}
	f.svc = NewService(f.products, f.suppliers, f.orders, common.NewSequenceGenerator("ord"), f.bus)

	_, err := f.suppliers.Create(domain.SupplierInput{Name: "Acme Supplies"})
	require.NoError(t, err)
	_, err = f.products.Create(domain.ProductInput{Name: "Vitamin C 500mg", Price: float64Ptr(12.50), Stock: intPtr(120)})
	require.NoError(t, err)
	_, err = f.products.Create(domain.ProductInput{Name: "Herbal Tea Pack", Price: float64Ptr(8.75), Stock: intPtr(60)})
	require.NoError(t, err)
	return f
}

func TestCreateOrderSnapshotsReferencedData(t *testing.T) {
	f := newFixture(t)

	order, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items: []domain.OrderItemInput{
			{ProductID: "prod-1", Quantity: 20},
			{ProductID: "prod-2", Quantity: 10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, "sup-1", order.SupplierID)
	assert.Equal(t, "Acme Supplies", order.SupplierName)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "prod-1", order.Items[0].ProductID)
	assert.Equal(t, "Vitamin C 500mg", order.Items[0].ProductName)
	assert.Equal(t, 20, order.Items[0].Quantity)
	assert.Equal(t, 12.50, *order.Items[0].UnitPrice)
	assert.Equal(t, "prod-2", order.Items[1].ProductID)
	assert.Equal(t, "Herbal Tea Pack", order.Items[1].ProductName)
	assert.Equal(t, 10, order.Items[1].Quantity)
	assert.Equal(t, 8.75, *order.Items[1].UnitPrice)
}

func TestCreateOrderUnpricedProductHasNoUnitPrice(t *testing.T) {
	f := newFixture(t)
	unpriced, err := f.products.Create(domain.ProductInput{Name: "Sample Sachet"})
	require.NoError(t, err)

	order, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: unpriced.ID, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Nil(t, order.Items[0].UnitPrice)
	assert.Equal(t, "Sample Sachet", order.Items[0].ProductName)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(domain.OrderInput{SupplierID: "sup-1"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.svc.List())
}

func TestCreateOrderNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.svc.List())
}

func TestCreateOrderUnknownSupplier(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-404",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.Error(t, err)

	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "supplier", nfe.Kind)
	assert.Equal(t, "sup-404", nfe.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.svc.List())
}

func TestCreateOrderUnknownProductIdentifiesItAndPersistsNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items: []domain.OrderItemInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-404", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		},
	})
	require.Error(t, err)

	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "product", nfe.Kind)
	assert.Equal(t, "prod-404", nfe.ID)
	assert.Empty(t, f.svc.List(), "no partial order may be visible")
}

func TestOrderSnapshotFrozenAgainstProductMutation(t *testing.T) {
	f := newFixture(t)

	order, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 20}},
	})
	require.NoError(t, err)

	_, err = f.products.Update("prod-1", domain.ProductPatch{Price: float64Ptr(99.99)})
	require.NoError(t, err)
	require.True(t, f.products.Delete("prod-2"))

	list := f.svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)
	assert.Equal(t, 12.50, *list[0].Items[0].UnitPrice)
	assert.Equal(t, "Vitamin C 500mg", list[0].Items[0].ProductName)
}

func TestOrderSnapshotFrozenAgainstSupplierMutation(t *testing.T) {
	f := newFixture(t)
	newName := "Acme Global"

	order, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.suppliers.Update("sup-1", domain.SupplierPatch{Name: &newName})
	require.NoError(t, err)

	got, err := f.svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Supplies", got.SupplierName)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateStatus("ord-404", domain.OrderStatusReceived)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.svc.List())
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateStatus("ord-1", domain.OrderStatus("Shipped"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateStatusTouchesOnlyStatus(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items: []domain.OrderItemInput{
			{ProductID: "prod-1", Quantity: 20},
			{ProductID: "prod-2", Quantity: 10},
		},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(created.ID, domain.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReceived, updated.Status)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.SupplierID, updated.SupplierID)
	assert.Equal(t, created.SupplierName, updated.SupplierName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.Items, updated.Items)
}

func TestUpdateStatusHasNoTransitionTable(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	// Any state is reachable from any other, including leaving Received.
	for _, status := range []domain.OrderStatus{
		domain.OrderStatusReceived,
		domain.OrderStatusPending,
		domain.OrderStatusCancelled,
		domain.OrderStatusProcessing,
	} {
		got, err := f.svc.UpdateStatus(created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestListReturnsInsertionOrderDeepCopies(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-2", Quantity: 2}},
	})
	require.NoError(t, err)

	list := f.svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	list[0].Status = domain.OrderStatusCancelled
	list[0].Items[0].Quantity = 999

	again, err := f.svc.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, again.Status)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	f := newFixture(t)

	var events []domain.Order
	require.NoError(t, f.bus.Subscribe(TopicOrderCreated, func(o domain.Order) {
		events = append(events, o)
	}))

	created, err := f.svc.Create(domain.OrderInput{
		SupplierID: "sup-1",
		Items:      []domain.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}
