package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abhi01326/eatoes/models"
)

// fakeCatalog resolves menu items from an in-memory map keyed by hex id.
type fakeCatalog struct {
	items    map[string]*models.MenuItem
	resolves int
	err      error
}

func (f *fakeCatalog) ResolveMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	f.resolves++
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id.Hex()], nil
}

func seedItem(name string, price float64) *models.MenuItem {
	available := true
	return &models.MenuItem{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Category:    models.CategoryMainCourse,
		Price:       &price,
		IsAvailable: &available,
	}
}

func newCatalog(items ...*models.MenuItem) *fakeCatalog {
	catalog := &fakeCatalog{items: map[string]*models.MenuItem{}}
	for _, item := range items {
		catalog.items[item.ID.Hex()] = item
	}
	return catalog
}

func TestPriceOrderTotals(t *testing.T) {
	wings := seedItem("Chicken Wings", 8)
	pizza := seedItem("Margherita Pizza", 12)
	catalog := newCatalog(wings, pizza)

	draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: wings.ID.Hex(), Quantity: 2},
		{MenuItem: pizza.ID.Hex(), Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, 28.0, draft.TotalAmount)
	assert.Equal(t, 8.0, draft.Items[0].Price)
	assert.Equal(t, 2, draft.Items[0].Quantity)
	assert.Equal(t, wings.ID, draft.Items[0].MenuItem)
	assert.Equal(t, 12.0, draft.Items[1].Price)
}

func TestPriceOrderIgnoresClientPrice(t *testing.T) {
	wings := seedItem("Chicken Wings", 8)
	catalog := newCatalog(wings)

	// Client claims the wings cost one cent
	draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: wings.ID.Hex(), Quantity: 3, Price: 0.01},
	})

	require.NoError(t, err)
	assert.Equal(t, 8.0, draft.Items[0].Price)
	assert.Equal(t, 24.0, draft.TotalAmount)
}

func TestPriceOrderDecimalSafeTotal(t *testing.T) {
	// 0.1 * 3 accumulates drift under float64 addition
	item := seedItem("Ice Cream", 0.1)
	catalog := newCatalog(item)

	draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: item.ID.Hex(), Quantity: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, 0.3, draft.TotalAmount)
}

func TestPriceOrderUnknownItem(t *testing.T) {
	wings := seedItem("Chicken Wings", 8)
	catalog := newCatalog(wings)

	tests := []struct {
		name string
		id   string
	}{
		{name: "well-formed id with no record", id: primitive.NewObjectID().Hex()},
		{name: "malformed id", id: "not-an-object-id"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
				{MenuItem: wings.ID.Hex(), Quantity: 1},
				{MenuItem: testCase.id, Quantity: 1},
			})

			assert.Nil(t, draft)
			assert.ErrorIs(t, err, ErrInvalidMenuItem)
		})
	}
}

func TestPriceOrderMalformedIDErrorMessage(t *testing.T) {
	catalog := newCatalog()

	_, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: "not-an-object-id", Quantity: 1},
	})

	require.ErrorIs(t, err, ErrInvalidMenuItem)
	assert.Contains(t, err.Error(), "not-an-object-id")
	// The message ends up inside a JSON error body; it must not carry
	// quote characters of its own.
	assert.NotContains(t, err.Error(), `"`)
}

func TestPriceOrderInvalidQuantity(t *testing.T) {
	wings := seedItem("Chicken Wings", 8)

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := newCatalog(wings)

			draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
				{MenuItem: wings.ID.Hex(), Quantity: testCase.quantity},
			})

			assert.Nil(t, draft)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
			// Quantities are checked before any catalog read
			assert.Equal(t, 0, catalog.resolves)
		})
	}
}

func TestPriceOrderUnavailableItemStillPriced(t *testing.T) {
	soldOut := seedItem("Paneer Tikka", 11)
	unavailable := false
	soldOut.IsAvailable = &unavailable
	catalog := newCatalog(soldOut)

	draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: soldOut.ID.Hex(), Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 11.0, draft.TotalAmount)
}

func TestPriceOrderStoreFailurePropagates(t *testing.T) {
	wings := seedItem("Chicken Wings", 8)
	catalog := newCatalog(wings)
	catalog.err = errors.New("connection reset")

	draft, err := PriceOrder(context.Background(), catalog, []models.OrderLineRequest{
		{MenuItem: wings.ID.Hex(), Quantity: 1},
	})

	assert.Nil(t, draft)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidMenuItem)
	assert.NotErrorIs(t, err, ErrInvalidQuantity)
}

func TestPriceOrderEmptyLines(t *testing.T) {
	catalog := newCatalog()

	draft, err := PriceOrder(context.Background(), catalog, nil)

	require.NoError(t, err)
	assert.Empty(t, draft.Items)
	assert.Equal(t, 0.0, draft.TotalAmount)
}
