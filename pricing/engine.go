package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abhi01326/eatoes/models"
)

var (
	// ErrInvalidMenuItem rejects an order whose line references a menu
	// item that does not exist in the catalog.
	ErrInvalidMenuItem = errors.New("invalid menu item")

	// ErrInvalidQuantity rejects an order containing a non-positive
	// quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// CatalogResolver looks up a single menu item by id. A nil item with a
// nil error means the id does not resolve; a non-nil error is a store
// failure.
type CatalogResolver interface {
	ResolveMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
}

// Draft is a fully priced order body, ready for numbering and
// persistence.
type Draft struct {
	Items       []models.OrderLine
	TotalAmount float64
}

// PriceOrder resolves every requested line against the catalog and
// returns the priced lines with their total. The whole request is
// rejected on the first bad line; no partial drafts are produced.
//
// Quantities are checked before any catalog read. Client-supplied prices
// are ignored: each line is stamped with the catalog price at resolution
// time. Availability is not checked here; ordering a currently
// unavailable item is allowed, matching the dashboard's behavior.
//
// Totals are computed with decimal arithmetic so currency values do not
// accumulate float drift across lines.
func PriceOrder(ctx context.Context, catalog CatalogResolver, lines []models.OrderLineRequest) (*Draft, error) {
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be a positive integer, got %d", ErrInvalidQuantity, line.Quantity)
		}
	}

	priced := make([]models.OrderLine, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		id, err := primitive.ObjectIDFromHex(line.MenuItem)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid menu item id", ErrInvalidMenuItem, line.MenuItem)
		}

		item, err := catalog.ResolveMenuItem(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolving menu item %s: %w", line.MenuItem, err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMenuItem, line.MenuItem)
		}

		price := *item.Price
		priced = append(priced, models.OrderLine{
			MenuItem: id,
			Quantity: line.Quantity,
			Price:    price,
		})
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	amount, _ := total.Float64()
	return &Draft{Items: priced, TotalAmount: amount}, nil
}
