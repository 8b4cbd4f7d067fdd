// Package search builds the store queries for catalog lookup: free-text
// search filters, structured listing filters, and order pagination
// options. Matching semantics live here rather than in any text index so
// they stay explicit and reproducible.
package search

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MatchAll is the sentinel filter value meaning "do not constrain on
// this field".
const MatchAll = "All"

// BuildSearchFilter turns a free-text query plus optional category and
// availability filters into a menu item filter.
//
// The query is split on whitespace; an item matches when at least one
// token appears as a case-insensitive substring of its name or of any
// ingredient (any word, any field). Category and availability, when
// supplied and not the MatchAll sentinel, are ANDed on top as exact
// constraints: a user who picked a category never wants results outside
// it regardless of text match.
//
// The second return value is false when the query has no tokens; an
// empty query means "no search", not "match everything", and callers
// must return an empty result set without scanning the store.
func BuildSearchFilter(query, category, availability string) (bson.M, bool) {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil, false
	}

	or := make([]bson.M, 0, 2*len(words))
	for _, word := range words {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(word), Options: "i"}
		or = append(or,
			bson.M{"name": pattern},
			bson.M{"ingredients": pattern},
		)
	}

	filter := bson.M{"$or": or}
	if category != "" && category != MatchAll {
		filter["category"] = category
	}
	if availability != "" && availability != MatchAll {
		filter["isAvailable"] = availability == "Available"
	}
	return filter, true
}

// BuildListFilter constructs the plain-listing filter for menu items:
// optional exact category, optional availability boolean ("true"/"false")
// and an optional inclusive price range. Unparseable numeric bounds are
// ignored.
func BuildListFilter(category, isAvailable, minPrice, maxPrice string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if isAvailable != "" {
		filter["isAvailable"] = isAvailable == "true"
	}

	price := bson.M{}
	if min, err := strconv.ParseFloat(minPrice, 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(maxPrice, 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// PageOptions builds find options for a newest-created-first page window:
// skip (page-1)*limit documents, return at most limit.
func PageOptions(page, limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}
