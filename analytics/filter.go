// Package analytics holds the query-and-aggregation layer: search filter
// resolution, paginated listings, and the monthly aggregate views.
package analytics

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// DefaultPageSize is the fixed page size used for listing pagination.
	DefaultPageSize = 10
	// NumericSearchLimit caps the numeric (price ceiling) branch at 4
	// results, independent of the page size. Clients depend on this cap.
	NumericSearchLimit = 4
)

// SearchFilter is the resolved form of a raw search token: the store query,
// the sort order, and the result-size cap for one page.
type SearchFilter struct {
	Query bson.M
	Sort  bson.D
	Limit int64
	// Numeric reports whether the token parsed as a price ceiling.
	Numeric bool
}

// ResolveFilter classifies a raw search token into exactly one of three
// branches. An empty token matches everything; a token that parses as a
// number becomes a price-ceiling query sorted by descending price; anything
// else becomes a case-insensitive free-text query sorted by relevance.
func ResolveFilter(search string) SearchFilter {
	if search == "" {
		return SearchFilter{
			Query: bson.M{},
			Limit: DefaultPageSize,
		}
	}

	if ceiling, err := strconv.ParseFloat(search, 64); err == nil {
		return SearchFilter{
			Query:   bson.M{"price": bson.M{"$lte": ceiling}},
			Sort:    bson.D{{Key: "price", Value: -1}},
			Limit:   NumericSearchLimit,
			Numeric: true,
		}
	}

	return SearchFilter{
		Query: bson.M{"$text": bson.M{"$search": search, "$caseSensitive": false}},
		Sort:  bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}},
		Limit: DefaultPageSize,
	}
}
