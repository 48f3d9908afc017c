package analytics_test

import (
	"reflect"
	"testing"

	"storefront/transactions/analytics"

	"go.mongodb.org/mongo-driver/bson"
)

func TestResolveFilter_EmptySearch(t *testing.T) {
	filter := analytics.ResolveFilter("")

	if !reflect.DeepEqual(filter.Query, bson.M{}) {
		t.Errorf("Expected match-all query, got %v", filter.Query)
	}
	if len(filter.Sort) != 0 {
		t.Errorf("Expected no sort, got %v", filter.Sort)
	}
	if filter.Limit != analytics.DefaultPageSize {
		t.Errorf("Expected limit %d, got %d", analytics.DefaultPageSize, filter.Limit)
	}
	if filter.Numeric {
		t.Error("Expected Numeric to be false for empty search")
	}
}

func TestResolveFilter_NumericSearch(t *testing.T) {
	filter := analytics.ResolveFilter("350.5")

	expectedQuery := bson.M{"price": bson.M{"$lte": 350.5}}
	if !reflect.DeepEqual(filter.Query, expectedQuery) {
		t.Errorf("Expected query %v, got %v", expectedQuery, filter.Query)
	}

	expectedSort := bson.D{{Key: "price", Value: -1}}
	if !reflect.DeepEqual(filter.Sort, expectedSort) {
		t.Errorf("Expected sort %v, got %v", expectedSort, filter.Sort)
	}

	if filter.Limit != analytics.NumericSearchLimit {
		t.Errorf("Expected limit %d, got %d", analytics.NumericSearchLimit, filter.Limit)
	}
	if !filter.Numeric {
		t.Error("Expected Numeric to be true for a numeric search")
	}
}

func TestResolveFilter_TextSearch(t *testing.T) {
	filter := analytics.ResolveFilter("winter jacket")

	expectedQuery := bson.M{"$text": bson.M{"$search": "winter jacket", "$caseSensitive": false}}
	if !reflect.DeepEqual(filter.Query, expectedQuery) {
		t.Errorf("Expected query %v, got %v", expectedQuery, filter.Query)
	}

	expectedSort := bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	if !reflect.DeepEqual(filter.Sort, expectedSort) {
		t.Errorf("Expected relevance sort %v, got %v", expectedSort, filter.Sort)
	}

	if filter.Limit != analytics.DefaultPageSize {
		t.Errorf("Expected limit %d, got %d", analytics.DefaultPageSize, filter.Limit)
	}
	if filter.Numeric {
		t.Error("Expected Numeric to be false for a text search")
	}
}

func TestResolveFilter_MixedTokenIsText(t *testing.T) {
	// A token with digits that fails numeric parsing goes to the text branch.
	filter := analytics.ResolveFilter("12abc")

	if filter.Numeric {
		t.Error("Expected Numeric to be false for a non-parsable token")
	}
	if _, ok := filter.Query["$text"]; !ok {
		t.Errorf("Expected a $text query, got %v", filter.Query)
	}
}
