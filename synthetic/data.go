// Package synthetic generates sample transactions for tests: prices across
// every histogram band, a mix of sold states, and dates across all months.
package synthetic

import (
	"fmt"
	"math/rand"
	"time"

	"storefront/transactions/model"
)

var categories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// Transactions generates n sample transactions from the given seed. The sold
// field cycles through absent, false, and true so callers exercise all three
// states.
func Transactions(seed int64, n int) []model.Transaction {
	rng := rand.New(rand.NewSource(seed))

	transactions := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		var sold *bool
		switch i % 3 {
		case 0:
			// absent
		case 1:
			val := false
			sold = &val
		case 2:
			val := true
			sold = &val
		}

		transactions = append(transactions, model.Transaction{
			ID:          i + 1,
			Title:       fmt.Sprintf("Sample Product %d", i+1),
			Price:       rng.Float64() * 1100,
			Description: fmt.Sprintf("Synthetic listing %d for testing", i+1),
			Category:    categories[rng.Intn(len(categories))],
			Image:       fmt.Sprintf("https://example.com/images/%d.jpg", i+1),
			Sold:        sold,
			DateOfSale: time.Date(
				2021+rng.Intn(2),
				time.Month(1+rng.Intn(12)),
				1+rng.Intn(28),
				rng.Intn(24), rng.Intn(60), 0, 0, time.UTC,
			),
		})
	}

	return transactions
}
