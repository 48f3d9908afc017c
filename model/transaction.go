package model

import "time"

// Transaction represents a single product transaction from the upstream feed,
// mapped for storage.
type Transaction struct {
	ID          int       `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	Sold        *bool     `bson:"sold,omitempty" json:"sold,omitempty"`
	DateOfSale  time.Time `bson:"dateOfSale" json:"dateOfSale"`
}

// IsSold reports whether the record was marked sold. Sold is a pointer
// because the feed may omit the field entirely; absent and false both
// count as not sold, only a strict true counts as sold.
func (t Transaction) IsSold() bool {
	return t.Sold != nil && *t.Sold
}
