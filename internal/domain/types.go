package domain

import "time"

type Shop struct {
	ID       int64
	Name     string
	Capacity int64
}

// Picture identity is scoped per shop: (ShopID, ID) is the key, and two
// shops number their pictures independently starting at 1.
type Picture struct {
	ID        int64
	ShopID    int64
	Name      string
	Author    string
	Price     float64
	EntryDate time.Time
}
