package domain

import "time"

// Account is a named bucket splits post against. The editing layer
// only needs its identity and currency; balances are derived by the
// reporting side from committed splits.
type Account struct {
	ID        string
	Name      string
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
