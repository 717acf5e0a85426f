package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Currency is the registry entry of a pegged currency.
type Currency struct {
	Address        common.Address `json:"address"`
	Registered     bool           `json:"registered"`
	MaxMintAmount  *uint256.Int   `json:"max_mint_amount"`
	MinSupplyFloor *uint256.Int   `json:"min_supply_floor"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// CurrencyDB is the persisted form of Currency. Amounts are decimal strings.
type CurrencyDB struct {
	Address        string    `db:"address"`
	Registered     bool      `db:"registered"`
	MaxMintAmount  string    `db:"max_mint_amount"`
	MinSupplyFloor string    `db:"min_supply_floor"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Eligible reports whether mint and burn legs may run against c.
// A nil entry means the currency was never registered.
func (c *Currency) Eligible() bool {
	return c != nil && c.Registered
}
