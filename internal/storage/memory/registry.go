package memory

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// CurrencyStore is the currency registry view of a Store.
type CurrencyStore struct {
	s *Store
}

// Currencies returns the currency registry view.
func (s *Store) Currencies() *CurrencyStore {
	return &CurrencyStore{s: s}
}

// Save overwrites the entry of c.Address.
func (c *CurrencyStore) Save(ctx context.Context, currency models.Currency) error {
	return c.s.write(ctx, func(st *state) error {
		entry := currency
		entry.MaxMintAmount = models.AmountOrZero(currency.MaxMintAmount).Clone()
		entry.MinSupplyFloor = models.AmountOrZero(currency.MinSupplyFloor).Clone()
		if entry.UpdatedAt.IsZero() {
			entry.UpdatedAt = time.Now().UTC()
		}
		st.currencies[currency.Address] = entry
		return nil
	})
}

// GetByAddress returns the entry of address, or nil if it was never saved.
func (c *CurrencyStore) GetByAddress(ctx context.Context, address common.Address) (*models.Currency, error) {
	var found *models.Currency
	c.s.read(ctx, func(st *state) {
		if entry, ok := st.currencies[address]; ok {
			found = &entry
		}
	})
	return found, nil
}

// List returns all entries ordered by address.
func (c *CurrencyStore) List(ctx context.Context) ([]models.Currency, error) {
	var list []models.Currency
	c.s.read(ctx, func(st *state) {
		list = make([]models.Currency, 0, len(st.currencies))
		for _, entry := range st.currencies {
			list = append(list, entry)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		return bytes.Compare(list[i].Address[:], list[j].Address[:]) < 0
	})
	return list, nil
}

// OperatorStore is the operator account view of a Store.
type OperatorStore struct {
	s *Store
}

// Operators returns the operator account view.
func (s *Store) Operators() *OperatorStore {
	return &OperatorStore{s: s}
}

// GetByUsername returns the operator, or nil if none exists.
func (o *OperatorStore) GetByUsername(ctx context.Context, username string) (*models.OperatorDB, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	op, ok := o.s.operators[username]
	if !ok {
		return nil, nil
	}
	return &op, nil
}

// Save creates the operator or replaces its password and address.
func (o *OperatorStore) Save(ctx context.Context, username, passwordHash, address string) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	now := time.Now().UTC()
	op, ok := o.s.operators[username]
	if !ok {
		op = models.OperatorDB{OperatorID: uuid.New(), Username: username, CreatedAt: now}
	}
	op.PasswordHash = passwordHash
	op.Address = address
	op.UpdatedAt = now
	o.s.operators[username] = op
	return nil
}
