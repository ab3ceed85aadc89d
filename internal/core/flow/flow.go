// Package flow implements the double-entry aggregation shared by the
// financial ledger and the inventory ledger. Both are the same abstract
// pattern: quantities move between two points of a resource dimension
// (account -> account for money, location -> location for goods), and every
// balance is derived by aggregation over the full entry set rather than
// stored.
package flow

import (
	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// Entry is one transfer over dimension K. A nil From means an external
// inflow, a nil To an external outflow. Qty must be positive; the sign of a
// key's balance contribution comes from which side the key sits on.
type Entry[K comparable] struct {
	From *K
	To   *K
	Qty  decimal.Decimal
}

// NetBalances derives the balance of every key touched by entries:
// sum(qty received) - sum(qty given). For ledger lines (To = debit side) this
// yields the uniform debit-positive sign convention; for stock moves it
// yields on-hand quantities.
func NetBalances[K comparable](entries []Entry[K]) map[K]decimal.Decimal {
	balances := make(map[K]decimal.Decimal)
	for _, e := range entries {
		if e.To != nil {
			balances[*e.To] = balances[*e.To].Add(e.Qty)
		}
		if e.From != nil {
			balances[*e.From] = balances[*e.From].Sub(e.Qty)
		}
	}
	return balances
}

// DirectionOf reports how an entry moves quantity relative to key:
// IN when key is the receiving side, OUT when key is the giving side.
// The second return is false when the entry does not touch key.
func DirectionOf[K comparable](key K, e Entry[K]) (domain.EntryDirection, bool) {
	if e.To != nil && *e.To == key {
		return domain.DirectionIn, true
	}
	if e.From != nil && *e.From == key {
		return domain.DirectionOut, true
	}
	return "", false
}

// Running computes the balance after each entry from key's perspective,
// starting from opening. Entries must be ordered oldest first and must all
// touch key. The returned slice is parallel to entries.
func Running[K comparable](key K, opening decimal.Decimal, entries []Entry[K]) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(entries))
	current := opening
	for i, e := range entries {
		dir, ok := DirectionOf(key, e)
		if ok {
			if dir == domain.DirectionIn {
				current = current.Add(e.Qty)
			} else {
				current = current.Sub(e.Qty)
			}
		}
		balances[i] = current
	}
	return balances
}
