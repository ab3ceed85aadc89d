package flow_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/core/flow"
)

func ptr[K any](v K) *K { return &v }

func qty(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNetBalances_ClosedSystemSumsToZero(t *testing.T) {
	// Every internal transfer credits one side exactly what it debits the
	// other, so the system-wide sum must be zero.
	entries := []flow.Entry[int64]{
		{From: ptr[int64](1), To: ptr[int64](2), Qty: qty("100")},
		{From: ptr[int64](2), To: ptr[int64](3), Qty: qty("40")},
		{From: ptr[int64](3), To: ptr[int64](1), Qty: qty("15")},
	}

	balances := flow.NetBalances(entries)

	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	assert.True(t, total.IsZero(), "closed system must sum to zero, got %s", total)
	assert.True(t, balances[1].Equal(qty("-85")))
	assert.True(t, balances[2].Equal(qty("60")))
	assert.True(t, balances[3].Equal(qty("25")))
}

func TestNetBalances_StockExample(t *testing.T) {
	// External inflow of 5 into S1, then 3 transferred S1 -> S2:
	// S1 holds 2, S2 holds 3.
	s1, s2 := int64(1), int64(2)
	entries := []flow.Entry[int64]{
		{To: &s1, Qty: qty("5")},
		{From: &s1, To: &s2, Qty: qty("3")},
	}

	balances := flow.NetBalances(entries)
	assert.True(t, balances[s1].Equal(qty("2")))
	assert.True(t, balances[s2].Equal(qty("3")))
}

func TestNetBalances_SingleEntryTouchesExactlyTwoKeys(t *testing.T) {
	entries := []flow.Entry[int64]{
		{From: ptr[int64](7), To: ptr[int64](8), Qty: qty("100.00")},
	}
	balances := flow.NetBalances(entries)
	require.Len(t, balances, 2)
	assert.True(t, balances[8].Equal(qty("100.00")))
	assert.True(t, balances[7].Equal(qty("-100.00")))
}

func TestDirectionOf(t *testing.T) {
	box := int64(5)
	in := flow.Entry[int64]{From: ptr[int64](9), To: &box, Qty: qty("10")}
	out := flow.Entry[int64]{From: &box, To: ptr[int64](9), Qty: qty("4")}
	other := flow.Entry[int64]{From: ptr[int64](1), To: ptr[int64](2), Qty: qty("1")}

	dir, ok := flow.DirectionOf(box, in)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionIn, dir)

	dir, ok = flow.DirectionOf(box, out)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionOut, dir)

	_, ok = flow.DirectionOf(box, other)
	assert.False(t, ok)
}

func TestRunning(t *testing.T) {
	box := int64(5)
	entries := []flow.Entry[int64]{
		{To: &box, Qty: qty("1000")},
		{From: &box, Qty: qty("250")},
		{To: &box, Qty: qty("50")},
	}

	running := flow.Running(box, qty("100"), entries)
	require.Len(t, running, 3)
	assert.True(t, running[0].Equal(qty("1100")))
	assert.True(t, running[1].Equal(qty("850")))
	assert.True(t, running[2].Equal(qty("900")))
}

func TestRunning_EmptyKeepsOpening(t *testing.T) {
	running := flow.Running(int64(1), qty("42"), nil)
	assert.Empty(t, running)
}
