package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), BRL)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, BRL, m.Currency())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		a := NewMoneyBRLFromFloat(89.90)
		b := NewMoneyBRLFromFloat(69.90)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "159.80", sum.Amount().StringFixed(2))
	})

	t.Run("add mismatched currency fails", func(t *testing.T) {
		a := NewMoneyBRLFromFloat(10)
		b, _ := NewMoney(decimal.NewFromInt(10), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		unit := NewMoneyBRLFromFloat(50.0)
		total := unit.MultiplyByInt(3)
		assert.Equal(t, "150.00", total.Amount().StringFixed(2))
	})

	t.Run("subtract", func(t *testing.T) {
		a := NewMoneyBRLFromFloat(100)
		b := NewMoneyBRLFromFloat(40)
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "60.00", diff.Amount().StringFixed(2))
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyBRLFromFloat(10)
	b := NewMoneyBRLFromFloat(20)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	assert.True(t, a.Equals(NewMoneyBRLFromFloat(10)))
	assert.False(t, a.Equals(b))
	assert.True(t, ZeroBRL().IsZero())
	assert.True(t, b.IsPositive())
	assert.True(t, b.Negate().IsNegative())
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyBRLFromFloat(89.9)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"89.9","currency":"BRL"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string amount with default currency", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("123.45"))
		assert.Equal(t, "123.45", m.Amount().StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects non-numeric", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan("abc"))
	})
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyBRLFromFloat(89.9)
	assert.Equal(t, "89.90 BRL", m.String())
}
