package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/utils/accounting"
)

func TestRound(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "already at cents", amount: "100.25", want: "100.25"},
		{name: "half rounds away from zero", amount: "100.005", want: "100.01"},
		{name: "negative half rounds away from zero", amount: "-100.005", want: "-100.01"},
		{name: "below half rounds down", amount: "100.004", want: "100"},
		{name: "long rate product", amount: "123.456789", want: "123.46"},
		{name: "zero", amount: "0", want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, want.Equal(accounting.Round(amount)))
		})
	}
}

func TestAccounted(t *testing.T) {
	entered := decimal.RequireFromString("100.00")
	rate := decimal.RequireFromString("1.0857")

	got := accounting.Accounted(entered, rate)

	assert.True(t, decimal.RequireFromString("108.57").Equal(got))
}

func TestAccountedRoundsOnce(t *testing.T) {
	entered := decimal.RequireFromString("33.33")
	rate := decimal.RequireFromString("1.23456")

	// 33.33 * 1.23456 = 41.1478... rounds to 41.15
	got := accounting.Accounted(entered, rate)

	assert.True(t, decimal.RequireFromString("41.15").Equal(got))
}

func TestValidateLineAmounts(t *testing.T) {
	t.Run("debit only is valid", func(t *testing.T) {
		err := accounting.ValidateLineAmounts(decimal.RequireFromString("10.00"), decimal.Zero)
		require.NoError(t, err)
	})

	t.Run("credit only is valid", func(t *testing.T) {
		err := accounting.ValidateLineAmounts(decimal.Zero, decimal.RequireFromString("10.00"))
		require.NoError(t, err)
	})

	t.Run("both zero is valid here", func(t *testing.T) {
		// The no-amount rejection lives with journal creation, not the
		// side-exclusivity check.
		err := accounting.ValidateLineAmounts(decimal.Zero, decimal.Zero)
		require.NoError(t, err)
	})

	t.Run("negative debit rejected", func(t *testing.T) {
		err := accounting.ValidateLineAmounts(decimal.RequireFromString("-1.00"), decimal.Zero)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative credit rejected", func(t *testing.T) {
		err := accounting.ValidateLineAmounts(decimal.Zero, decimal.RequireFromString("-1.00"))
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("both sides rejected", func(t *testing.T) {
		err := accounting.ValidateLineAmounts(decimal.RequireFromString("5.00"), decimal.RequireFromString("5.00"))
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
