package kernel_test

import (
	"fmt"
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFromString(t *testing.T) {
	t.Run("should parse supported currency codes", func(t *testing.T) {
		testCases := []struct {
			code     string
			expected kernel.Currency
		}{
			{"USD", kernel.USD},
			{"EUR", kernel.EUR},
			{"GBP", kernel.GBP},
			{"JPY", kernel.JPY},
		}

		for _, tc := range testCases {
			t.Run(tc.code, func(t *testing.T) {
				currency, err := kernel.CurrencyFromString(tc.code)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, currency)
			})
		}
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		currency, err := kernel.CurrencyFromString("usd")

		require.NoError(t, err)
		assert.Equal(t, kernel.USD, currency)

		currency, err = kernel.CurrencyFromString("Eur")

		require.NoError(t, err)
		assert.Equal(t, kernel.EUR, currency)
	})

	t.Run("should fail for empty code", func(t *testing.T) {
		_, err := kernel.CurrencyFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail for unsupported codes", func(t *testing.T) {
		unsupported := []string{"CHF", "AUD", "BTC", "US", "USDD", "dollar"}

		for _, code := range unsupported {
			t.Run(code, func(t *testing.T) {
				_, err := kernel.CurrencyFromString(code)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "currency is invalid")
			})
		}
	})
}

func TestCurrency_Validate(t *testing.T) {
	t.Run("should validate supported currencies", func(t *testing.T) {
		supported := []kernel.Currency{kernel.USD, kernel.EUR, kernel.GBP, kernel.JPY}

		for _, currency := range supported {
			t.Run(currency.String(), func(t *testing.T) {
				require.NoError(t, currency.Validate())
			})
		}
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var currency kernel.Currency

		err := currency.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency is invalid")
	})

	t.Run("should reject arbitrary codes", func(t *testing.T) {
		invalid := []kernel.Currency{"XXX", "usd", "U", "123"}

		for _, currency := range invalid {
			t.Run(string(currency), func(t *testing.T) {
				err := currency.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a supported currency code", string(currency)))
			})
		}
	})
}

func TestCurrency_IsEqual(t *testing.T) {
	t.Run("should return true for same code", func(t *testing.T) {
		a, _ := kernel.CurrencyFromString("USD")
		b, _ := kernel.CurrencyFromString("usd")

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should return false for different codes", func(t *testing.T) {
		assert.False(t, kernel.USD.IsEqual(kernel.EUR))
		assert.False(t, kernel.GBP.IsEqual(kernel.JPY))
	})
}

func TestCurrency_String(t *testing.T) {
	t.Run("should return the currency code", func(t *testing.T) {
		assert.Equal(t, "USD", kernel.USD.String())
		assert.Equal(t, "EUR", kernel.EUR.String())
		assert.Equal(t, "GBP", kernel.GBP.String())
		assert.Equal(t, "JPY", kernel.JPY.String())
	})
}
