package kernel

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Currency is a value object representing one of the currencies supported
// by the procurement system. The set of supported currencies is closed;
// any code outside the set fails construction.
//
// Currency is immutable and compared structurally by its code. Instances
// are freely shareable across concurrent readers.
//
// Example usage:
//
//	currency, err := kernel.CurrencyFromString("usd")
//	if err != nil {
//	    // handle unsupported currency code
//	}
//	fmt.Println(currency) // Output: USD
type Currency string

const (
	// USD is the United States dollar.
	USD Currency = "USD"
	// EUR is the euro.
	EUR Currency = "EUR"
	// GBP is the pound sterling.
	GBP Currency = "GBP"
	// JPY is the Japanese yen.
	JPY Currency = "JPY"
)

// getSupportedCurrencies returns the closed set of currencies the system accepts.
// Codes outside this set fail validation.
func getSupportedCurrencies() map[Currency]struct{} {
	return map[Currency]struct{}{
		USD: {},
		EUR: {},
		GBP: {},
		JPY: {},
	}
}

// CurrencyFromString parses a currency code into a Currency value.
// The code is case-insensitive; "usd" and "USD" produce the same Currency.
//
// Returns:
//   - Currency: The parsed currency if the code belongs to the supported set
//   - error: Validation error if the code is empty or unsupported
//
// Example:
//
//	currency, err := kernel.CurrencyFromString("EUR")
//	if err != nil {
//	    return fmt.Errorf("invalid order currency: %w", err)
//	}
func CurrencyFromString(code string) (Currency, error) {
	if code == "" {
		return "", errs.NewValueIsRequiredError("currency code")
	}

	currency := Currency(strings.ToUpper(code))
	if err := currency.Validate(); err != nil {
		return "", err
	}

	return currency, nil
}

// Validate checks that the currency belongs to the supported set.
// The zero value (empty string) and any unknown code are invalid.
func (c Currency) Validate() error {
	if _, ok := getSupportedCurrencies()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency is invalid",
			fmt.Errorf("%q is not a supported currency code", string(c)),
		)
	}
	return nil
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c == other
}

// String returns the ISO 4217 code of the currency.
// This method implements the fmt.Stringer interface.
func (c Currency) String() string {
	return string(c)
}
