package kernel

import (
	"errors"
	"fmt"
	"math"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// centsPerUnit is the number of minor units in one major currency unit.
// All supported currencies are handled with two fractional digits.
const centsPerUnit = 100

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created via NewMoney or NewMoneyFromCents to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromCents constructors")

// Money is an immutable value object binding a non-negative amount to a currency.
//
// The amount is stored as an integer count of minor units (cents) to keep
// arithmetic exact; binary floating point never participates in addition.
// Amounts supplied as floating point are rounded to two fractional digits
// at construction using round-half-away-from-zero, and the same rule is
// applied after every multiplication. All binary operations require both
// operands to carry the same currency.
//
// Every operation returns a new instance; Money values are freely shareable
// across concurrent readers.
//
// Example usage:
//
//	price, err := kernel.NewMoney(19.99, kernel.USD)
//	if err != nil {
//	    // handle validation error
//	}
//
//	total, err := price.Multiply(3)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(total) // Output: 59.97 USD
type Money struct { //nolint:recvcheck //using for validation
	cents    int64
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from a major-unit amount and a currency.
// The amount must be finite and non-negative; it is rounded to two fractional
// digits (half away from zero) before being stored as minor units.
//
// Parameters:
//   - amount: The monetary amount in major units (e.g. 19.99)
//   - currency: The currency the amount is denominated in
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or not finite,
//     or the currency is not supported
func NewMoney(amount float64, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromCents creates a Money value directly from a count of minor units.
// This constructor is exact and is the preferred path when rehydrating
// persisted amounts.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if cents is negative or the currency is not supported
func NewMoneyFromCents(cents int64, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setCents(cents),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns a new Money holding the sum of both amounts.
// Both operands must carry the same currency.
//
// Addition operates on exact minor units, so it is commutative and
// associative regardless of how the operands were rounded at construction.
//
// Returns:
//   - Money: The sum in the shared currency
//   - error: Validation error if either operand is not constructed
//     or the currencies differ
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if !m.currency.IsEqual(other.currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency is invalid",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency),
		)
	}

	return Money{
		cents:    m.cents + other.cents,
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Multiply returns a new Money holding the amount scaled by the multiplier.
// The multiplier must be finite and non-negative. The result is rounded to
// whole minor units using round-half-away-from-zero.
//
// Returns:
//   - Money: The scaled amount in the same currency
//   - error: Validation error if the receiver is not constructed
//     or the multiplier is negative or not finite
func (m Money) Multiply(multiplier float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"multiplier is invalid",
			fmt.Errorf("%v is not a finite number", multiplier),
		)
	}

	if multiplier < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"multiplier is invalid",
			fmt.Errorf("%v is negative", multiplier),
		)
	}

	return Money{
		cents:    int64(math.Round(float64(m.cents) * multiplier)),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two Money values structurally.
// Returns true only when both amount and currency match exactly.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Amount returns the monetary amount in major units.
// The value is exact: minor units divided by 100 always has a finite
// two-digit decimal representation.
func (m Money) Amount() float64 {
	return float64(m.cents) / centsPerUnit
}

// Cents returns the amount as a count of minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency {
	return m.currency
}

// String renders the amount with two fractional digits followed by the
// currency code, e.g. "12.34 USD".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.cents/centsPerUnit, m.cents%centsPerUnit, m.currency)
}

// setAmount validates and stores a major-unit amount as minor units.
// This is a private method used only during construction.
func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is not a finite number", amount),
		)
	}

	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is negative", amount),
		)
	}

	m.cents = int64(math.Round(amount * centsPerUnit))
	return nil
}

// setCents validates and stores a minor-unit amount.
// This is a private method used only during construction.
func (m *Money) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", cents),
		)
	}

	m.cents = cents
	return nil
}

// setCurrency validates and stores the currency.
// This is a private method used only during construction.
func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
