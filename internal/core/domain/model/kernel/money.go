package kernel

import (
	"math"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// MaxMoneyCents bounds every amount so that summing an order never overflows.
const MaxMoneyCents int64 = 1 << 48

// ErrMoneyIsNotConstructed is returned when a Money was not built by a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromDecimal")

// Money is a non-negative monetary amount kept in minor units (cents).
// Dish prices, option extras and order totals are all Money, so totals are
// exact sums and never drift through floating point.
//
// Example:
//
//	price, _ := kernel.MoneyFromDecimal(10.00)
//	extra, _ := kernel.MoneyFromDecimal(1.50)
//	total := price.Add(extra)
//	fmt.Println(total.Decimal()) // 11.5
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney builds an amount from cents in [0, MaxMoneyCents].
func NewMoney(cents int64) (Money, error) {
	if cents < 0 || cents > MaxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", cents, int64(0), MaxMoneyCents)
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromDecimal converts a decimal amount such as 11.50 to cents, rounding
// half away from zero.
func MoneyFromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// ZeroMoney is the constructed zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount in major units, for presentation only.
func (m Money) Decimal() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum, saturating at MaxMoneyCents.
func (m Money) Add(other Money) Money {
	sum := m.cents + other.cents
	if sum > MaxMoneyCents {
		sum = MaxMoneyCents
	}
	return Money{cents: sum, guard: guard.NewConstructorGuard()}
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
