package domain

import "math"

// Money is a non-negative amount of yen. The zero value is zero yen.
// Construct via NewMoney so the invariants (integral, >= 0) always hold.
type Money struct {
	amount int64
}

// NewMoney validates amount and returns it as Money.
// Catalog prices arrive as floats, so both granularity and sign are checked:
// a fractional amount and a negative amount are distinct errors.
func NewMoney(amount float64) (Money, error) {
	if amount != math.Trunc(amount) || math.IsInf(amount, 0) {
		return Money{}, Errorf(ENONINTEGER, "money.new", "amount must be an integral number of yen, got %v", amount)
	}
	if amount < 0 {
		return Money{}, Errorf(ENEGATIVEAMOUNT, "money.new", "amount must not be negative, got %v", amount)
	}
	return Money{amount: int64(amount)}, nil
}

// Zero returns zero yen.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in yen.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of m and other.
// The sum of two valid amounts is always valid, so Add cannot fail.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply returns m multiplied by factor.
// The factor must be non-negative; integrality is guaranteed by the type.
func (m Money) Multiply(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, Errorf(ENEGATIVEAMOUNT, "money.multiply", "multiplier must not be negative, got %d", factor)
	}
	return Money{amount: m.amount * factor}, nil
}
