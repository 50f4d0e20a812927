package money

import (
	"math"
	"strconv"
)

// Cents represents a monetary amount as an integer number of cents.
// All arithmetic in the application happens on this type so that
// totals never accumulate binary floating point error. On the wire
// amounts appear as plain dollar numbers with two decimals, matching
// the upstream backend's JSON contract.
type Cents int64

// FromDollars converts a dollar amount (e.g. 5.99) into Cents,
// rounding half away from zero.
func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the amount as a float64 dollar value.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Mul returns the amount multiplied by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount as a dollar string with two decimals, e.g. "15.99".
func (c Cents) String() string {
	return strconv.FormatFloat(c.Dollars(), 'f', 2, 64)
}

// MarshalJSON encodes the amount as a dollar number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON decodes a dollar number (or null) into Cents.
func (c *Cents) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = 0
		return nil
	}
	d, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*c = FromDollars(d)
	return nil
}
