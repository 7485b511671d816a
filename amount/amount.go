// Package amount implements the fixed-point decimal value used throughout
// the engine for client balances and transaction amounts.
package amount

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits an Amount carries internally.
// Any parsed value with more fractional digits is rounded half-up to this
// scale before it enters the engine.
const Scale = 4

// Amount is a signed fixed-point decimal backed by a 256-bit unsigned
// magnitude, giving far more than the 28 significant digits of precision
// required for a ledger value. The sign is tracked separately so the zero
// value, and values parsed straight from untrusted input, can represent
// zero or negative quantities for validation before they are ever used in
// a balance mutation; every store operation in this module only ever
// accepts or produces non-negative Amounts.
type Amount struct {
	negative bool
	mag      uint256.Int
}

// Zero is the additive identity.
var Zero = Amount{}

// Parse converts a trimmed decimal string such as "100.50" or "-3" into an
// Amount. Surrounding whitespace is trimmed. Values with more than Scale
// fractional digits are rounded half-up to Scale.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("amount: empty value")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("amount: invalid decimal %q: %w", s, err)
	}
	return fromDecimal(d), nil
}

func fromDecimal(d decimal.Decimal) Amount {
	negative := d.Sign() < 0
	scaled := d.Abs().Shift(Scale).Round(0)
	mag, err := uint256.FromDecimal(scaled.String())
	if err != nil {
		// Abs().Shift(Scale).Round(0) always yields a non-negative
		// integer string; FromDecimal can only fail on malformed input.
		panic(fmt.Sprintf("amount: unexpected decimal conversion failure: %v", err))
	}
	return Amount{negative: negative && !mag.IsZero(), mag: *mag}
}

// Sign returns -1, 0 or +1 depending on whether a is negative, zero or
// positive.
func (a Amount) Sign() int {
	if a.mag.IsZero() {
		return 0
	}
	if a.negative {
		return -1
	}
	return 1
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.mag.IsZero()
}

// IsNegative returns true if the amount is strictly less than zero.
func (a Amount) IsNegative() bool {
	return a.negative && !a.mag.IsZero()
}

// Add returns a+b. Both operands must be non-negative; the sum overflows
// if it no longer fits the underlying 256-bit magnitude.
func Add(a, b Amount) Amount {
	result, _ := AddOverflow(a, b)
	return result
}

// AddOverflow returns a+b and whether the addition overflowed. a and b are
// assumed non-negative, which holds for every Amount that reaches the
// account store: the engine rejects non-positive amounts before they are
// ever passed to a store operation.
func AddOverflow(a, b Amount) (Amount, bool) {
	var mag uint256.Int
	_, overflow := mag.AddOverflow(&a.mag, &b.mag)
	return Amount{mag: mag}, overflow
}

// Sub returns a-b, assuming a >= b.
func Sub(a, b Amount) Amount {
	result, _ := SubUnderflow(a, b)
	return result
}

// SubUnderflow returns a-b and whether the subtraction underflowed (b > a).
func SubUnderflow(a, b Amount) (Amount, bool) {
	var mag uint256.Int
	_, underflow := mag.SubOverflow(&a.mag, &b.mag)
	return Amount{mag: mag}, underflow
}

// Cmp compares the signed values of a and b: -1 if a<b, 0 if a==b, +1 if
// a>b.
func Cmp(a, b Amount) int {
	as, bs := a.Sign(), b.Sign()
	switch {
	case as != bs:
		if as < bs {
			return -1
		}
		return 1
	case as == 0:
		return 0
	default:
		c := a.mag.Cmp(&b.mag)
		if as < 0 {
			c = -c
		}
		return c
	}
}

// String renders the amount as a decimal string with trailing fractional
// zeros trimmed, e.g. "100.5" rather than "100.5000".
func (a Amount) String() string {
	d := decimal.NewFromBigInt(a.mag.ToBig(), -Scale)
	if a.negative && !a.mag.IsZero() {
		d = d.Neg()
	}
	return trimTrailingZeros(d.StringFixed(Scale))
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
