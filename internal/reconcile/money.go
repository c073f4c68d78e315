// Package reconcile rounds monetary fields and infers the amounts a model
// left unspecified.
package reconcile

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/rotisserie/eris"
)

// Tolerance is the largest ledger gap accepted as rounding noise.
const Tolerance = "0.01"

// places is the number of decimal places money is kept at.
const places = 2

// minPrecision is the decimal128 precision, enough for any everyday amount.
const minPrecision = 34

// contextFor returns a round-half-up context precise enough to hold every
// operand exactly with at least two decimal places.
func contextFor(ds ...*apd.Decimal) *apd.Context {
	var whole, frac int64 = 1, places
	for _, d := range ds {
		whole = max(whole, d.NumDigits()+int64(d.Exponent))
		frac = max(frac, -int64(d.Exponent))
	}
	c := apd.BaseContext.WithPrecision(uint32(max(whole+frac+1, minPrecision)))
	c.Rounding = apd.RoundHalfUp
	return c
}

// decimalOf converts f through its shortest decimal literal, so a value
// decoded from "1.005" rounds as 1.005 and not as its binary neighbour.
func decimalOf(f float64) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return nil, eris.Wrapf(err, "reconcile: %v is not a finite amount", f)
	}
	return d, nil
}

func quantize(d *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := contextFor(d).Quantize(out, d, -places); err != nil {
		return nil, eris.Wrapf(err, "reconcile: quantize %s", d.Text('f'))
	}
	return out, nil
}

func floatOf(d *apd.Decimal) (float64, error) {
	f, err := strconv.ParseFloat(d.Text('f'), 64)
	if err != nil {
		return 0, eris.Wrapf(err, "reconcile: %s does not fit a float64", d.Text('f'))
	}
	return f, nil
}

// Quantize rounds f to two decimal places, half up. On failure f is
// returned unchanged with the error.
func Quantize(f float64) (float64, error) {
	d, err := decimalOf(f)
	if err != nil {
		return f, err
	}
	q, err := quantize(d)
	if err != nil {
		return f, err
	}
	out, err := floatOf(q)
	if err != nil {
		return f, err
	}
	return out, nil
}

// QuantizeLiteral rounds a decimal literal such as "12.345" to two places
// without passing through binary floating point. Literals that are not
// finite decimals, or that overflow a float64, yield 0 and false.
func QuantizeLiteral(lit string) (float64, bool) {
	d, _, err := apd.NewFromString(lit)
	if err != nil || d.Form != apd.Finite {
		return 0, false
	}
	q, err := quantize(d)
	if err != nil {
		return 0, false
	}
	f, err := floatOf(q)
	if err != nil {
		return 0, false
	}
	return f, true
}

// sum adds values exactly.
func sum(values ...float64) (*apd.Decimal, error) {
	ds := make([]*apd.Decimal, len(values))
	for i, v := range values {
		d, err := decimalOf(v)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}

	total := apd.New(0, 0)
	c := contextFor(ds...)
	for _, d := range ds {
		// Each partial sum grows by at most one digit.
		c.Precision++
		if _, err := c.Add(total, total, d); err != nil {
			return nil, eris.Wrap(err, "reconcile: sum")
		}
	}
	return total, nil
}

// sub returns x - y exactly.
func sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	c := contextFor(x, y)
	c.Precision++
	if _, err := c.Sub(out, x, y); err != nil {
		return nil, eris.Wrap(err, "reconcile: subtract")
	}
	return out, nil
}
