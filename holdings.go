package stockcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HoldingsVector is the current share count per asset, in model declaration
// order.
type HoldingsVector []int64

// At returns the quantity at index i, treating missing entries as zero.
func (h HoldingsVector) At(i int) int64 {
	if i < 0 || i >= len(h) {
		return 0
	}
	return h[i]
}

// ParseHoldings converts whitespace-separated share counts into a vector of
// length n. Empty input yields an all-zero vector. Fewer tokens than assets
// zero-pads the tail and reports padded=true so the caller can warn. A
// token that is not a non-negative integer, or more tokens than assets,
// yields a ParseError.
func ParseHoldings(text string, n int) (h HoldingsVector, padded bool, err error) {
	h = make(HoldingsVector, n)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return h, false, nil
	}
	if len(fields) > n {
		return nil, false, &ParseError{
			Token: fields[n],
			Err:   fmt.Errorf("got %d quantities for %d assets", len(fields), n),
		}
	}
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, false, &ParseError{Token: f, Err: errors.Unwrap(err)}
		}
		if v < 0 {
			return nil, false, &ParseError{Token: f, Err: errors.New("negative quantity")}
		}
		h[i] = v
	}
	return h, len(fields) < n, nil
}
