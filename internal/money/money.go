package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// All money in the system is an integer number of cents. This package is the
// single place where user-facing currency text becomes cents; nothing else
// may parse monetary input.

var (
	// ErrMissingAmount reports currency text that is empty once decoration
	// ($ signs, thousands separators, whitespace) is stripped.
	ErrMissingAmount = errors.New("missing amount")

	// ErrInvalidFormat reports currency text that does not describe a
	// non-negative amount with at most two fraction digits.
	ErrInvalidFormat = errors.New("invalid money format")
)

// Accepted shapes: "12", "12.5", "12.50", ".50". No sign, no more than two
// fraction digits, single decimal point.
var amountPattern = regexp.MustCompile(`^(?:\d+|\d*\.\d{1,2})$`)

var decoration = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "")

// ToCents converts decimal currency text in major units to an exact integer
// number of cents. Inputs are constrained to at most two fraction digits, so
// multiplying by 100 is exact and the half-away-from-zero round only guards
// against float representation noise.
func ToCents(raw string) (int64, error) {
	s := decoration.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, ErrMissingAmount
	}
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	if f > math.MaxInt64/100 {
		return 0, fmt.Errorf("%w: %q exceeds representable range", ErrInvalidFormat, raw)
	}

	return int64(math.Round(f * 100)), nil
}

// RawAmount carries a monetary field exactly as it arrived on the wire.
// It accepts both JSON strings and JSON numbers ("19.99" or 19.99) and keeps
// the original text verbatim so that ToCents remains the only interpreter.
type RawAmount struct {
	text string
	set  bool
}

// Amount builds a RawAmount from text, as if it had been received on the wire.
func Amount(s string) RawAmount {
	return RawAmount{text: s, set: true}
}

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.text, a.set = s, true
		return nil
	}
	// Bare number token: keep its textual form.
	a.text, a.set = string(data), true
	return nil
}

// IsSet reports whether a value was supplied at all, which is how optional
// fields (selling price) are told apart from absent ones.
func (a RawAmount) IsSet() bool { return a.set }

func (a RawAmount) String() string { return a.text }

// Cents normalizes the raw text through ToCents.
func (a RawAmount) Cents() (int64, error) {
	if !a.set {
		return 0, ErrMissingAmount
	}
	return ToCents(a.text)
}
