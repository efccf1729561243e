package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexID is a numeric identifier that may arrive from the API as either a
// JSON number or a JSON string ("5" vs 5). It always marshals as a number.
type FlexID int64

// UnmarshalJSON accepts both quoted and bare numeric representations.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Tolerate non-integer numerics ("1.5", "1e3") by truncating,
		// so one odd document never aborts decoding a whole listing.
		f64, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid id %q: %w", s, err)
		}
		n = int64(f64)
	}
	*f = FlexID(n)
	return nil
}

// MarshalJSON emits the canonical numeric form.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

// Int64 returns the numeric value of the identifier.
func (f FlexID) Int64() int64 {
	return int64(f)
}

func (f FlexID) String() string {
	return strconv.FormatInt(int64(f), 10)
}
