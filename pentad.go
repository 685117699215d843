// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kalendar

import (
	"fmt"
	"time"
)

const (
	pentadsPerMonth = 6
	pentadsPerYear  = 12 * pentadsPerMonth
	pentadLength    = 5
)

// Pentad represents one of the six 5-day reporting periods within a month:
// days 1-5, 6-10, 11-15, 16-20, 21-25 and 26 through the end of the month,
// the sixth absorbing any days beyond 25. Pentads of the same value compare
// equal with ==. The zero value is not a valid pentad; use NewPentad,
// PentadOfYear, PentadFromTime or Parse.
type Pentad struct {
	year  int
	month time.Month
	index int
}

// NewPentad returns the pentad for the given year, month and index within
// the month in the range 1-6.
func NewPentad(year int, month time.Month, index int) (Pentad, error) {
	if month < time.January || month > time.December {
		return Pentad{}, fmt.Errorf("month %d is not in the range 1-12: %w", month, ErrInvalidMonth)
	}
	if index < 1 || index > pentadsPerMonth {
		return Pentad{}, fmt.Errorf("pentad %d is not in the range 1-%d: %w", index, pentadsPerMonth, ErrInvalidIndex)
	}
	return Pentad{year: year, month: month, index: index}, nil
}

// PentadOfYear returns the pentad for the given year and yearly pentad
// number in the range 1-72, where pentad 1 starts on Jan 1 and pentad 72
// on Dec 26.
func PentadOfYear(year, n int) (Pentad, error) {
	if n < 1 || n > pentadsPerYear {
		return Pentad{}, fmt.Errorf("pentad %d is not in the range 1-%d: %w", n, pentadsPerYear, ErrInvalidIndex)
	}
	return Pentad{year: year, month: time.Month((n-1)/pentadsPerMonth + 1), index: (n-1)%pentadsPerMonth + 1}, nil
}

// PentadFromTime returns the pentad containing the given time.
func PentadFromTime(t time.Time) Pentad {
	return Pentad{year: t.Year(), month: t.Month(), index: periodOfDay(t.Day(), pentadLength, pentadsPerMonth)}
}

// Year returns the pentad's year.
func (p Pentad) Year() int { return p.year }

// Month returns the pentad's month.
func (p Pentad) Month() time.Month { return p.month }

// Index returns the pentad within its month, 1-6.
func (p Pentad) Index() int { return p.index }

// OfYear returns the pentad within its year, 1-72.
func (p Pentad) OfYear() int { return (int(p.month)-1)*pentadsPerMonth + p.index }

// StartDate returns midnight UTC on the first day of the pentad.
func (p Pentad) StartDate() time.Time {
	return time.Date(p.year, p.month, (p.index-1)*pentadLength+1, 0, 0, 0, 0, time.UTC)
}

// EndDate returns midnight UTC on the last day of the pentad. The sixth
// pentad of a month ends on the last day of that month.
func (p Pentad) EndDate() time.Time {
	if p.index == pentadsPerMonth {
		return time.Date(p.year, p.month, DaysInMonth(p.year, p.month), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(p.year, p.month, p.index*pentadLength, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days the pentad covers: 5 for the first five
// pentads of a month and 3 to 6 for the sixth.
func (p Pentad) Days() int {
	if p.index == pentadsPerMonth {
		return DaysInMonth(p.year, p.month) - (pentadsPerMonth-1)*pentadLength
	}
	return pentadLength
}

// Add returns the pentad n pentads after p, or before p if n is negative.
func (p Pentad) Add(n int) Pentad {
	year, month, index := fromOrdinal(ordinal(p.year, p.month, p.index, pentadsPerMonth)+n, pentadsPerMonth)
	return Pentad{year: year, month: month, index: index}
}

// Sub returns the signed number of pentads from o to p, so that
// o.Add(p.Sub(o)) == p.
func (p Pentad) Sub(o Pentad) int {
	return ordinal(p.year, p.month, p.index, pentadsPerMonth) - ordinal(o.year, o.month, o.index, pentadsPerMonth)
}

// Before returns true if p is earlier than o.
func (p Pentad) Before(o Pentad) bool { return p.Sub(o) < 0 }

// After returns true if p is later than o.
func (p Pentad) After(o Pentad) bool { return p.Sub(o) > 0 }

func (p Pentad) String() string {
	return fmt.Sprintf("%04d P%d", p.year, p.OfYear())
}

// Parse initializes p from val, which may be either the form returned by
// String, eg. '2022 P14', or a date in the form '2022-02-14' which is
// classified into the pentad containing it.
func (p *Pentad) Parse(val string) error {
	if year, n, ok := parsePeriodOfYear(val, 'P'); ok {
		np, err := PentadOfYear(year, n)
		if err != nil {
			return err
		}
		*p = np
		return nil
	}
	when, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return fmt.Errorf("invalid pentad %q, expected '2006 P1' or '2006-01-02'", val)
	}
	*p = PentadFromTime(when)
	return nil
}
