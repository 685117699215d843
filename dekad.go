// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kalendar

import (
	"fmt"
	"time"
)

const (
	dekadsPerMonth = 3
	dekadsPerYear  = 12 * dekadsPerMonth
	dekadLength    = 10
)

// Dekad represents one of the three 10-day reporting periods within a
// month: days 1-10, 11-20 and 21 through the end of the month, the third
// absorbing any days beyond 30. Dekads of the same value compare equal
// with ==. The zero value is not a valid dekad; use NewDekad, DekadOfYear,
// DekadFromTime or Parse.
type Dekad struct {
	year  int
	month time.Month
	index int
}

// NewDekad returns the dekad for the given year, month and index within
// the month in the range 1-3.
func NewDekad(year int, month time.Month, index int) (Dekad, error) {
	if month < time.January || month > time.December {
		return Dekad{}, fmt.Errorf("month %d is not in the range 1-12: %w", month, ErrInvalidMonth)
	}
	if index < 1 || index > dekadsPerMonth {
		return Dekad{}, fmt.Errorf("dekad %d is not in the range 1-%d: %w", index, dekadsPerMonth, ErrInvalidIndex)
	}
	return Dekad{year: year, month: month, index: index}, nil
}

// DekadOfYear returns the dekad for the given year and yearly dekad number
// in the range 1-36, where dekad 1 starts on Jan 1 and dekad 36 on Dec 21.
func DekadOfYear(year, n int) (Dekad, error) {
	if n < 1 || n > dekadsPerYear {
		return Dekad{}, fmt.Errorf("dekad %d is not in the range 1-%d: %w", n, dekadsPerYear, ErrInvalidIndex)
	}
	return Dekad{year: year, month: time.Month((n-1)/dekadsPerMonth + 1), index: (n-1)%dekadsPerMonth + 1}, nil
}

// DekadFromTime returns the dekad containing the given time.
func DekadFromTime(t time.Time) Dekad {
	return Dekad{year: t.Year(), month: t.Month(), index: periodOfDay(t.Day(), dekadLength, dekadsPerMonth)}
}

// Year returns the dekad's year.
func (d Dekad) Year() int { return d.year }

// Month returns the dekad's month.
func (d Dekad) Month() time.Month { return d.month }

// Index returns the dekad within its month, 1-3.
func (d Dekad) Index() int { return d.index }

// OfYear returns the dekad within its year, 1-36.
func (d Dekad) OfYear() int { return (int(d.month)-1)*dekadsPerMonth + d.index }

// StartDate returns midnight UTC on the first day of the dekad.
func (d Dekad) StartDate() time.Time {
	return time.Date(d.year, d.month, (d.index-1)*dekadLength+1, 0, 0, 0, 0, time.UTC)
}

// EndDate returns midnight UTC on the last day of the dekad. The third
// dekad of a month ends on the last day of that month.
func (d Dekad) EndDate() time.Time {
	if d.index == dekadsPerMonth {
		return time.Date(d.year, d.month, DaysInMonth(d.year, d.month), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(d.year, d.month, d.index*dekadLength, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days the dekad covers: 10 for the first two
// dekads of a month and 8 to 11 for the third.
func (d Dekad) Days() int {
	if d.index == dekadsPerMonth {
		return DaysInMonth(d.year, d.month) - (dekadsPerMonth-1)*dekadLength
	}
	return dekadLength
}

// Add returns the dekad n dekads after d, or before d if n is negative.
func (d Dekad) Add(n int) Dekad {
	year, month, index := fromOrdinal(ordinal(d.year, d.month, d.index, dekadsPerMonth)+n, dekadsPerMonth)
	return Dekad{year: year, month: month, index: index}
}

// Sub returns the signed number of dekads from o to d, so that
// o.Add(d.Sub(o)) == d.
func (d Dekad) Sub(o Dekad) int {
	return ordinal(d.year, d.month, d.index, dekadsPerMonth) - ordinal(o.year, o.month, o.index, dekadsPerMonth)
}

// Before returns true if d is earlier than o.
func (d Dekad) Before(o Dekad) bool { return d.Sub(o) < 0 }

// After returns true if d is later than o.
func (d Dekad) After(o Dekad) bool { return d.Sub(o) > 0 }

func (d Dekad) String() string {
	return fmt.Sprintf("%04d D%d", d.year, d.OfYear())
}

// Parse initializes d from val, which may be either the form returned by
// String, eg. '2022 D5', or a date in the form '2022-02-14' which is
// classified into the dekad containing it.
func (d *Dekad) Parse(val string) error {
	if year, n, ok := parsePeriodOfYear(val, 'D'); ok {
		nd, err := DekadOfYear(year, n)
		if err != nil {
			return err
		}
		*d = nd
		return nil
	}
	when, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return fmt.Errorf("invalid dekad %q, expected '2006 D1' or '2006-01-02'", val)
	}
	*d = DekadFromTime(when)
	return nil
}
