// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package kalendar provides support for working with the fixed multi-day
// reporting periods used for climatology data: dekads, of which each month
// has three (days 1-10, 11-20 and 21 through the end of the month), and
// pentads, of which each month has six (days 1-5, 6-10, 11-15, 16-20,
// 21-25 and 26 through the end of the month). The final period of each
// month absorbs any remaining days. Both period types support conversion
// to and from calendar dates and addition and subtraction of whole periods
// with carry across month and year boundaries.
package kalendar

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidMonth is returned when a month is outside the range 1-12.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidIndex is returned when a period index is out of range for
	// its period type.
	ErrInvalidIndex = errors.New("invalid period index")
)

// periodOfDay returns the 1-based index of the period containing the given
// day of the month. The final index absorbs days beyond an exact multiple
// of the period length.
func periodOfDay(day, length, perMonth int) int {
	return min((day-1)/length, perMonth-1) + 1
}

// ordinal encodes (year, month, index) as a zero-based count of periods so
// that addition and subtraction carry across month and year boundaries
// uniformly, December included.
func ordinal(year int, month time.Month, index, perMonth int) int {
	return (year*12+int(month)-1)*perMonth + index - 1
}

func fromOrdinal(ord, perMonth int) (year int, month time.Month, index int) {
	perYear := 12 * perMonth
	year = ord / perYear
	rem := ord % perYear
	if rem < 0 {
		year--
		rem += perYear
	}
	return year, time.Month(rem/perMonth + 1), rem%perMonth + 1
}

// parsePeriodOfYear parses values of the form '2022 D5', returning the
// year and the number following the designator.
func parsePeriodOfYear(val string, designator byte) (year, n int, ok bool) {
	yr, pr, found := strings.Cut(val, " ")
	if !found || len(pr) < 2 || pr[0] != designator {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yr)
	if err != nil {
		return 0, 0, false
	}
	n, err = strconv.Atoi(pr[1:])
	if err != nil {
		return 0, 0, false
	}
	return year, n, true
}
