// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kalendar_test

import (
	"time"

	"cloudeng.io/kalendar"
)

func newDekad(year int, month, index int) kalendar.Dekad {
	d, err := kalendar.NewDekad(year, time.Month(month), index)
	if err != nil {
		panic(err)
	}
	return d
}

func newPentad(year int, month, index int) kalendar.Pentad {
	p, err := kalendar.NewPentad(year, time.Month(month), index)
	if err != nil {
		panic(err)
	}
	return p
}

func newDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newDekadRange(from, to kalendar.Dekad) kalendar.DekadRange {
	return kalendar.NewDekadRange(from, to)
}

func newPentadRange(from, to kalendar.Pentad) kalendar.PentadRange {
	return kalendar.NewPentadRange(from, to)
}
