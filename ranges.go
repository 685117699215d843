// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kalendar

import (
	"fmt"
	"slices"
	"strings"
)

// DekadRange represents a range of dekads, inclusive of the from and to
// dekads. Use NewDekadRange or Parse to create or initialize a DekadRange.
type DekadRange struct {
	from, to Dekad
}

// NewDekadRange returns a DekadRange for the from/to dekads. If from is
// later than to then they are swapped.
func NewDekadRange(from, to Dekad) DekadRange {
	if to.Before(from) {
		from, to = to, from
	}
	return DekadRange{from: from, to: to}
}

// From returns the first dekad in the range.
func (dr DekadRange) From() Dekad { return dr.from }

// To returns the last dekad in the range.
func (dr DekadRange) To() Dekad { return dr.to }

// Num returns the number of dekads in the range.
func (dr DekadRange) Num() int { return dr.to.Sub(dr.from) + 1 }

// Include returns true if the given dekad is within the range.
func (dr DekadRange) Include(d Dekad) bool {
	return !d.Before(dr.from) && !d.After(dr.to)
}

// Dekads returns an iterator that yields each dekad in the range in order.
func (dr DekadRange) Dekads() func(yield func(Dekad) bool) {
	return func(yield func(Dekad) bool) {
		for d := dr.from; !d.After(dr.to); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (dr DekadRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}

// Parse a range in the format '<from>:<to>' where from and to are in
// either of the forms accepted by Dekad.Parse. The from dekad must not be
// later than the to dekad.
func (dr *DekadRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to Dekad
	if err := from.Parse(strings.TrimSpace(parts[0])); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(strings.TrimSpace(parts[1])); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	dr.from, dr.to = from, to
	return nil
}

// DekadRangeList represents a list of DekadRange values, it can be sorted
// and searched using the slices package.
type DekadRangeList []DekadRange

// Parse ranges in the format accepted by DekadRange.Parse. The parsed list
// is sorted and without duplicates. If the from dekads are identical then
// the to dekads determine the order.
func (drl *DekadRangeList) Parse(ranges []string) error {
	if len(ranges) == 0 {
		return nil
	}
	drs := make(DekadRangeList, 0, len(ranges))
	seen := map[DekadRange]struct{}{}
	for _, rg := range ranges {
		var dr DekadRange
		if err := dr.Parse(rg); err != nil {
			return err
		}
		if _, ok := seen[dr]; ok {
			continue
		}
		drs = append(drs, dr)
		seen[dr] = struct{}{}
	}
	slices.SortFunc(drs, func(a, b DekadRange) int {
		if c := a.from.Sub(b.from); c != 0 {
			return c
		}
		return a.to.Sub(b.to)
	})
	*drl = drs
	return nil
}

// Merge returns a new list with overlapping and adjacent ranges merged.
// The list is assumed to be sorted.
func (drl DekadRangeList) Merge() DekadRangeList {
	if len(drl) == 0 {
		return drl
	}
	merged := make(DekadRangeList, 0, len(drl))
	from, to := drl[0].from, drl[0].to
	for i := 1; i < len(drl); i++ {
		cur := drl[i]
		if cur.from.Sub(to) <= 1 {
			if cur.to.After(to) {
				to = cur.to
			}
			continue
		}
		merged = append(merged, DekadRange{from: from, to: to})
		from, to = cur.from, cur.to
	}
	return slices.Clip(append(merged, DekadRange{from: from, to: to}))
}

// PentadRange represents a range of pentads, inclusive of the from and to
// pentads. Use NewPentadRange or Parse to create or initialize a
// PentadRange.
type PentadRange struct {
	from, to Pentad
}

// NewPentadRange returns a PentadRange for the from/to pentads. If from is
// later than to then they are swapped.
func NewPentadRange(from, to Pentad) PentadRange {
	if to.Before(from) {
		from, to = to, from
	}
	return PentadRange{from: from, to: to}
}

// From returns the first pentad in the range.
func (pr PentadRange) From() Pentad { return pr.from }

// To returns the last pentad in the range.
func (pr PentadRange) To() Pentad { return pr.to }

// Num returns the number of pentads in the range.
func (pr PentadRange) Num() int { return pr.to.Sub(pr.from) + 1 }

// Include returns true if the given pentad is within the range.
func (pr PentadRange) Include(p Pentad) bool {
	return !p.Before(pr.from) && !p.After(pr.to)
}

// Pentads returns an iterator that yields each pentad in the range in order.
func (pr PentadRange) Pentads() func(yield func(Pentad) bool) {
	return func(yield func(Pentad) bool) {
		for p := pr.from; !p.After(pr.to); p = p.Add(1) {
			if !yield(p) {
				return
			}
		}
	}
}

func (pr PentadRange) String() string {
	return fmt.Sprintf("%s - %s", pr.from, pr.to)
}

// Parse a range in the format '<from>:<to>' where from and to are in
// either of the forms accepted by Pentad.Parse. The from pentad must not
// be later than the to pentad.
func (pr *PentadRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to Pentad
	if err := from.Parse(strings.TrimSpace(parts[0])); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(strings.TrimSpace(parts[1])); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	pr.from, pr.to = from, to
	return nil
}

// PentadRangeList represents a list of PentadRange values, it can be
// sorted and searched using the slices package.
type PentadRangeList []PentadRange

// Parse ranges in the format accepted by PentadRange.Parse. The parsed
// list is sorted and without duplicates. If the from pentads are identical
// then the to pentads determine the order.
func (prl *PentadRangeList) Parse(ranges []string) error {
	if len(ranges) == 0 {
		return nil
	}
	prs := make(PentadRangeList, 0, len(ranges))
	seen := map[PentadRange]struct{}{}
	for _, rg := range ranges {
		var pr PentadRange
		if err := pr.Parse(rg); err != nil {
			return err
		}
		if _, ok := seen[pr]; ok {
			continue
		}
		prs = append(prs, pr)
		seen[pr] = struct{}{}
	}
	slices.SortFunc(prs, func(a, b PentadRange) int {
		if c := a.from.Sub(b.from); c != 0 {
			return c
		}
		return a.to.Sub(b.to)
	})
	*prl = prs
	return nil
}

// Merge returns a new list with overlapping and adjacent ranges merged.
// The list is assumed to be sorted.
func (prl PentadRangeList) Merge() PentadRangeList {
	if len(prl) == 0 {
		return prl
	}
	merged := make(PentadRangeList, 0, len(prl))
	from, to := prl[0].from, prl[0].to
	for i := 1; i < len(prl); i++ {
		cur := prl[i]
		if cur.from.Sub(to) <= 1 {
			if cur.to.After(to) {
				to = cur.to
			}
			continue
		}
		merged = append(merged, PentadRange{from: from, to: to})
		from, to = cur.from, cur.to
	}
	return slices.Clip(append(merged, PentadRange{from: from, to: to}))
}
