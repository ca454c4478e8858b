package models

import (
	"fmt"
	"slices"
)

// QuarterCalendar maps a quarter number to its calendar months.
// Values are immutable once built.
type QuarterCalendar struct {
	months map[int][]int
}

// DefaultQuarterCalendar is Q1={1,2,3} .. Q4={10,11,12}.
var DefaultQuarterCalendar = MustQuarterCalendar(map[int][]int{
	1: {1, 2, 3},
	2: {4, 5, 6},
	3: {7, 8, 9},
	4: {10, 11, 12},
})

func NewQuarterCalendar(quarters map[int][]int) (QuarterCalendar, error) {
	months := make(map[int][]int, len(quarters))
	for q, ms := range quarters {
		if len(ms) == 0 {
			return QuarterCalendar{}, fmt.Errorf("quarter %d has no months", q)
		}
		for _, m := range ms {
			if m < 1 || m > 12 {
				return QuarterCalendar{}, fmt.Errorf("quarter %d: invalid month %d", q, m)
			}
		}
		months[q] = slices.Clone(ms)
	}
	return QuarterCalendar{months: months}, nil
}

func MustQuarterCalendar(quarters map[int][]int) QuarterCalendar {
	c, err := NewQuarterCalendar(quarters)
	if err != nil {
		panic(err)
	}
	return c
}

func (c QuarterCalendar) Has(quarter int) bool {
	_, ok := c.months[quarter]
	return ok
}

// Contains reports whether month belongs to quarter. Unknown quarters contain nothing.
func (c QuarterCalendar) Contains(quarter, month int) bool {
	return slices.Contains(c.months[quarter], month)
}

func (c QuarterCalendar) Months(quarter int) []int {
	return slices.Clone(c.months[quarter])
}
