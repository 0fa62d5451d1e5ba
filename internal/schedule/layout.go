package schedule

import (
	"fmt"
	"sort"

	"scheduleView/internal/models"
)

// The rendered window covers half-hour slots starting at 7:00 through the
// slot starting at 20:00.
const (
	FirstSlot = 14
	LastSlot  = 40
	SlotCount = LastSlot - FirstSlot + 1
)

// cancelledCapacity marks an entry that is left out of the grid.
const cancelledCapacity = "0"

// Span is one event cell covering Length slots from Start, relative to the
// window.
type Span struct {
	Start  int
	Length int
	Label  string
	Color  string
}

func (s Span) End() int {
	return s.Start + s.Length
}

func (s Span) overlaps(o Span) bool {
	return s.Start < o.End() && o.Start < s.End()
}

// Row is the sparse list of spans for one location, ordered by Start.
type Row struct {
	Location string
	Spans    []Span
}

// Place inserts s. Spans already in the row give up the slots they share
// with s and keep the rest, split in two if s lands inside them. The lost
// parts are returned, so the most recently placed event owns its slots.
func (r *Row) Place(s Span) []Span {
	var lost []Span
	kept := make([]Span, 0, len(r.Spans)+2)
	for _, existing := range r.Spans {
		if !existing.overlaps(s) {
			kept = append(kept, existing)
			continue
		}

		if existing.Start < s.Start {
			kept = append(kept, existing.slice(existing.Start, s.Start))
		}
		if existing.End() > s.End() {
			kept = append(kept, existing.slice(s.End(), existing.End()))
		}
		lost = append(lost, existing.slice(max(existing.Start, s.Start), min(existing.End(), s.End())))
	}

	kept = append(kept, s)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	r.Spans = kept

	return lost
}

// slice returns the part of s covering [from, to).
func (s Span) slice(from, to int) Span {
	s.Start = from
	s.Length = to - from
	return s
}

// Cell is one rendered grid cell: either a span or a single empty slot.
type Cell struct {
	Span  *Span
	Empty bool
}

// Cells walks the row left to right, filling gaps with empty cells.
func (r *Row) Cells() []Cell {
	cells := make([]Cell, 0, SlotCount)
	pos := 0
	for i := range r.Spans {
		s := &r.Spans[i]
		for ; pos < s.Start; pos++ {
			cells = append(cells, Cell{Empty: true})
		}
		cells = append(cells, Cell{Span: s})
		pos = s.End()
	}
	for ; pos < SlotCount; pos++ {
		cells = append(cells, Cell{Empty: true})
	}
	return cells
}

type DateSection struct {
	Date string
	Rows []Row
}

// Skipped records an entry that could not be laid out.
type Skipped struct {
	Date     string
	Location string
	Entry    models.Entry
	Err      error
}

// Overwrite records a span that lost its slots to a later event.
type Overwrite struct {
	Date     string
	Location string
	Lost     Span
	By       Span
}

type Layout struct {
	Sections   []DateSection
	Skipped    []Skipped
	Overwrites []Overwrite
}

// BuildLayout lays out every date of idx. Dates keep first-seen order and
// locations are sorted; entries are placed in bucket order.
func BuildLayout(idx *GroupedIndex, colors ColorAssignment) *Layout {
	l := &Layout{}

	for _, date := range idx.Dates() {
		section := DateSection{Date: date}

		for _, loc := range idx.SortedLocations(date) {
			row := Row{Location: loc}

			for _, e := range idx.Entries(date, loc) {
				if e.Capacity == cancelledCapacity {
					continue
				}

				span, ok, err := spanFor(e, colors)
				if err != nil {
					l.Skipped = append(l.Skipped, Skipped{Date: date, Location: loc, Entry: e, Err: err})
					continue
				}
				if !ok {
					continue
				}

				for _, lost := range row.Place(span) {
					l.Overwrites = append(l.Overwrites, Overwrite{Date: date, Location: loc, Lost: lost, By: span})
				}
			}

			section.Rows = append(section.Rows, row)
		}

		l.Sections = append(l.Sections, section)
	}

	return l
}

// spanFor converts e into a window-relative span. ok is false when the
// event falls entirely outside the window or has no duration.
func spanFor(e models.Entry, colors ColorAssignment) (Span, bool, error) {
	start, end, err := ParseRange(e.Time)
	if err != nil {
		return Span{}, false, err
	}

	from := max(start.Slot()-FirstSlot, 0)
	to := min(end.Slot()-FirstSlot, SlotCount)
	if to <= from {
		return Span{}, false, nil
	}

	return Span{
		Start:  from,
		Length: to - from,
		Label:  fmt.Sprintf("%s - %s", e.Name, e.Capacity),
		Color:  colors[e.Name],
	}, true, nil
}

// HeaderLabels returns the 12-hour labels for the window's slots; slots
// on the half hour are blank.
func HeaderLabels() []string {
	labels := make([]string, 0, SlotCount)
	for i := FirstSlot; i <= LastSlot; i++ {
		if i%2 != 0 {
			labels = append(labels, "")
			continue
		}
		hour := i / 2
		if hour > 12 {
			hour -= 12
		}
		labels = append(labels, fmt.Sprint(hour))
	}
	return labels
}
