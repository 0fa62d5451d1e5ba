package schedule

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"scheduleView/internal/models"
)

// GroupedIndex buckets entries by date, then by location.
// Dates and locations keep first-seen order; callers that need the
// rendering order use SortedLocations.
type GroupedIndex struct {
	dates  []string
	byDate map[string]*dateBucket
}

type dateBucket struct {
	locations []string
	entries   map[string][]models.Entry
}

// Group folds records into a fresh GroupedIndex.
func Group(records []models.EventRecord) *GroupedIndex {
	g := &GroupedIndex{
		byDate: make(map[string]*dateBucket),
	}

	for _, rec := range records {
		b, ok := g.byDate[rec.Date]
		if !ok {
			b = &dateBucket{entries: make(map[string][]models.Entry)}
			g.byDate[rec.Date] = b
			g.dates = append(g.dates, rec.Date)
		}

		if _, ok := b.entries[rec.Location]; !ok {
			b.locations = append(b.locations, rec.Location)
		}

		b.entries[rec.Location] = append(b.entries[rec.Location], models.Entry{
			Name:     rec.Name,
			Time:     rec.Time,
			Capacity: CapacityNumerator(rec.Capacity),
		})
	}

	return g
}

func (g *GroupedIndex) Dates() []string {
	return append([]string(nil), g.dates...)
}

// Locations returns the locations of date in first-seen order.
func (g *GroupedIndex) Locations(date string) []string {
	b, ok := g.byDate[date]
	if !ok {
		return nil
	}
	return append([]string(nil), b.locations...)
}

// SortedLocations returns the locations of date in ascending order.
func (g *GroupedIndex) SortedLocations(date string) []string {
	locs := g.Locations(date)
	sort.Strings(locs)
	return locs
}

func (g *GroupedIndex) Entries(date, location string) []models.Entry {
	b, ok := g.byDate[date]
	if !ok {
		return nil
	}
	return b.entries[location]
}

// MarshalYAML keeps date and location order in the encoded document.
func (g *GroupedIndex) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, date := range g.dates {
		locs := &yaml.Node{Kind: yaml.MappingNode}
		for _, loc := range g.byDate[date].locations {
			var entries yaml.Node
			if err := entries.Encode(g.byDate[date].entries[loc]); err != nil {
				return nil, err
			}
			locs.Content = append(locs.Content, scalar(loc), &entries)
		}
		root.Content = append(root.Content, scalar(date), locs)
	}

	return root, nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// CapacityNumerator returns the part of a "current / max" string before
// the separator.
func CapacityNumerator(capacity string) string {
	current, _, _ := strings.Cut(capacity, " / ")
	return current
}
