package models

// EventRecord is one scraped listing row. Missing cells are empty strings.
type EventRecord struct {
	Time     string `json:"time" yaml:"time"`
	Date     string `json:"date" yaml:"date"`
	Location string `json:"location" yaml:"location"`
	Name     string `json:"name" yaml:"name"`
	Capacity string `json:"capacity" yaml:"capacity"`
}

// Entry is an EventRecord placed in a date/location bucket.
// Capacity holds only the numerator of the "current / max" pair.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Time     string `json:"time" yaml:"time"`
	Capacity string `json:"capacity" yaml:"capacity"`
}
