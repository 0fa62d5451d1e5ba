package source

import (
	"context"
	"fmt"
	"os"

	"scheduleView/internal/schedule"
)

// File reads the listing table from a saved HTML page.
type File struct {
	path     string
	selector string
}

func NewFile(path, selector string) *File {
	return &File{path: path, selector: selector}
}

func (f *File) Fetch(_ context.Context) (schedule.Table, error) {
	const op = "source.File.Fetch"

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer file.Close()

	return ParseHTMLTable(file, f.selector)
}
