package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleView/internal/lib/logger/handlers/slogdiscard"
)

type stubFetcher struct {
	table Table
	err   error
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context) (Table, error) {
	f.calls++
	return f.table, f.err
}

func newTestSession(f *stubFetcher) *Session {
	log := slogdiscard.NewDiscardLogger()
	return NewSession(log, f, NewRenderer(log, nil))
}

func TestSessionInit(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{table: &TextTable{Cells: [][]string{
		header,
		listingRow("A", "Mon", "9:00 am - 10:00 am", "Room1", "5 / 10"),
	}}}
	s := newTestSession(f)

	assert.Equal(t, EmptyFragment, s.Fragment())
	require.NoError(t, s.Init(context.Background()))

	assert.Contains(t, s.Fragment(), "A - 5")
	assert.Len(t, s.TableRows(), 2)
	assert.Equal(t, ModeTable, s.Mode())
}

func TestSessionInitMissingTable(t *testing.T) {
	t.Parallel()

	s := newTestSession(&stubFetcher{})

	err := s.Init(context.Background())
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestSessionInitFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("connection refused")
	s := newTestSession(&stubFetcher{err: fetchErr})

	assert.ErrorIs(t, s.Init(context.Background()), fetchErr)
}

func TestSessionOnChangeOnlyInScheduleMode(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{table: &TextTable{Cells: [][]string{
		header,
		listingRow("A", "Mon", "9:00 am - 10:00 am", "Room1", "5 / 10"),
	}}}
	s := newTestSession(f)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	f.table = &TextTable{Cells: [][]string{
		header,
		listingRow("B", "Mon", "9:00 am - 10:00 am", "Room1", "2 / 10"),
	}}

	s.OnChange(ctx)
	assert.Equal(t, 1, f.calls)
	assert.Contains(t, s.Fragment(), "A - 5")

	mode, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ModeSchedule, mode)
	assert.Equal(t, 2, f.calls)
	assert.Contains(t, s.Fragment(), "B - 2")

	f.table = &TextTable{Cells: [][]string{header, {NoResultsMarker}}}
	s.OnChange(ctx)
	assert.Equal(t, 3, f.calls)
	assert.Equal(t, EmptyFragment, s.Fragment())
}

func TestSessionOnChangeKeepsFragmentOnError(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{table: &TextTable{Cells: [][]string{
		header,
		listingRow("A", "Mon", "9:00 am - 10:00 am", "Room1", "5 / 10"),
	}}}
	s := newTestSession(f)
	ctx := context.Background()

	_, err := s.Toggle(ctx)
	require.NoError(t, err)

	f.err = errors.New("timeout")
	s.OnChange(ctx)

	assert.Contains(t, s.Fragment(), "A - 5")
}

func TestSessionToggle(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{table: &TextTable{Cells: [][]string{header}}}
	s := newTestSession(f)
	ctx := context.Background()

	mode, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ModeSchedule, mode)
	assert.Equal(t, "Show Table", mode.Label())
	assert.Equal(t, "schedule", mode.String())

	mode, err = s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ModeTable, mode)
	assert.Equal(t, "Show Schedule", mode.Label())
	assert.Equal(t, "table", mode.String())
	assert.Equal(t, 1, f.calls)
}

func TestSessionToggleFailureStaysInTableMode(t *testing.T) {
	t.Parallel()

	s := newTestSession(&stubFetcher{err: errors.New("boom")})

	mode, err := s.Toggle(context.Background())
	require.Error(t, err)
	assert.Equal(t, ModeTable, mode)
	assert.Equal(t, ModeTable, s.Mode())
}
