package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleView/internal/config"
	"scheduleView/internal/lib/logger/handlers/slogdiscard"
	"scheduleView/internal/schedule"
	"scheduleView/internal/source/mocks"
)

func TestFileFetch(t *testing.T) {
	t.Parallel()

	table, err := NewFile("testdata/listings.html", "#tblSearchResults").Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows(), 4)

	_, err = NewFile("testdata/missing.html", "#tblSearchResults").Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPFetch(t *testing.T) {
	t.Parallel()

	page, err := os.ReadFile("testdata/listings.html")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}))
	defer srv.Close()

	table, err := NewHTTP(srv.URL+"/search", "#tblSearchResults", 5*time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows(), 4)

	_, err = NewHTTP(srv.URL+"/other", "#tblSearchResults", 5*time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestPostgresFetch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mockSetup func(m *mocks.RowsQuerier)
		check     func(t *testing.T, table schedule.Table, err error)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.RowsQuerier) {
				m.On("ListingRows", context.Background(), "SELECT 1").Return([][]string{
					{"a", "b", "name", "d", "date", "time", "location", "capacity"},
					{"", "", "Yoga", "", "Mon", "9:00 am - 10:00 am", "Studio", "3 / 9"},
				}, nil)
			},
			check: func(t *testing.T, table schedule.Table, err error) {
				require.NoError(t, err)
				records, err := schedule.Scrape(table)
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, "Yoga", records[0].Name)
				assert.Equal(t, "Studio", records[0].Location)
			},
		},
		{
			name: "Query error",
			mockSetup: func(m *mocks.RowsQuerier) {
				m.On("ListingRows", context.Background(), "SELECT 1").Return(nil, errors.New("database error"))
			},
			check: func(t *testing.T, table schedule.Table, err error) {
				require.Error(t, err)
				assert.Nil(t, table)
				assert.Contains(t, err.Error(), "database error")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewRowsQuerier(t)
			tc.mockSetup(m)

			table, err := NewPostgres(m, "SELECT 1").Fetch(context.Background())
			tc.check(t, table, err)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	log := slogdiscard.NewDiscardLogger()
	ctx := context.Background()

	src, closeFn, err := New(ctx, log, &config.Config{Source: config.Source{
		Kind:     config.SourceFile,
		Path:     "testdata/listings.html",
		Selector: "#tblSearchResults",
	}})
	require.NoError(t, err)
	assert.IsType(t, &File{}, src)
	assert.NoError(t, closeFn())

	src, _, err = New(ctx, log, &config.Config{Source: config.Source{Kind: config.SourceHTTP, URL: "http://localhost"}})
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, src)

	src, closeFn, err = New(ctx, log, &config.Config{Source: config.Source{
		Kind:     config.SourceBrowser,
		URL:      "http://localhost",
		Selector: "#tblSearchResults",
		Timeout:  time.Second,
	}})
	require.NoError(t, err)
	b, ok := src.(*Browser)
	require.True(t, ok)
	assert.Equal(t, "http://localhost", b.url)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
	assert.ErrorIs(t, b.allocCtx.Err(), context.Canceled)

	_, closeFn, err = New(ctx, log, &config.Config{Source: config.Source{Kind: "ftp"}})
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	assert.NotNil(t, closeFn)
}
