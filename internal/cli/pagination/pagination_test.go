package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvickers/renderlab/internal/bench"
	"github.com/rvickers/renderlab/internal/cli/pagination"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  pagination.Params
		wantErr error
	}{
		{
			name:   "defaults are valid",
			params: *pagination.NewParams(),
		},
		{
			name:   "offset mode",
			params: pagination.Params{Limit: 50, Offset: 10, SortOrder: "asc"},
		},
		{
			name:   "page mode",
			params: pagination.Params{Page: 2, PageSize: 25, SortOrder: "desc"},
		},
		{
			name:    "limit too large",
			params:  pagination.Params{Limit: 20000, SortOrder: "asc"},
			wantErr: pagination.ErrInvalidLimit,
		},
		{
			name:    "negative offset",
			params:  pagination.Params{Limit: 10, Offset: -1, SortOrder: "asc"},
			wantErr: pagination.ErrInvalidOffset,
		},
		{
			name:    "mixed modes",
			params:  pagination.Params{Offset: 5, Page: 2, PageSize: 10, SortOrder: "asc"},
			wantErr: pagination.ErrMixedPaginationModes,
		},
		{
			name:    "page-size without page",
			params:  pagination.Params{PageSize: 10, SortOrder: "asc"},
			wantErr: pagination.ErrPageSizeWithoutPage,
		},
		{
			name:    "page without page-size",
			params:  pagination.Params{Page: 3, SortOrder: "asc"},
			wantErr: pagination.ErrPageWithoutPageSize,
		},
		{
			name:    "bad sort order",
			params:  pagination.Params{Limit: 10, SortOrder: "sideways"},
			wantErr: pagination.ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty uses defaults", input: "", wantField: "", wantOrder: "asc"},
		{name: "field only", input: "elapsed", wantField: "elapsed", wantOrder: "asc"},
		{name: "field and order", input: "mounted:desc", wantField: "mounted", wantOrder: "desc"},
		{name: "order is case-insensitive", input: "offset:DESC", wantField: "offset", wantOrder: "desc"},
		{name: "too many colons", input: "a:b:c", wantErr: pagination.ErrInvalidSortFormat},
		{name: "empty field", input: ":desc", wantErr: pagination.ErrEmptySortField},
		{name: "bad order", input: "elapsed:up", wantErr: pagination.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := pagination.ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestEffectiveOffsetLimit(t *testing.T) {
	offsetMode := pagination.Params{Limit: 30, Offset: 60}
	off, lim := offsetMode.EffectiveOffsetLimit()
	assert.Equal(t, 60, off)
	assert.Equal(t, 30, lim)

	pageMode := pagination.Params{Page: 3, PageSize: 25}
	off, lim = pageMode.EffectiveOffsetLimit()
	assert.Equal(t, 50, off)
	assert.Equal(t, 25, lim)
}

func TestTotalPages(t *testing.T) {
	pageMode := pagination.Params{Page: 1, PageSize: 25}
	assert.Equal(t, 4, pageMode.TotalPages(100))
	assert.Equal(t, 5, pageMode.TotalPages(101))
	assert.Equal(t, 0, pageMode.TotalPages(0))

	offsetMode := pagination.Params{Limit: 25}
	assert.Equal(t, 0, offsetMode.TotalPages(100))
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 2, PageSize: 10}, 35)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, 35, meta.TotalItems)
	assert.True(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)

	meta = pagination.NewMeta(pagination.Params{Offset: 20, Limit: 10}, 35)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 10, meta.PageSize)

	meta = pagination.NewMeta(pagination.Params{}, 7)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)
}

func sampleRecords() []bench.RenderRecord {
	return []bench.RenderRecord{
		{Render: 1, Offset: 0, StartIndex: 0, EndIndex: 12, Mounted: 12, Elapsed: 40 * time.Microsecond},
		{Render: 2, Offset: 600, StartIndex: 10, EndIndex: 22, Mounted: 12, Elapsed: 25 * time.Microsecond},
		{Render: 3, Offset: 1200, StartIndex: 20, EndIndex: 33, Mounted: 13, Elapsed: 55 * time.Microsecond},
		{Render: 4, Offset: 1800, StartIndex: 30, EndIndex: 42, Mounted: 12, Elapsed: 10 * time.Microsecond},
	}
}

func TestRecordSorter(t *testing.T) {
	sorter := pagination.NewRecordSorter()

	assert.True(t, sorter.IsValidField("elapsed"))
	assert.False(t, sorter.IsValidField("savings"))
	assert.Equal(t, []string{"elapsed", "end", "mounted", "offset", "render", "start"}, sorter.ValidFields())

	records := sampleRecords()
	sorted := sorter.Sort(records, "elapsed", pagination.SortOrderDesc)
	require.Len(t, sorted, 4)
	assert.Equal(t, 3, sorted[0].Render)
	assert.Equal(t, 4, sorted[3].Render)

	// Original order untouched.
	assert.Equal(t, 1, records[0].Render)

	// Invalid field passes through unchanged.
	same := sorter.Sort(records, "bogus", pagination.SortOrderAsc)
	assert.Equal(t, records, same)
}

func TestRecordSorterStability(t *testing.T) {
	sorter := pagination.NewRecordSorter()
	records := sampleRecords()
	records[2].Mounted = 12 // all equal now except none

	sorted := sorter.Sort(records, "mounted", pagination.SortOrderAsc)
	for i, rec := range sorted {
		assert.Equal(t, i+1, rec.Render, "equal keys must keep insertion order")
	}
}

func TestApply(t *testing.T) {
	records := sampleRecords()

	page2 := pagination.Apply(pagination.Params{Page: 2, PageSize: 2}, records)
	require.Len(t, page2, 2)
	assert.Equal(t, 3, page2[0].Render)

	// Page past the end caps to the last page.
	capped := pagination.Apply(pagination.Params{Page: 99, PageSize: 3}, records)
	require.Len(t, capped, 1)
	assert.Equal(t, 4, capped[0].Render)

	// Offset past the end yields empty.
	empty := pagination.Apply(pagination.Params{Offset: 10, Limit: 5}, records)
	assert.Empty(t, empty)

	// Zero limit means everything from the offset.
	rest := pagination.Apply(pagination.Params{Offset: 1}, records)
	assert.Len(t, rest, 3)
}
