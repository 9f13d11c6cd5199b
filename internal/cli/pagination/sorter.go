package pagination

import (
	"sort"

	"github.com/rvickers/renderlab/internal/bench"
)

// RecordSorter sorts benchmark render records by a named field.
type RecordSorter struct {
	validFields map[string]bool
}

// NewRecordSorter creates a RecordSorter with the valid sort fields.
func NewRecordSorter() *RecordSorter {
	return &RecordSorter{
		validFields: map[string]bool{
			"render":  true,
			"offset":  true,
			"start":   true,
			"end":     true,
			"mounted": true,
			"elapsed": true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *RecordSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// ValidFields returns all valid sort fields in a consistent order.
func (s *RecordSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts records by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *RecordSorter) Sort(records []bench.RenderRecord, field, order string) []bench.RenderRecord {
	if !s.IsValidField(field) {
		return records
	}

	sorted := make([]bench.RenderRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swap i and j for descending order so stability is preserved.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "render":
			return sorted[i].Render < sorted[j].Render
		case "offset":
			return sorted[i].Offset < sorted[j].Offset
		case "start":
			return sorted[i].StartIndex < sorted[j].StartIndex
		case "end":
			return sorted[i].EndIndex < sorted[j].EndIndex
		case "mounted":
			return sorted[i].Mounted < sorted[j].Mounted
		case "elapsed":
			return sorted[i].Elapsed < sorted[j].Elapsed
		default:
			return false
		}
	})

	return sorted
}

// Apply slices records according to the pagination parameters. For page-based
// pagination, an offset past the end is capped to the last available page; for
// offset-based pagination it yields an empty result.
func Apply(params Params, records []bench.RenderRecord) []bench.RenderRecord {
	if len(records) == 0 {
		return records
	}

	offset, limit := params.EffectiveOffsetLimit()

	if params.IsPageBased() && offset >= len(records) {
		pageSize := params.PageSize
		if pageSize <= 0 {
			pageSize = len(records)
		}
		offset = ((len(records) - 1) / pageSize) * pageSize
	}

	if offset >= len(records) {
		return []bench.RenderRecord{}
	}

	end := offset + limit
	if limit == 0 || end > len(records) {
		end = len(records)
	}

	return records[offset:end]
}
