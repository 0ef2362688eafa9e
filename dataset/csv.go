package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FromCSV decodes flat numeric CSV rows into Samples: one vector per
// record, every record the same length. Peripheral glue for feeding
// exported datasets into a trainer; the decoded set still needs Rescale
// if the file holds normalized data.
// Returns ErrEmptySamples for an input with no records,
// ErrDimensionMismatch for ragged records, and a wrapped parse error
// naming the offending record and column otherwise.
// Complexity: O(S×D).
func FromCSV(r io.Reader) (Samples, error) {
	cr := csv.NewReader(r)
	// Record lengths are validated here against the first row; disable the
	// reader's own check so ragged rows surface as our sentinel.
	cr.FieldsPerRecord = -1

	var out Samples
	for rec := 0; ; rec++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: reading record %d: %w", rec, err)
		}
		if len(out) > 0 && len(record) != len(out[0]) {
			return nil, ErrDimensionMismatch
		}
		row := make([]float64, len(record))
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: record %d, column %d: %w", rec, col, err)
			}
			row[col] = v
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, ErrEmptySamples
	}

	return out, nil
}
