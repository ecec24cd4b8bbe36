package curriculum

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// metadata labels recognized in the preamble section, lowercased.
// "insitution" appears because of a common typo in the plan database.
var metaLabels = map[string]string{
	"curriculum":  "curriculum",
	"institution": "institution",
	"insitution":  "institution",
	"degree type": "degree type",
	"year":        "year",
	"system type": "system type",
	"cip":         "cip",
}

// sourceFile is the tokenized form of one curriculum CSV: the metadata
// key/values, the course header row, and the data rows that follow it.
type sourceFile struct {
	meta   map[string]string
	header []string
	cols   map[string]int
	rows   [][]string
}

// readSource splits a curriculum CSV into its metadata and course sections.
// Fields are trimmed of whitespace, BOMs, and zero-width characters; quoted
// cells (with doubled-quote escapes) are handled by the csv reader.
func readSource(r io.Reader) (*sourceFile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	for _, rec := range records {
		for i, f := range rec {
			rec[i] = cleanField(f)
		}
	}

	src := &sourceFile{meta: make(map[string]string)}

	coursesAt := -1
	for i, rec := range records {
		if len(rec) > 0 && strings.EqualFold(rec[0], "courses") {
			coursesAt = i
			break
		}
		if len(rec) < 2 {
			continue
		}
		if label, ok := metaLabels[strings.ToLower(rec[0])]; ok {
			src.meta[label] = rec[1]
		}
	}
	if coursesAt < 0 {
		return nil, fmt.Errorf("%w: no Courses section marker", ErrMalformedCSV)
	}
	if coursesAt+1 >= len(records) {
		return nil, fmt.Errorf("%w: no course header row after Courses marker", ErrMalformedCSV)
	}

	src.header = records[coursesAt+1]
	src.cols = make(map[string]int, len(src.header))
	for i, h := range src.header {
		src.cols[strings.ToLower(h)] = i
	}
	for _, required := range []string{"Course ID", "Prefix", "Number"} {
		if _, ok := src.cols[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("%w: header missing %q column", ErrMalformedCSV, required)
		}
	}

	for _, rec := range records[coursesAt+2:] {
		if isEmptyRow(rec) {
			continue
		}
		src.rows = append(src.rows, rec)
	}

	return src, nil
}

// field returns the named column of a row, or "" when the column is absent
// from the header or the row is short.
func (f *sourceFile) field(row []string, name string) string {
	idx, ok := f.cols[strings.ToLower(name)]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cleanField(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\ufeff' || r == '\u200b'
	})
}

func isEmptyRow(rec []string) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}

// splitRelationship splits a semicolon-delimited relationship cell into its
// trimmed, non-empty tokens.
func splitRelationship(cell string) []string {
	var tokens []string
	for _, part := range strings.Split(cell, ";") {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
