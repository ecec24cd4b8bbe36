package curriculum

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadPlan reads one curriculum CSV and materializes its Plan.
//
// Loading is three passes over the course rows. Natural keys (prefix+number)
// collide in real files (elective placeholders, labs sharing a number), so
// storage keys are only assigned after a census of the whole file:
//
//  1. Census: tally natural keys and map each Course ID to its natural key.
//  2. Materialize: assign storage keys (natural key, suffixed with _<csv id>
//     on collision), build courses in input order.
//  3. Wire: resolve relationship tokens (Course IDs) through the csv id →
//     storage key map and attach them to each course.
func LoadPlan(r io.Reader) (*Plan, error) {
	src, err := readSource(r)
	if err != nil {
		return nil, err
	}

	plan := NewPlan(src.meta["curriculum"])
	plan.Institution = src.meta["institution"]
	plan.DegreeType = src.meta["degree type"]
	plan.Year = src.meta["year"]
	plan.CIPCode = src.meta["cip"]
	plan.SystemType = Semester
	if strings.Contains(strings.ToLower(src.meta["system type"]), "quarter") {
		plan.SystemType = Quarter
	}
	plan.Header = src.header

	// Pass 1: census of natural keys, keyed by Course ID.
	naturalKeyByID := make(map[string]string, len(src.rows))
	tally := make(map[string]int, len(src.rows))
	for _, row := range src.rows {
		csvID := src.field(row, "Course ID")
		if csvID == "" {
			return nil, fmt.Errorf("%w: row missing Course ID", ErrMalformedCSV)
		}
		if _, dup := naturalKeyByID[csvID]; dup {
			return nil, fmt.Errorf("%w: duplicate Course ID %q", ErrMalformedCSV, csvID)
		}
		naturalKey := src.field(row, "Prefix") + src.field(row, "Number")
		naturalKeyByID[csvID] = naturalKey
		tally[naturalKey]++
	}

	// Pass 2: materialize courses under collision-free storage keys.
	storageKeyByID := make(map[string]string, len(src.rows))
	for _, row := range src.rows {
		csvID := src.field(row, "Course ID")
		course, err := parseCourse(src, row)
		if err != nil {
			return nil, err
		}

		storageKey := course.NaturalKey()
		if tally[storageKey] > 1 {
			storageKey = storageKey + "_" + csvID
		}
		storageKeyByID[csvID] = storageKey
		plan.AddCourse(storageKey, course)
	}

	// Pass 3: wire relationships through the csv id → storage key map.
	for _, row := range src.rows {
		course, _ := plan.Course(storageKeyByID[src.field(row, "Course ID")])

		for _, token := range splitRelationship(src.field(row, "Prerequisites")) {
			key, ok := storageKeyByID[token]
			if !ok {
				return nil, fmt.Errorf("%w: prerequisite %q of course %q", ErrUnknownReference, token, course.CSVID)
			}
			course.AddPrerequisite(key)
		}
		for _, token := range splitRelationship(src.field(row, "Corequisites")) {
			key, ok := storageKeyByID[token]
			if !ok {
				return nil, fmt.Errorf("%w: corequisite %q of course %q", ErrUnknownReference, token, course.CSVID)
			}
			course.AddCorequisite(key)
		}
		for _, token := range splitRelationship(src.field(row, "Strict-Corequisites")) {
			key, ok := storageKeyByID[token]
			if !ok {
				return nil, fmt.Errorf("%w: strict-corequisite %q of course %q", ErrUnknownReference, token, course.CSVID)
			}
			course.AddStrictCorequisite(key)
		}
	}

	return plan, nil
}

func parseCourse(src *sourceFile, row []string) (*Course, error) {
	csvID := src.field(row, "Course ID")
	prefix := src.field(row, "Prefix")
	number := src.field(row, "Number")
	if prefix == "" && number == "" {
		return nil, fmt.Errorf("%w: course %q missing prefix and number", ErrMalformedCSV, csvID)
	}

	credits := 0.0
	if cell := src.field(row, "Credit Hours"); cell != "" {
		parsed, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: course %q has unparseable credit hours %q", ErrMalformedCSV, csvID, cell)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("%w: course %q has negative credit hours", ErrMalformedCSV, csvID)
		}
		credits = parsed
	}

	return &Course{
		CSVID:         csvID,
		Name:          src.field(row, "Course Name"),
		Prefix:        prefix,
		Number:        number,
		CreditHours:   credits,
		CanonicalName: src.field(row, "Canonical Name"),
	}, nil
}
