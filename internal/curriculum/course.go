package curriculum

// Course is a single course row from a curriculum file. Relationship slices
// hold storage keys of other courses in the same plan, in the order they
// appeared in the source cell.
type Course struct {
	// CSVID is the per-file row identifier from the Course ID column. It is
	// also the token other rows use to reference this course.
	CSVID string

	Name          string
	Prefix        string
	Number        string
	CreditHours   float64
	CanonicalName string

	Prerequisites      []string
	Corequisites       []string
	StrictCorequisites []string
}

// NaturalKey returns the prefix+number key as written in the CSV, e.g.
// "CS2510". Natural keys are not unique within a plan; see StorageKey
// assignment in the loader.
func (c *Course) NaturalKey() string {
	return c.Prefix + c.Number
}

// AddPrerequisite records a prerequisite storage key, skipping duplicates.
func (c *Course) AddPrerequisite(key string) {
	if !containsKey(c.Prerequisites, key) {
		c.Prerequisites = append(c.Prerequisites, key)
	}
}

// AddCorequisite records a regular corequisite storage key, skipping duplicates.
func (c *Course) AddCorequisite(key string) {
	if !containsKey(c.Corequisites, key) {
		c.Corequisites = append(c.Corequisites, key)
	}
}

// AddStrictCorequisite records a strict corequisite storage key, skipping duplicates.
func (c *Course) AddStrictCorequisite(key string) {
	if !containsKey(c.StrictCorequisites, key) {
		c.StrictCorequisites = append(c.StrictCorequisites, key)
	}
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
