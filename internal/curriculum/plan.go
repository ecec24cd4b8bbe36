package curriculum

// SystemType distinguishes semester and quarter academic calendars.
type SystemType string

const (
	Semester SystemType = "semester"
	Quarter  SystemType = "quarter"
)

// Plan is one curriculum file's worth of courses plus its metadata block.
// Keys preserves input order; it drives output row order and every
// deterministic tie-break downstream.
type Plan struct {
	Name        string
	Institution string
	DegreeType  string
	Year        string
	SystemType  SystemType
	CIPCode     string

	// Keys lists storage keys in input order.
	Keys []string

	// Header is the course header row as read, so the metrics CSV can
	// extend it rather than invent its own.
	Header []string

	courses map[string]*Course
}

// NewPlan returns an empty plan with the given name.
func NewPlan(name string) *Plan {
	return &Plan{
		Name:    name,
		courses: make(map[string]*Course),
	}
}

// AddCourse inserts a course under its storage key, appending the key to
// the input-order list. Returns false if the key is already taken.
func (p *Plan) AddCourse(storageKey string, c *Course) bool {
	if _, ok := p.courses[storageKey]; ok {
		return false
	}
	p.courses[storageKey] = c
	p.Keys = append(p.Keys, storageKey)
	return true
}

// Course looks up a course by storage key.
func (p *Plan) Course(storageKey string) (*Course, bool) {
	c, ok := p.courses[storageKey]
	return c, ok
}

// Len returns the number of courses in the plan.
func (p *Plan) Len() int {
	return len(p.Keys)
}

// InputIndex returns the position of a storage key in input order, or -1.
func (p *Plan) InputIndex(storageKey string) int {
	for i, k := range p.Keys {
		if k == storageKey {
			return i
		}
	}
	return -1
}

// IsQuarter reports whether the plan uses the quarter system.
func (p *Plan) IsQuarter() bool {
	return p.SystemType == Quarter
}

// TotalCredits sums credit hours across the plan.
func (p *Plan) TotalCredits() float64 {
	var total float64
	for _, k := range p.Keys {
		total += p.courses[k].CreditHours
	}
	return total
}
