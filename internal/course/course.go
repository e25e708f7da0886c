package course

import "fmt"

// Course is one offered section (분반) of a subject. Several sections of the
// same subject share code/name/department but differ in SectionNumber
// and meeting times.
type Course struct {
	ID         string `json:"id"`
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Professor  string `json:"professor"`
	Credits    int    `json:"credits"`
	Department string `json:"department"`
	// 0 = all grades (전학년), otherwise 1-4
	GradeLevel      int     `json:"gradeLevel"`
	MaxStudents     int     `json:"maxStudents"`
	CurrentStudents *int    `json:"currentStudents,omitempty"`
	Semester        string  `json:"semester"`
	Year            int     `json:"year"`
	SectionNumber   string  `json:"sectionNumber"`
	Notes           *string `json:"notes,omitempty"`
}

// TimeSlot is one contiguous weekly meeting of a course on one weekday.
type TimeSlot struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	// 1=월 ... 6=토
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"` // "09:00"
	EndTime   string  `json:"endTime"`   // "10:50"
	Room      *string `json:"room,omitempty"`
}

// SearchFilters is an ephemeral query object. A nil/empty dimension
// means "do not filter on this dimension".
type SearchFilters struct {
	Department []string
	GradeLevel []int
	Credits    []int
	// "HH:MM-HH:MM" buckets matched against a course's slots
	TimeSlots []string
	Days      []int
	Professor string
}

// SearchResult pairs a matching course with its full set of time slots.
type SearchResult struct {
	Course Course
	Slots  []TimeSlot
}

type ConflictType string

const (
	ConflictTimeOverlap     ConflictType = "TIME_OVERLAP"
	ConflictDuplicateCourse ConflictType = "DUPLICATE_COURSE"
	ConflictRoom            ConflictType = "ROOM_CONFLICT"
)

type ConflictSeverity string

const (
	SeverityError   ConflictSeverity = "ERROR"
	SeverityWarning ConflictSeverity = "WARNING"
	SeverityInfo    ConflictSeverity = "INFO"
)

// ScheduleConflict describes two selected courses colliding on the
// weekly grid, or a duplicate selection of the same subject.
type ScheduleConflict struct {
	Type               ConflictType
	Severity           ConflictSeverity
	ConflictingCourses []Course
	TimeSlot           *TimeSlot
	Message            string
}

// Catalog holds the parsed collections of one term. It is built once
// per load and read-only afterwards.
type Catalog struct {
	Semester string
	Year     int
	Courses  []Course
	Slots    []TimeSlot

	byID  map[string]int
	byCrs map[string][]int
}

func NewCatalog(semester string, year int, courses []Course, slots []TimeSlot) *Catalog {
	c := &Catalog{
		Semester: semester,
		Year:     year,
		Courses:  courses,
		Slots:    slots,
		byID:     make(map[string]int, len(courses)),
		byCrs:    make(map[string][]int, len(courses)),
	}
	for i, crs := range courses {
		c.byID[crs.ID] = i
	}
	for i, s := range slots {
		c.byCrs[s.CourseID] = append(c.byCrs[s.CourseID], i)
	}
	return c
}

// ByID returns the course with the given identifier, if present.
func (c *Catalog) ByID(id string) (Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, false
	}
	return c.Courses[i], true
}

// SlotsFor returns the time slots owned by the given course, in the
// order they were parsed.
func (c *Catalog) SlotsFor(courseID string) []TimeSlot {
	idx := c.byCrs[courseID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]TimeSlot, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.Slots[i])
	}
	return out
}

// CourseID derives the stable identifier of a section. Re-parsing the
// same export yields the same identifier.
func CourseID(code, section, semester string, year int) string {
	return fmt.Sprintf("%s-%s-%s-%d", code, section, semester, year)
}

// SlotID derives the identifier of the i-th slot of a course on a day.
func SlotID(courseID string, day, ordinal int) string {
	return fmt.Sprintf("%s-%d-%d", courseID, day, ordinal)
}
