package notes

// Reference names the template definition to resolve and, optionally, a
// specific variant. An empty Variant lets course-type matching pick one.
type Reference struct {
	Name    string
	Variant string
}

// NewReference builds a reference to a template definition by name.
func NewReference(name string) Reference {
	return Reference{Name: name}
}

// WithVariant returns a copy of the reference pinned to a named variant.
func (r Reference) WithVariant(variant string) Reference {
	r.Variant = variant
	return r
}

// Convenience constructors for the stock document kinds.

// LectureReference references the lecture note template.
func LectureReference() Reference {
	return NewReference("note")
}

// AssignmentReference references the assignment template.
func AssignmentReference() Reference {
	return NewReference("assignment")
}

// LabReportReference references the lab report template.
func LabReportReference() Reference {
	return NewReference("lab-report")
}

// ThesisReference references the thesis template.
func ThesisReference() Reference {
	return NewReference("thesis")
}
