package templet

// InvalidTagError reports a structural defect in a tag: malformed
// delimiters, bad path or alias syntax, a non-integer or negative array
// index, indexing a non-list, dotting into a non-map, printing a list or
// map, an alias collision, or an unrecognized keyword. It always aborts
// the render that raised it.
type InvalidTagError struct {
	Reason string
}

func (e *InvalidTagError) Error() string { return "invalid tag: " + e.Reason }

// MissingTagError reports that a name which must be present did not
// resolve, such as the source list of a for loop. Absent names reached
// through a substitution or condition are soft misses and never surface
// as this error.
type MissingTagError struct {
	Name string
}

func (e *MissingTagError) Error() string { return "tag name not found: " + e.Name }

// ExpressionSyntaxError reports a malformed block expression, such as a
// for clause with the wrong word count or keywords.
type ExpressionSyntaxError struct {
	Reason string
}

func (e *ExpressionSyntaxError) Error() string { return "expression syntax error: " + e.Reason }
