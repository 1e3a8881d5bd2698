package proteomics

import "fmt"

// ParseError is a malformed sequence or annotation: an unknown residue
// letter, an unterminated modification bracket, or modification text
// that resolves to neither a registered name, a chemical formula nor a
// numeric mass.
type ParseError struct {
	Token  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing sequence at index %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("parsing sequence at index %d: %s %q", e.Offset, e.Reason, e.Token)
}

// RangeError is a numeric precondition violation: a residue number
// outside the polymer, a fragment range outside [1, Length-1], or a
// negative missed-cleavage bound. A negative Max below Min means the
// bound is one sided; a non-negative Max below Min means the window
// itself is empty (eg addressing a residue of an empty polymer).
type RangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	switch {
	case e.Max < e.Min && e.Max < 0:
		return fmt.Sprintf("%s was %d, must be at least %d", e.What, e.Value, e.Min)
	case e.Max < e.Min:
		return fmt.Sprintf("%s was %d, but the valid range is empty", e.What, e.Value)
	}
	return fmt.Sprintf("%s was %d, outside the valid range [%d..%d]", e.What, e.Value, e.Min, e.Max)
}
