package eval

import "errors"

var (
	// InvalidInputErr reports label sequences or grids the evaluation cannot work with.
	InvalidInputErr = errors.New("invalid input")
	// DivisionUndefinedErr reports a ratio with a zero denominator.
	DivisionUndefinedErr = errors.New("division undefined")
)
