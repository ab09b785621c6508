package domain

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when a reconcile call receives zero target cells.
var ErrEmptySelection = errors.New("selection contains no cells")

// InvalidHourError reports an hour index outside [0,23].
type InvalidHourError struct {
	Hour int
}

func (e *InvalidHourError) Error() string {
	return fmt.Sprintf("hour %d out of range [0,23]", e.Hour)
}

// InvalidDateError reports a date that is not a valid ISO YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Date string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Date)
}

// InvalidCategoryError reports a category value outside the closed set.
type InvalidCategoryError struct {
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q: must be one of REST, WORK, OTHER", e.Value)
}

// InvalidTagError reports a well-being tag outside the known set.
type InvalidTagError struct {
	Value string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid well-being tag %q", e.Value)
}
