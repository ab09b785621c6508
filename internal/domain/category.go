// Package domain contains the core types of the hour-grid time tracking model.
package domain

import "strings"

// Category is the closed set of top-level activity classifications.
// Every subcategory, hour entry, and goal belongs to exactly one.
type Category string

const (
	// CategoryRest covers recovery activities: sleep, breaks, relaxation.
	CategoryRest Category = "REST"
	// CategoryWork covers productive activities: meetings, coding, studying.
	CategoryWork Category = "WORK"
	// CategoryOther covers everything else: chores, commute, entertainment.
	CategoryOther Category = "OTHER"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryRest, CategoryWork, CategoryOther}
}

// IsValid reports whether the category is one of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRest, CategoryWork, CategoryOther:
		return true
	}
	return false
}

// Color returns the display color associated with the category.
func (c Category) Color() string {
	switch c {
	case CategoryRest:
		return "#9ca3af"
	case CategoryWork:
		return "#00ff00"
	case CategoryOther:
		return "#ff0000"
	}
	return ""
}

// ParseCategory normalizes and validates a category string.
// Unrecognized values are rejected rather than coerced to a default.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", &InvalidCategoryError{Value: s}
	}
	return c, nil
}
