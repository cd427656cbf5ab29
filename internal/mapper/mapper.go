// Package mapper converts flat database rows — possibly carrying left-joined
// columns — into the nested response objects the API serves. All functions
// are pure: grouping is a map keyed by entity id plus an insertion-order
// list, so the same input rows always produce the same output shape.
package mapper

import "time"

// UTC normalizes a stored timestamp for serialization. Columns are naive
// timestamps treated as UTC; forcing the location makes JSON carry the Z
// suffix regardless of the server zone.
func UTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
