// Package mapper holds generic slice mapping helpers used by the
// persistence and DTO mappers.
package mapper

import "fmt"

// MapSlice applies fn to every element. A nil slice maps to nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

// MapSlicePtrWithID maps a slice of pointers, skipping nil inputs and nil
// outputs. Errors are wrapped with the failing item's id.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	fn func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}
