// Package setting implements typed, validated settings with a memoized
// read-through value.
package setting

import (
	"fmt"
	"reflect"
	"sync"

	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

// Reader looks a setting up by name in the effective configuration.
type Reader interface {
	Lookup(name string) (any, bool)
}

// Setting is a typed setting with a default. Validate rejects stored values
// (the default is used instead); Clamp pulls in-range values of ordered
// types back between their bounds.
//
// Invalid values never surface as errors to the caller: Get and Update fall
// back to Default and report the problem through OnInvalid.
type Setting[T comparable] struct {
	Name     string
	Default  T
	Validate func(T) error
	Clamp    func(T) T
	// OnInvalid is called with the rejection whenever a stored value is
	// replaced by the default.
	OnInvalid func(err error)

	mu     sync.Mutex
	cached *T
}

// Get returns the memoized value, reading it through r on first use or
// after Clear.
func (s *Setting[T]) Get(r Reader) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return *s.cached
	}
	v := s.read(r)
	s.cached = &v
	return v
}

// Clear drops the memoized value.
func (s *Setting[T]) Clear() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Update re-reads the value and reports whether it differs from the
// memoized one. A setting that was never read counts as changed.
func (s *Setting[T]) Update(r Reader) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.read(r)
	changed := s.cached == nil || *s.cached != v
	s.cached = &v
	return changed
}

func (s *Setting[T]) read(r Reader) T {
	raw, ok := r.Lookup(s.Name)
	if !ok || raw == nil {
		return s.Default
	}
	v, err := coerce[T](raw)
	if err != nil {
		s.reject(fcerrors.NewValidationError(s.Name, "", raw, err))
		return s.Default
	}
	if s.Validate != nil {
		if err := s.Validate(v); err != nil {
			s.reject(err)
			return s.Default
		}
	}
	if s.Clamp != nil {
		v = s.Clamp(v)
	}
	return v
}

func (s *Setting[T]) reject(err error) {
	if s.OnInvalid != nil {
		s.OnInvalid(err)
	}
}

// coerce converts decoded data into T. Named types convert from their
// underlying kind (a YAML string becomes a workspace.Source, an int becomes
// a float64) but never across kinds, so 65 is not silently read as "A".
func coerce[T any](raw any) (T, error) {
	var zero T
	if v, ok := raw.(T); ok {
		return v, nil
	}
	want := reflect.TypeOf(zero)
	got := reflect.ValueOf(raw)
	if want == nil || !got.IsValid() {
		return zero, fmt.Errorf("cannot read %T", raw)
	}
	if kindClass(got.Kind()) == 0 || kindClass(got.Kind()) != kindClass(want.Kind()) || !got.Type().ConvertibleTo(want) {
		return zero, fmt.Errorf("want %s, got %T", want, raw)
	}
	return got.Convert(want).Interface().(T), nil
}

func kindClass(k reflect.Kind) int {
	switch k {
	case reflect.String:
		return 1
	case reflect.Bool:
		return 2
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 3
	default:
		return 0
	}
}

// Range returns a Clamp function that keeps values within [min, max].
func Range[T int | int64 | float64](min, max T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
}
