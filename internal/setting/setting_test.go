package setting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

type mapReader map[string]any

func (m mapReader) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

type mode string

func TestGetMemoizesUntilClear(t *testing.T) {
	t.Parallel()

	r := mapReader{"color": "#112233"}
	s := &Setting[string]{Name: "color", Default: "#000000"}

	require.Equal(t, "#112233", s.Get(r))

	r["color"] = "#445566"
	require.Equal(t, "#112233", s.Get(r), "memoized value should be returned")

	s.Clear()
	require.Equal(t, "#445566", s.Get(r))
}

func TestMissingValueUsesDefault(t *testing.T) {
	t.Parallel()

	s := &Setting[int]{Name: "steps", Default: 3}
	require.Equal(t, 3, s.Get(mapReader{}))
	require.Equal(t, 3, (&Setting[int]{Name: "steps", Default: 3}).Get(mapReader{"steps": nil}))
}

func TestUpdateReportsChanges(t *testing.T) {
	t.Parallel()

	r := mapReader{"style": "dark"}
	s := &Setting[mode]{Name: "style", Default: "light"}

	assert.True(t, s.Update(r), "first read counts as a change")
	assert.False(t, s.Update(r))

	r["style"] = "nega-dark"
	assert.True(t, s.Update(r))
	assert.Equal(t, mode("nega-dark"), s.Get(r))
}

func TestValidationFailureFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var rejected []error
	s := &Setting[mode]{
		Name:    "style",
		Default: "light",
		Validate: func(m mode) error {
			if m == "light" || m == "dark" {
				return nil
			}
			return fcerrors.NewValidationError("style", "oneof=light dark", m, nil)
		},
		OnInvalid: func(err error) { rejected = append(rejected, err) },
	}

	require.Equal(t, mode("light"), s.Get(mapReader{"style": "purple"}))
	require.Len(t, rejected, 1)

	var validationErr *fcerrors.ValidationError
	require.True(t, errors.As(rejected[0], &validationErr))
	require.Equal(t, "style", validationErr.Setting)
}

func TestWrongKindFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var rejected int
	s := &Setting[string]{Name: "color", Default: "#000000", OnInvalid: func(error) { rejected++ }}

	require.Equal(t, "#000000", s.Get(mapReader{"color": 65}))
	require.Equal(t, 1, rejected)
}

func TestNumericKindsConvert(t *testing.T) {
	t.Parallel()

	s := &Setting[float64]{Name: "ratio", Default: 1}
	require.Equal(t, 2.0, s.Get(mapReader{"ratio": 2}))
}

func TestRangeClampsSilently(t *testing.T) {
	t.Parallel()

	var rejected int
	s := &Setting[int]{
		Name:      "steps",
		Default:   2,
		Clamp:     Range(0, 5),
		OnInvalid: func(error) { rejected++ },
	}

	assert.Equal(t, 5, s.Get(mapReader{"steps": 40}))
	s.Clear()
	assert.Equal(t, 0, s.Get(mapReader{"steps": -3}))
	assert.Zero(t, rejected)
}
