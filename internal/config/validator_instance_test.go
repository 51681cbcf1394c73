package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

func TestGetValidatorIsSingleton(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		value string
		valid bool
	}{
		{"hex upper", "rgb_hex", "#5679C9", true},
		{"hex lower", "rgb_hex", "#a0b1c2", true},
		{"hex short", "rgb_hex", "#fff", false},
		{"hex with alpha", "rgb_hex", "#5679C9FF", false},
		{"hex no hash", "rgb_hex", "5679C9", false},
		{"hex bad digit", "rgb_hex", "#5679CG", false},
		{"source hostname", "color_source", "hostname", true},
		{"source none", "color_source", "none", true},
		{"source file type", "color_source", "file-type", true},
		{"source unknown", "color_source", "moon-phase", false},
		{"source empty", "color_source", "", false},
		{"style nega-dark", "coloring_style", "nega-dark", true},
		{"style light", "coloring_style", "light", true},
		{"style case", "coloring_style", "Light", false},
		{"scope git", "apply_scope", "has-vscode-or-git", true},
		{"scope none", "apply_scope", "none", true},
		{"scope unknown", "apply_scope", "sometimes", false},
	}

	v := GetValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.value, tt.tag)
			assert.Equal(t, tt.valid, err == nil, "%s %q: %v", tt.tag, tt.value, err)
		})
	}
}

func TestRuleReportsSettingAndTag(t *testing.T) {
	t.Parallel()

	err := rule[string]("frameColors.baseColor", "rgb_hex")("blue")
	require.Error(t, err)

	var verr *fcerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "frameColors.baseColor", verr.Setting)
	assert.Equal(t, "rgb_hex", verr.Rule)
	assert.Equal(t, "blue", verr.Value)

	assert.NoError(t, rule[string]("frameColors.baseColor", "rgb_hex")("#000000"))
}
