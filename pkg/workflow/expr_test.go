package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalWhen(t *testing.T) {
	ctx := map[string]any{
		"depth":    "deep",
		"region":   "emea",
		"tasks":    []any{"a", "b"},
		"empty":    "",
		"nothing":  []any{},
		"verified": true,
		"draft":    false,
		"count":    3,
		"vars":     map[string]any{"competitor": "acme"},
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"region", true},
		{"missing", false},
		{"empty", false},
		{"nothing", false},
		{"verified", true},
		{"draft", false},
		{"tasks", true},
		{"vars.competitor", true},
		{"vars.missing", false},
		{`depth == "deep"`, true},
		{`depth == "brief"`, false},
		{`depth != "brief"`, true},
		{`depth == 'deep'`, true},
		{`missing == "deep"`, false},
		{`missing != "deep"`, true},
		{"verified == true", true},
		{"draft == false", true},
		{"count == 3", true},
		{`depth == "deep" and region`, true},
		{`depth == "brief" and region`, false},
		{`depth == "brief" or region`, true},
		{"not missing", true},
		{"not region", false},
		{`not (depth == "brief")`, true},
		{`(depth == "deep" or missing) and verified`, true},
		{`depth == "brief" or depth == "deep"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := EvalWhen(tt.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalWhenErrors(t *testing.T) {
	tests := []string{
		`depth = "deep"`,
		`depth == "unterminated`,
		`(depth == "deep"`,
		`depth ==`,
		`region region region ==`,
		`and region`,
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := EvalWhen(expr, map[string]any{"depth": "deep", "region": "emea"})
			assert.Error(t, err)
		})
	}
}
