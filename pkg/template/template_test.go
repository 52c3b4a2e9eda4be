package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SimplePaths(t *testing.T) {
	ctx := map[string]any{
		"topic": "AI regulation",
		"scope": map[string]any{"window": "week"},
	}

	var warns Warnings
	out := Render("research {{topic}} within {{scope.window}}", ctx, &warns)

	assert.Equal(t, "research AI regulation within week", out)
	assert.Empty(t, warns.Entries())
}

func TestRender_IndexedPaths(t *testing.T) {
	ctx := map[string]any{
		"tasks": []any{"first task", "second task"},
		"nested": map[string]any{
			"items": []string{"a", "b", "c"},
		},
	}

	var warns Warnings
	assert.Equal(t, "second task", Render("{{tasks[1]}}", ctx, &warns))
	assert.Equal(t, "c", Render("{{nested.items[2]}}", ctx, &warns))
	assert.Empty(t, warns.Entries())
}

func TestRender_UnresolvedTokenLeftLiteral(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		ctx  map[string]any
	}{
		{"missing key", "query: {{missing}}", map[string]any{"topic": "x"}},
		{"index out of range", "{{tasks[5]}}", map[string]any{"tasks": []any{"one"}}},
		{"wrong type for index", "{{topic[0]}}", map[string]any{"topic": "scalar"}},
		{"wrong type for key", "{{topic.sub}}", map[string]any{"topic": "scalar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warns Warnings
			out := Render(tt.tmpl, tt.ctx, &warns)
			assert.Equal(t, tt.tmpl, out, "unresolved token must stay literal")
			assert.Len(t, warns.Entries(), 1)
		})
	}
}

func TestRender_ShortlistFilter(t *testing.T) {
	ctx := map[string]any{
		"sources": []any{"reuters.com", "ft.com", "bloomberg.com", "wsj.com"},
		"scalar":  "not a list",
	}

	var warns Warnings
	out := Render("{{sources | shortlist:3}}", ctx, &warns)
	assert.Equal(t, "reuters.com, ft.com, bloomberg.com", out)
	assert.Empty(t, warns.Entries())

	// Shorter than N: whole list.
	out = Render("{{sources | shortlist:10}}", ctx, &warns)
	assert.Equal(t, "reuters.com, ft.com, bloomberg.com, wsj.com", out)

	// Filter contract violation leaves the token literal.
	out = Render("{{scalar | shortlist:2}}", ctx, &warns)
	assert.Equal(t, "{{scalar | shortlist:2}}", out)
	assert.NotEmpty(t, warns.Entries())
}

func TestRender_MonotonicContext(t *testing.T) {
	// Paths defined in the smaller context must render identically when the
	// context grows.
	k1 := map[string]any{"topic": "fusion energy"}
	k2 := map[string]any{"topic": "fusion energy", "depth": "deep", "extra": []any{1, 2}}

	tmpl := "overview of {{topic}}"
	assert.Equal(t, Render(tmpl, k1, nil), Render(tmpl, k2, nil))
}

func TestRenderInputs_NestedStructures(t *testing.T) {
	ctx := map[string]any{"topic": "quantum", "limit": 5}
	inputs := map[string]any{
		"query":       "latest {{topic}} news",
		"max_results": 10,
		"options": map[string]any{
			"highlight": "{{topic}}",
		},
		"queries": []any{"{{topic}} breakthrough", "{{topic}} funding"},
	}

	var warns Warnings
	out := RenderInputs(inputs, ctx, &warns)

	assert.Equal(t, "latest quantum news", out["query"])
	assert.Equal(t, 10, out["max_results"])
	assert.Equal(t, "quantum", out["options"].(map[string]any)["highlight"])
	assert.Equal(t, []any{"quantum breakthrough", "quantum funding"}, out["queries"])
	assert.Empty(t, warns.Entries())

	// Original map untouched.
	assert.Equal(t, "latest {{topic}} news", inputs["query"])
}

func TestRender_NilWarningsSafe(t *testing.T) {
	out := Render("{{missing}}", map[string]any{}, nil)
	assert.Equal(t, "{{missing}}", out)
}
