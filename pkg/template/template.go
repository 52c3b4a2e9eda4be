// Package template implements the {{path}} substitution engine used to
// materialize strategy step inputs. Rendering is a pure function of
// (template, context): resolution failures leave the token untouched and
// append a warning to the caller's sink instead of failing the render.
package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tokenRe matches {{ path }} and {{ path | filter:arg }} tokens.
// Path grammar: identifier(.identifier|[integer])*
var tokenRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*(?:(?:\.[A-Za-z_][A-Za-z0-9_]*)|(?:\[\d+\]))*)\s*(?:\|\s*([A-Za-z_]+)(?::(\d+))?\s*)?\}\}`)

// Warnings collects non-fatal resolution failures during a render.
// A nil *Warnings is valid and discards everything.
type Warnings struct {
	entries []string
}

// Add appends a warning message.
func (w *Warnings) Add(msg string) {
	if w == nil {
		return
	}
	w.entries = append(w.entries, msg)
}

// Entries returns the collected warnings in order.
func (w *Warnings) Entries() []string {
	if w == nil {
		return nil
	}
	return w.entries
}

// Render substitutes every {{path}} token in tmpl with the value resolved
// from ctx. Unresolvable tokens are left literal and recorded in warns.
func Render(tmpl string, ctx map[string]any, warns *Warnings) string {
	return tokenRe.ReplaceAllStringFunc(tmpl, func(token string) string {
		m := tokenRe.FindStringSubmatch(token)
		path, filter, filterArg := m[1], m[2], m[3]

		value, ok := resolve(path, ctx)
		if !ok {
			warns.Add(fmt.Sprintf("unresolved template path %q", path))
			return token
		}

		if filter != "" {
			filtered, ok := applyFilter(value, filter, filterArg)
			if !ok {
				warns.Add(fmt.Sprintf("filter %q does not apply to value at %q", filter, path))
				return token
			}
			value = filtered
		}

		return coerceString(value)
	})
}

// RenderInputs renders every string value of a step input map, leaving
// non-string values untouched. Nested maps and slices are rendered
// recursively so templated values inside structured inputs resolve too.
func RenderInputs(inputs map[string]any, ctx map[string]any, warns *Warnings) map[string]any {
	if inputs == nil {
		return nil
	}
	out := make(map[string]any, len(inputs))
	for k, v := range inputs {
		out[k] = renderValue(v, ctx, warns)
	}
	return out
}

func renderValue(v any, ctx map[string]any, warns *Warnings) any {
	switch t := v.(type) {
	case string:
		return Render(t, ctx, warns)
	case map[string]any:
		return RenderInputs(t, ctx, warns)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = renderValue(e, ctx, warns)
		}
		return out
	default:
		return v
	}
}

// Lookup resolves a dotted/indexed path against a context without any
// template syntax. Used by guard-expression evaluation.
func Lookup(path string, ctx map[string]any) (any, bool) {
	return resolve(path, ctx)
}

// resolve walks a dotted/indexed path through the context.
func resolve(path string, ctx map[string]any) (any, bool) {
	var current any = ctx
	for _, seg := range splitPath(path) {
		if seg.index >= 0 {
			seq, ok := asSlice(current)
			if !ok || seg.index >= len(seq) {
				return nil, false
			}
			current = seq[seg.index]
			continue
		}
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg.key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

type pathSegment struct {
	key   string
	index int // -1 for key segments
}

func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segs = append(segs, pathSegment{key: part, index: -1})
				}
				break
			}
			if open > 0 {
				segs = append(segs, pathSegment{key: part[:open], index: -1})
			}
			closing := strings.IndexByte(part, ']')
			idx, _ := strconv.Atoi(part[open+1 : closing])
			segs = append(segs, pathSegment{index: idx})
			part = part[closing+1:]
		}
	}
	return segs
}

func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// applyFilter applies a named filter. Filters only apply when the value
// matches their input contract; otherwise the caller keeps the literal token.
func applyFilter(value any, name, arg string) (any, bool) {
	switch name {
	case "shortlist":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, false
		}
		seq, ok := asSlice(value)
		if !ok {
			return nil, false
		}
		if n < len(seq) {
			seq = seq[:n]
		}
		parts := make([]string, len(seq))
		for i, e := range seq {
			parts[i] = coerceString(e)
		}
		return strings.Join(parts, ", "), true
	default:
		return nil, false
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = coerceString(e)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
