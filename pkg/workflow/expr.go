package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scout-research/scout/pkg/template"
)

// EvalWhen evaluates a step's `when` guard against the variable context.
// The grammar covers presence checks (`vars.region`), equality and
// inequality against literals (`depth == "deep"`), and `and`/`or`/`not`
// combinators with parentheses. An empty expression is true.
func EvalWhen(expr string, ctx map[string]any) (bool, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return true, nil
	}
	tokens, err := tokenizeExpr(expr)
	if err != nil {
		return false, err
	}
	p := &exprParser{tokens: tokens, ctx: ctx}
	result, err := p.parseOr()
	if err != nil {
		return false, err
	}
	if p.pos != len(p.tokens) {
		return false, fmt.Errorf("unexpected token %q in expression %q", p.tokens[p.pos], expr)
	}
	return result, nil
}

func tokenizeExpr(expr string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		case c == '=' || c == '!':
			if i+1 >= len(expr) || expr[i+1] != '=' {
				return nil, fmt.Errorf("invalid operator at %q", expr[i:])
			}
			tokens = append(tokens, expr[i:i+2])
			i += 2
		case c == '"' || c == '\'':
			end := strings.IndexByte(expr[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("unterminated string in expression %q", expr)
			}
			tokens = append(tokens, expr[i:i+end+2])
			i += end + 2
		default:
			j := i
			for j < len(expr) && !strings.ContainsRune(" \t()=!", rune(expr[j])) {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j
		}
	}
	return tokens, nil
}

type exprParser struct {
	tokens []string
	pos    int
	ctx    map[string]any
}

func (p *exprParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *exprParser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *exprParser) parseOr() (bool, error) {
	left, err := p.parseAnd()
	if err != nil {
		return false, err
	}
	for p.peek() == "or" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return false, err
		}
		left = left || right
	}
	return left, nil
}

func (p *exprParser) parseAnd() (bool, error) {
	left, err := p.parseNot()
	if err != nil {
		return false, err
	}
	for p.peek() == "and" {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return false, err
		}
		left = left && right
	}
	return left, nil
}

func (p *exprParser) parseNot() (bool, error) {
	if p.peek() == "not" {
		p.next()
		v, err := p.parseNot()
		if err != nil {
			return false, err
		}
		return !v, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (bool, error) {
	tok := p.peek()
	switch tok {
	case "":
		return false, fmt.Errorf("unexpected end of expression")
	case "(":
		p.next()
		v, err := p.parseOr()
		if err != nil {
			return false, err
		}
		if p.next() != ")" {
			return false, fmt.Errorf("missing closing parenthesis")
		}
		return v, nil
	}

	path := p.next()
	value, present := template.Lookup(path, p.ctx)

	switch p.peek() {
	case "==", "!=":
		op := p.next()
		lit := p.next()
		if lit == "" {
			return false, fmt.Errorf("operator %q requires a right-hand literal", op)
		}
		eq := present && literalEquals(value, lit)
		if op == "==" {
			return eq, nil
		}
		return !eq, nil
	default:
		// Bare path: presence check. Empty strings and empty sequences
		// count as absent.
		return present && !isEmptyValue(value), nil
	}
}

func literalEquals(value any, lit string) bool {
	if len(lit) >= 2 && (lit[0] == '"' || lit[0] == '\'') {
		return fmt.Sprintf("%v", value) == lit[1:len(lit)-1]
	}
	switch lit {
	case "true", "false":
		if b, ok := value.(bool); ok {
			return strconv.FormatBool(b) == lit
		}
	}
	return fmt.Sprintf("%v", value) == lit
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case bool:
		return !val
	default:
		return false
	}
}
