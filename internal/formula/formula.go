// Package formula evaluates restricted arithmetic expressions for
// custom velocity-depth profiles.
//
// The grammar is fixed: the binary operators + - * /, ^ for
// exponentiation (the spelling ** is accepted too), unary minus,
// parentheses, numeric literals, the variable x (t is an alias), the
// constants pi and e, and single-argument calls to a fixed builtin
// set. Anything else is rejected at parse time, so evaluation cannot
// run arbitrary code.
//
// Precedence follows mathematical convention: ^ binds tightest and is
// right-associative, then unary minus, then * /, then + -.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var builtins = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"exp":   math.Exp,
	"log":   math.Log,
	"log1p": math.Log1p,
	"abs":   math.Abs,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tanh":  math.Tanh,
}

// node is one evaluable element of a parsed formula.
type node interface {
	eval(x float64) float64
}

type literal float64

func (l literal) eval(float64) float64 { return float64(l) }

type variable struct{}

func (variable) eval(x float64) float64 { return x }

type unaryMinus struct{ operand node }

func (u unaryMinus) eval(x float64) float64 { return -u.operand.eval(x) }

type binary struct {
	op   byte
	l, r node
}

func (b binary) eval(x float64) float64 {
	l, r := b.l.eval(x), b.r.eval(x)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

type call struct {
	fn  func(float64) float64
	arg node
}

func (c call) eval(x float64) float64 { return c.fn(c.arg.eval(x)) }

// Expr is a validated formula over one variable.
type Expr struct {
	src  string
	root node
}

// Parse validates src and returns an evaluable expression.
func Parse(src string) (*Expr, error) {
	p := &parser{src: strings.ReplaceAll(src, "**", "^")}
	root, err := p.parseSum()
	if err != nil {
		return nil, fmt.Errorf("formula %q: %w", src, err)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("formula %q: unexpected %q at offset %d", src, p.src[p.pos], p.pos)
	}
	return &Expr{src: src, root: root}, nil
}

// String returns the formula as the user wrote it.
func (e *Expr) String() string { return e.src }

// Eval evaluates the formula at x.
func (e *Expr) Eval(x float64) float64 { return e.root.eval(x) }

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseSum handles + and - at the lowest precedence.
func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek() {
	case '-':
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryMinus{operand: operand}, nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles ^, right-associative and binding tighter than
// unary minus applied to its left operand (-x^2 is -(x^2)).
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binary{op: '^', l: base, r: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		p.pos++
		return inner, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case unicode.IsLetter(rune(c)):
		return p.parseName()
	case c == 0:
		return nil, fmt.Errorf("unexpected end of formula")
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (node, error) {
	start := p.pos
	seenExp := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9' || c == '.':
		case c == 'e' || c == 'E':
			if seenExp {
				return nil, fmt.Errorf("malformed number at offset %d", start)
			}
			seenExp = true
			if p.pos+1 < len(p.src) && (p.src[p.pos+1] == '+' || p.src[p.pos+1] == '-') {
				p.pos++
			}
		default:
			goto done
		}
		p.pos++
	}
done:
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed number %q", p.src[start:p.pos])
	}
	return literal(v), nil
}

func (p *parser) parseName() (node, error) {
	start := p.pos
	for p.pos < len(p.src) && (unicode.IsLetter(rune(p.src[p.pos])) || p.src[p.pos] >= '0' && p.src[p.pos] <= '9') {
		p.pos++
	}
	name := p.src[start:p.pos]

	if p.peek() == '(' {
		fn, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("unknown function %q", name)
		}
		p.pos++
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("missing closing parenthesis in call to %s", name)
		}
		p.pos++
		return call{fn: fn, arg: arg}, nil
	}

	switch name {
	case "x", "t":
		return variable{}, nil
	case "pi":
		return literal(math.Pi), nil
	case "e":
		return literal(math.E), nil
	}
	return nil, fmt.Errorf("unknown variable %q", name)
}
