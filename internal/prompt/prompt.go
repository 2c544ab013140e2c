// Package prompt implements the line-based interactive parameter
// collection used by the tools when flags are not given. Each prompt
// re-asks on unparseable input and falls back to a default on an empty
// line when one is provided.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader prompts on w and reads answers from r.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompt reader, typically over os.Stdin and os.Stdout.
func New(r io.Reader, w io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(r), out: w}
}

func (p *Reader) ask(label, hint string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// String prompts for a non-empty string; def may be empty to make the
// answer required.
func (p *Reader) String(label, def string) (string, error) {
	hint := "required"
	if def != "" {
		hint = "default " + def
	}
	for {
		s, err := p.ask(label, hint)
		if err != nil {
			return "", err
		}
		if s == "" {
			if def != "" {
				return def, nil
			}
			fmt.Fprintln(p.out, "a value is required, please try again")
			continue
		}
		return s, nil
	}
}

// Int prompts for an integer; def is used on an empty answer when
// non-nil.
func (p *Reader) Int(label string, def *int) (int, error) {
	hint := "required"
	if def != nil {
		hint = "default " + strconv.Itoa(*def)
	}
	for {
		s, err := p.ask(label, hint)
		if err != nil {
			return 0, err
		}
		if s == "" && def != nil {
			return *def, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "not an integer, please try again")
			continue
		}
		return v, nil
	}
}

// Float prompts for a floating-point number.
func (p *Reader) Float(label string, def *float64) (float64, error) {
	hint := "required"
	if def != nil {
		hint = "default " + strconv.FormatFloat(*def, 'g', -1, 64)
	}
	for {
		s, err := p.ask(label, hint)
		if err != nil {
			return 0, err
		}
		if s == "" && def != nil {
			return *def, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintln(p.out, "not a number, please try again")
			continue
		}
		return v, nil
	}
}

// YesNo prompts for a y/n answer.
func (p *Reader) YesNo(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		s, err := p.ask(label, hint)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "please answer y or n")
	}
}
