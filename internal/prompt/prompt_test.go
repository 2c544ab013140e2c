package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestStringWithDefault(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)
	got, err := p.String("Output filename", "out.bin")
	if err != nil {
		t.Fatal(err)
	}
	if got != "out.bin" {
		t.Errorf("String = %q, want default out.bin", got)
	}
}

func TestStringRequiredReasks(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n\nmodel.bin\n"), &out)
	got, err := p.String("Input file", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "model.bin" {
		t.Errorf("String = %q, want model.bin", got)
	}
	if !strings.Contains(out.String(), "required") {
		t.Error("missing re-ask notice")
	}
}

func TestIntRetriesOnGarbage(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n500\n"), &out)
	got, err := p.Int("n1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 500 {
		t.Errorf("Int = %d, want 500", got)
	}
	if !strings.Contains(out.String(), "not an integer") {
		t.Error("missing retry notice")
	}
}

func TestFloatDefault(t *testing.T) {
	def := 0.5
	p := New(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := p.Float("r1", &def)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("Float = %v, want 0.5", got)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y\n", false, true},
		{"no\n", true, false},
		{"\n", true, true},
		{"maybe\nn\n", true, false},
	}
	for _, tt := range tests {
		p := New(strings.NewReader(tt.in), &bytes.Buffer{})
		got, err := p.YesNo("Smooth entire section?", tt.def)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("YesNo(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEOFWithoutAnswer(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Int("n1", nil); err == nil {
		t.Fatal("want error on EOF")
	}
}
