package prompt

import (
	"errors"
	"testing"

	"github.com/randalmurphal/promptbuild/section"
)

func TestAppendAndRender(t *testing.T) {
	p := New()
	p.Append(section.New("a", "one"))
	p.AppendText("b", "two")
	p.Append(section.NewText("three"))

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if got := p.Render(" "); got != "one two three" {
		t.Errorf("Render() = %q, want %q", got, "one two three")
	}
	if got := p.String(); got != "onetwothree" {
		t.Errorf("String() = %q, want %q", got, "onetwothree")
	}
}

func TestAppendText_KeepsSource(t *testing.T) {
	p := New()
	p.AppendText("origin", "shortened")

	s := p.Sections()[0]
	if s.Source() != "origin" {
		t.Errorf("Source() = %q, want %q", s.Source(), "origin")
	}
	if s.Text() != "shortened" {
		t.Errorf("Text() = %q, want %q", s.Text(), "shortened")
	}
}

func TestClear(t *testing.T) {
	p := New()
	p.AppendText("a", "one")
	p.Clear()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.TotalLen() != 0 {
		t.Errorf("TotalLen() = %d, want 0", p.TotalLen())
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		count   int
		want    string
		wantErr bool
	}{
		{name: "full range", start: 0, count: 4, want: "b,c,d,a"},
		{name: "sub-range", start: 1, count: 2, want: "a,c,b,d"},
		{name: "single element is a no-op", start: 2, count: 1, want: "a,b,c,d"},
		{name: "zero count is a no-op", start: 0, count: 0, want: "a,b,c,d"},
		{name: "negative start", start: -1, count: 2, wantErr: true},
		{name: "negative count", start: 0, count: -1, wantErr: true},
		{name: "range past end", start: 2, count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			for _, text := range []string{"a", "b", "c", "d"} {
				p.AppendText(text, text)
			}

			err := p.Rotate(tt.start, tt.count)
			if tt.wantErr {
				if !errors.Is(err, ErrRange) {
					t.Fatalf("Rotate() error = %v, want ErrRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rotate() error = %v", err)
			}
			if got := p.Render(","); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRotate_PreservesTotalLen(t *testing.T) {
	p := New()
	p.AppendText("a", "one")
	p.AppendText("b", "longer text")
	p.AppendText("c", "x")

	before := p.TotalLen()
	if err := p.Rotate(0, 3); err != nil {
		t.Fatal(err)
	}
	if p.TotalLen() != before {
		t.Errorf("TotalLen() = %d, want %d", p.TotalLen(), before)
	}
}

func TestTotalLen_CountsRunes(t *testing.T) {
	p := New()
	p.AppendText("a", "héllö")

	if p.TotalLen() != 5 {
		t.Errorf("TotalLen() = %d, want 5 runes", p.TotalLen())
	}
}
