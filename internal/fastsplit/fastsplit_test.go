package fastsplit

import (
	"bufio"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			sep:   ",",
			want:  []string{},
		},
		{
			name:  "only delimiters",
			input: ",,,",
			sep:   ",",
			want:  []string{},
		},
		{
			name:  "simple",
			input: "John,Mike,Kale",
			sep:   ",",
			want:  []string{"John", "Mike", "Kale"},
		},
		{
			name:  "leading trailing and repeated",
			input: ",,a,,b,,",
			sep:   ",",
			want:  []string{"a", "b"},
		},
		{
			name:  "no delimiter",
			input: "abcdefghijklmnop",
			sep:   ",",
			want:  []string{"abcdefghijklmnop"},
		},
		{
			name:  "delimiter on word boundary",
			input: "abcdefg,hijklmn,",
			sep:   ",",
			want:  []string{"abcdefg", "hijklmn"},
		},
		{
			name:  "two delimiters in one word",
			input: "ab,cd,efgh",
			sep:   ",",
			want:  []string{"ab", "cd", "efgh"},
		},
		{
			name:  "adjacent delimiters across a word",
			input: "abcdefg,,,,,,,,,h",
			sep:   ",",
			want:  []string{"abcdefg", "h"},
		},
		{
			name:  "space",
			input: "  hello   world ",
			sep:   " ",
			want:  []string{"hello", "world"},
		},
		{
			name:  "NUL delimiter",
			input: "a\x00\x00b",
			sep:   "\x00",
			want:  []string{"a", "b"},
		},
		{
			name:  "multi-byte separator",
			input: "→a→→bc→",
			sep:   "→",
			want:  []string{"a", "bc"},
		},
		{
			name:  "partial separator is content",
			input: "a\xe2\x86b→c",
			sep:   "→",
			want:  []string{"a\xe2\x86b", "c"},
		},
		{
			name:  "invalid UTF-8 kept byte for byte",
			input: "x\xffy,z\xfe",
			sep:   ",",
			want:  []string{"x\xffy", "z\xfe"},
		},
		{
			name:  "empty separator never matches",
			input: "abc",
			sep:   "",
			want:  []string{"abc"},
		},
		{
			name:  "high bytes are not delimiters",
			input: "café,naïveééé",
			sep:   ",",
			want:  []string{"café", "naïveééé"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.sep)
			if got == nil {
				t.Fatal("Split returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %q, want %q", tt.input, tt.sep, got, tt.want)
			}
			if n := Count(tt.input, tt.sep); n != len(tt.want) {
				t.Errorf("Count(%q, %q) = %d, want %d", tt.input, tt.sep, n, len(tt.want))
			}
		})
	}
}

func TestFindDelimiterPos(t *testing.T) {
	tests := []struct {
		chunk string
		want  int
	}{
		{"abcdefgh", -1},
		{",bcdefgh", 0},
		{"abc,efgh", 3},
		{"abcdefg,", 7},
		{"a,c,e,g,", 1},
		// 0x2d is ',' + 1; the borrow must not report it.
		{"-,------", 1},
	}

	broadcast := uint64(',') * loMask
	for _, tt := range tests {
		if got := findDelimiterPos(load64(tt.chunk, 0), broadcast); got != tt.want {
			t.Errorf("findDelimiterPos(%q) = %d, want %d", tt.chunk, got, tt.want)
		}
	}
}

func TestSplit_MatchesFieldsFunc(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(strings.Repeat("x", i%11))
		sb.WriteString(strings.Repeat(";", i%3))
	}
	input := sb.String()

	got := Split(input, ";")
	want := strings.FieldsFunc(input, func(r rune) bool { return r == ';' })
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Split disagrees with strings.FieldsFunc: got %d fragments, want %d", len(got), len(want))
	}
}

func scanAll(t *testing.T, r io.Reader, sep string) []string {
	t.Helper()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4), 1<<20)
	sc.Split(ScanFragments(sep))

	out := []string{}
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return out
}

func TestScanFragments(t *testing.T) {
	inputs := []string{
		"",
		"→",
		"→→→",
		"a",
		"→a→→bc→",
		"a\xe2\x86b→c",
		"x\xff→\xfe",
		strings.Repeat("abc→→", 50),
	}

	for _, input := range inputs {
		want := Split(input, "→")

		// One byte per Read forces every separator across a buffer boundary.
		if got := scanAll(t, iotest.OneByteReader(strings.NewReader(input)), "→"); !reflect.DeepEqual(got, want) {
			t.Errorf("one byte at a time %q: got %q, want %q", input, got, want)
		}
		if got := scanAll(t, strings.NewReader(input), "→"); !reflect.DeepEqual(got, want) {
			t.Errorf("whole input %q: got %q, want %q", input, got, want)
		}
	}
}

func TestScanFragments_TrailingPartialSeparator(t *testing.T) {
	got := scanAll(t, iotest.OneByteReader(strings.NewReader("ab\xe2\x86")), "→")
	want := []string{"ab\xe2\x86"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
