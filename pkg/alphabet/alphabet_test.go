package alphabet

import (
	"testing"
)

func TestIndexAndLetter(t *testing.T) {
	for i := 0; i < Size; i++ {
		c := Letters[i]
		got, ok := Index(c)
		if !ok {
			t.Fatalf("Index(%q) reported not a letter", c)
		}
		if got != i {
			t.Errorf("Index(%q) = %d, want %d", c, got, i)
		}
		if Letter(i) != c {
			t.Errorf("Letter(%d) = %q, want %q", i, Letter(i), c)
		}
	}

	for _, c := range []byte{'A', 'Z', '0', ' ', '{', '`'} {
		if _, ok := Index(c); ok {
			t.Errorf("Index(%q) should not be a letter", c)
		}
	}
}

func TestMustIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustIndex('!') did not panic")
		}
	}()
	MustIndex('!')
}

func TestMod(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{52, 0},
	}

	for _, tt := range tests {
		if got := Mod(tt.in); got != tt.want {
			t.Errorf("Mod(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if Letter(-1) != 'z' {
		t.Errorf("Letter(-1) = %q, want 'z'", Letter(-1))
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "hello", "hello"},
		{"mixed case", "Hello World", "helloworld"},
		{"punctuation", "Attack at dawn! 06:00.", "attackatdawn"},
		{"newlines", "line one\nline two\r\n", "lineonelinetwo"},
		{"non ascii", "grüße", "gre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prepare(tt.in); got != tt.want {
				t.Errorf("Prepare(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		in   string
		size int
		want string
	}{
		{"enigmaiscool", 5, "ENIGM AISCO OL"},
		{"helloworld", 4, "HELL OWOR LD"},
		{"abcde", 5, "ABCDE"},
		{"abcdefghij", 5, "ABCDE FGHIJ"},
		{"", 5, ""},
		{"abc", 0, "ABC"},
	}

	for _, tt := range tests {
		if got := Group(tt.in, tt.size); got != tt.want {
			t.Errorf("Group(%q, %d) = %q, want %q", tt.in, tt.size, got, tt.want)
		}
	}
}
