package enigma

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-enigma/pkg/alphabet"
)

func TestReflectorInvolution(t *testing.T) {
	for _, r := range Reflectors() {
		t.Run(r.Name(), func(t *testing.T) {
			for i := 0; i < alphabet.Size; i++ {
				c := alphabet.Letter(i)
				out := r.Encode(c)
				if out == c {
					t.Errorf("%s maps %q to itself", r.Name(), c)
				}
				if back := r.Encode(out); back != c {
					t.Errorf("%s: Encode(Encode(%q)) = %q", r.Name(), c, back)
				}
			}
		})
	}
}

func TestReflectorByName(t *testing.T) {
	for _, name := range ReflectorNames() {
		r, err := ReflectorByName(name)
		if err != nil {
			t.Fatalf("ReflectorByName(%q) failed: %v", name, err)
		}
		if r.Name() != name || r.String() != name {
			t.Errorf("ReflectorByName(%q) name = %q", name, r.Name())
		}
	}

	for _, name := range []string{"", "D", "a", "UKW"} {
		if _, err := ReflectorByName(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("ReflectorByName(%q) error = %v, want ErrNotFound", name, err)
		}
	}
}

func TestReflectorWiring(t *testing.T) {
	r, _ := ReflectorByName("B")
	if got := r.Encode('a'); got != 'y' {
		t.Errorf("B.Encode('a') = %q, want 'y'", got)
	}
	if got := r.Encode('y'); got != 'a' {
		t.Errorf("B.Encode('y') = %q, want 'a'", got)
	}
}

func TestReflectorEncodePanicsOnNonLetter(t *testing.T) {
	r, _ := ReflectorByName("A")
	defer func() {
		if recover() == nil {
			t.Error("Encode('A') did not panic")
		}
	}()
	r.Encode('A')
}

func TestNewWiringRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"short", "abc"},
		{"repeat", "aacdefghijklmnopqrstuvwxyz"},
		{"non letter", "abcdefghijklmnopqrstuvwxy1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newWiring(tt.key); err == nil {
				t.Errorf("newWiring(%q) should fail", tt.key)
			}
		})
	}

	w, err := newWiring(alphabet.Letters)
	if err != nil {
		t.Fatalf("identity wiring failed: %v", err)
	}
	if w.isReflection() {
		t.Error("identity has fixed points and is not a reflection")
	}
}
