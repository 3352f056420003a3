package videoref

import (
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      string
		wantErr   bool
	}{
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts link", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"legacy v link", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch link with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123", "dQw4w9WgXcQ", false},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=abcdef", "dQw4w9WgXcQ", false},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"empty", "", "", true},
		{"not a video link", "https://example.com/watch?v=dQw4w9WgXcQ", "", true},
		{"plain text", "hello world", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.reference)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if tt.wantErr && !errs.Is(err, errs.KindInvalidReference) {
				t.Errorf("error kind = %q, want %q", errs.KindOf(err), errs.KindInvalidReference)
			}
		})
	}
}

// Every accepted shape of the same identifier must resolve identically,
// regardless of surrounding query parameters.
func TestResolveSameIDAcrossShapes(t *testing.T) {
	const want = "abc_DEF-123"

	references := []string{
		"https://www.youtube.com/watch?v=abc_DEF-123",
		"https://www.youtube.com/watch?v=abc_DEF-123&feature=share",
		"https://youtu.be/abc_DEF-123",
		"https://youtu.be/abc_DEF-123?t=10",
		"https://www.youtube.com/embed/abc_DEF-123",
		"https://www.youtube.com/shorts/abc_DEF-123",
		"https://www.youtube.com/v/abc_DEF-123#fragment",
	}

	for _, ref := range references {
		got, err := Resolve(ref)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", ref, err)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	ref := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1s"

	first, err := Resolve(ref)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := Resolve(ref)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Errorf("Resolve() not deterministic: %q != %q", first, second)
	}
}

func TestValid(t *testing.T) {
	if !Valid("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("Valid() = false for a proper reference")
	}
	if Valid("not a link") {
		t.Error("Valid() = true for garbage")
	}
}
