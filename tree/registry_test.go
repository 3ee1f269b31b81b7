package tree

import (
	"io"
	"slices"
	"testing"
)

type stubParser struct{ name string }

func (p stubParser) Name() string                  { return p.name }
func (p stubParser) Description() string           { return "stub" }
func (p stubParser) Parse(io.Reader) (Node, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubParser{name: "xml"})
	r.Register(stubParser{name: "HTML"})

	tests := []struct {
		name    string
		lookup  string
		wantErr bool
	}{
		{name: "exact", lookup: "xml"},
		{name: "case folded", lookup: "XML"},
		{name: "registered upper", lookup: "html"},
		{name: "unknown", lookup: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.GetParser(tt.lookup)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GetParser(%q) expected error", tt.lookup)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetParser(%q) error: %v", tt.lookup, err)
			}
			if p == nil {
				t.Fatalf("GetParser(%q) returned nil parser", tt.lookup)
			}
		})
	}

	if got, want := r.List(), []string{"html", "xml"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
