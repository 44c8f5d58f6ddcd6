package debug

import "testing"

func TestTreeWriter_Empty(t *testing.T) {
	if got := NewTreeWriter().String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root %d", 1)
	tw.Line(2, "%s", "deep")

	want := "root 1\n    deep\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Node(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		attrs []string
		want  string
	}{
		{"label only", 0, "Document", nil, "Document\n"},
		{"attributes", 1, "Paragraph", []string{"implicit", "format{textAlign=start}"}, "  Paragraph implicit format{textAlign=start}\n"},
		{"empty attributes skipped", 2, "Text", []string{"", "selected", ""}, "    Text selected\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Node(tt.depth, tt.label, tt.attrs...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Node() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_SharedBuffer(t *testing.T) {
	tw := NewTreeWriter()
	cp := *tw
	cp.Node(0, "a")
	tw.Node(1, "b")

	if got, want := tw.String(), "a\n  b\n"; got != want {
		t.Errorf("copies must write to the same tree, got %q", got)
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", `"abc"`},
		{" a\tb ", `" a\tb "`},
		{"\u00a0", `"\u00a0"`},
		{"\u200b", `"\u200b"`},
		{"line\nbreak", `"line\nbreak"`},
	}
	for _, tt := range tests {
		if got := EncodeText(tt.input); got != tt.want {
			t.Errorf("EncodeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
