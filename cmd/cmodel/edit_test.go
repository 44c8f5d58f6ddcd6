package main

import (
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"cmodel/config"
	"cmodel/convert"
	"cmodel/edit"
	"cmodel/model"
)

func load(t *testing.T, src string) *model.Document {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	res, err := convert.LoadDocument(strings.NewReader(src), "text/html; charset=utf-8", &cfg.Conversion, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	return res.Document
}

// text renders paragraphs, caret is shown as "|".
func text(doc *model.Document) []string {
	var out []string
	for _, b := range doc.Blocks() {
		p, ok := b.(*model.Paragraph)
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, s := range p.Segments() {
			switch v := s.(type) {
			case *model.Text:
				sb.WriteString(v.Text)
			case *model.SelectionMarker:
				sb.WriteByte('|')
			case *model.Entity:
				sb.WriteString("{" + v.ID + "}")
			}
		}
		out = append(out, sb.String())
	}
	return out
}

func TestDeleteFromDocument(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dir  edit.Direction
		word bool
		want string
	}{
		{"range", "<div>a|bc|d</div>", edit.Selection, false, "a|d"},
		{"backward char", "<div>hello wor|ld</div>", edit.Backward, false, "hello wo|ld"},
		{"forward char", "<div>hello wor|ld</div>", edit.Forward, false, "hello wor|d"},
		{"backward word", "<div>hello wor|ld</div>", edit.Backward, true, "hello |ld"},
		{"collapsed selection only", "<div>ab|c</div>", edit.Selection, false, "ab|c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := load(t, tt.src)
			deleteFromDocument(doc, tt.dir, tt.word, false, true, zaptest.NewLogger(t))
			got := text(doc)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteFromDocument_Entities(t *testing.T) {
	src := `<div>a<span class="_Entity _EType_mention _EId_e1 _EReadonly_1">@x</span>|b</div>`

	kept := load(t, src)
	deleteFromDocument(kept, edit.Backward, false, true, true, zaptest.NewLogger(t))
	if got := text(kept); len(got) != 1 || got[0] != "a{e1}|b" {
		t.Errorf("kept entity: got %q", got)
	}

	removed := load(t, src)
	res := deleteFromDocument(removed, edit.Backward, false, false, true, zaptest.NewLogger(t))
	if got := text(removed); len(got) != 1 || got[0] != "a|b" {
		t.Errorf("removed entity: got %q", got)
	}
	if !res.IsChanged {
		t.Error("deletion must be reported")
	}
}

func TestDeletionSteps(t *testing.T) {
	if steps := deletionSteps(edit.Selection, true); len(steps) != 0 {
		t.Errorf("selection deletion has no extra steps, got %d", len(steps))
	}
	if steps := deletionSteps(edit.Forward, false); len(steps) != 1 {
		t.Errorf("expected single step, got %d", len(steps))
	}
	if steps := deletionSteps(edit.Backward, true); len(steps) != 2 {
		t.Errorf("word deletion falls back to character deletion, got %d steps", len(steps))
	}
}

func TestDirectionFlag(t *testing.T) {
	for _, name := range edit.DirectionNames() {
		d, err := edit.ParseDirection(name)
		if err != nil || d.String() != name {
			t.Errorf("ParseDirection(%q) = %v, %v", name, d, err)
		}
	}
	if d := deleteCommand().Flags[0].(*cli.StringFlag).Value; d != edit.Selection.String() {
		t.Errorf("default direction %q, want %q", d, edit.Selection)
	}
	if _, err := edit.ParseDirection("up"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
