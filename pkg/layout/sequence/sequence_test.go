package sequence

import (
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
)

func TestBuildPlacesActorsAndMessages(t *testing.T) {
	m := &diagram.SequenceModel{
		Config: diagram.DefaultConfig(),
		Actors: []diagram.Actor{
			{ID: "alice", Label: "Alice"},
			{ID: "bob", Label: "Bob"},
		},
		Entries: []diagram.Entry{
			{Message: &diagram.Message{From: "alice", To: "bob", Label: "hello", Arrow: diagram.ArrowSolid}},
			{Message: &diagram.Message{From: "bob", To: "alice", Label: "hi", Arrow: diagram.ArrowDotted}},
		},
	}
	l := Build(m)
	if len(l.Actors) != 2 {
		t.Fatalf("len(Actors) = %d, want 2", len(l.Actors))
	}
	if len(l.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(l.Messages))
	}
	if l.Messages[1].Y <= l.Messages[0].Y {
		t.Errorf("second message Y = %v, want > first message Y = %v", l.Messages[1].Y, l.Messages[0].Y)
	}
	if l.Width <= 0 || l.Height <= 0 {
		t.Errorf("non-positive layout extent: %v x %v", l.Width, l.Height)
	}
}

func TestBuildTracksActivationSpan(t *testing.T) {
	m := &diagram.SequenceModel{
		Config: diagram.DefaultConfig(),
		Actors: []diagram.Actor{{ID: "a"}, {ID: "b"}},
		Entries: []diagram.Entry{
			{Message: &diagram.Message{From: "a", To: "b", Activation: diagram.ActivationStart}},
			{Message: &diagram.Message{From: "b", To: "a", Label: "reply"}},
			{Message: &diagram.Message{From: "a", To: "b", Activation: diagram.ActivationEnd}},
		},
	}
	l := Build(m)
	if len(l.Activations) != 1 {
		t.Fatalf("len(Activations) = %d, want 1", len(l.Activations))
	}
	act := l.Activations[0]
	if act.Bottom <= act.Top {
		t.Errorf("activation Bottom %v should be after Top %v", act.Bottom, act.Top)
	}
}

func TestBuildOpensAndClosesBlockFrame(t *testing.T) {
	blk := &diagram.Block{
		Kind: diagram.BlockAlt,
		Sections: []diagram.BlockSection{
			{Label: "alt success", FromMessageIdx: 0},
			{Label: "else failure", FromMessageIdx: 1},
		},
	}
	m := &diagram.SequenceModel{
		Config: diagram.DefaultConfig(),
		Actors: []diagram.Actor{{ID: "a"}, {ID: "b"}},
		Entries: []diagram.Entry{
			{Block: blk},
			{Message: &diagram.Message{From: "a", To: "b", Label: "ok"}},
			{Message: &diagram.Message{From: "b", To: "a", Label: "fail"}},
			{Block: blk},
		},
	}
	l := Build(m)
	if len(l.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(l.Blocks))
	}
	b := l.Blocks[0]
	if b.Bottom <= b.Top {
		t.Errorf("block Bottom %v should be after Top %v", b.Bottom, b.Top)
	}
	if len(b.Sections) != 2 {
		t.Errorf("len(Sections) = %d, want 2", len(b.Sections))
	}
	if b.Right <= b.Left {
		t.Errorf("block frame has non-positive width: left=%v right=%v", b.Left, b.Right)
	}
}

func TestBuildPlacesNoteBetweenActors(t *testing.T) {
	m := &diagram.SequenceModel{
		Config: diagram.DefaultConfig(),
		Actors: []diagram.Actor{{ID: "a"}, {ID: "b"}},
		Entries: []diagram.Entry{
			{Note: &diagram.Note{Actors: []string{"a", "b"}, Text: "both see this"}},
		},
	}
	l := Build(m)
	if len(l.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(l.Notes))
	}
	if l.Notes[0].Width <= 0 {
		t.Errorf("note has non-positive width")
	}
}
