package diagnostics

import (
	"strings"
	"testing"
)

func TestStackAddIsImmutable(t *testing.T) {
	base := NewStack()
	withFrame := base.Add("evaluating")

	if len(base.Items()) != 0 {
		t.Fatalf("base stack gained frames: %v", base.Items())
	}
	if len(withFrame.Items()) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(withFrame.Items()))
	}
}

func TestStackItemsInnermostFirst(t *testing.T) {
	s := NewStack().Add("outer").Add("inner")

	items := s.Items()
	if items[0].Label != "inner" || items[1].Label != "outer" {
		t.Fatalf("expected innermost first, got %v", items)
	}
}

func TestQueuedLocationAttachesToNextFrameOnly(t *testing.T) {
	loc := AtSource("main.wpl", 3, 7)
	s := NewStack().QueueLocation(loc).Add("first").Add("second")

	items := s.Items()
	second, first := items[0], items[1]
	if first.Location == nil || first.Location.String() != "main.wpl:3:7" {
		t.Fatalf("queued location not attached to first frame: %v", first)
	}
	if second.Location != nil {
		t.Fatalf("queued location leaked to second frame: %v", second)
	}
}

func TestExplicitLocationBeatsQueued(t *testing.T) {
	queued := AtSource("a.wpl", 1, 1)
	explicit := AtBuiltin("new")
	s := NewStack().QueueLocation(queued).AddLocated("frame", &explicit)

	items := s.Items()
	if items[0].Location.String() != "new" {
		t.Fatalf("expected explicit location, got %v", items[0].Location)
	}
}

func TestDisableRecordingMakesAddANoOp(t *testing.T) {
	s := NewStack().Add("kept").DisableRecording().Add("dropped")

	items := s.Items()
	if len(items) != 1 || items[0].Label != "kept" {
		t.Fatalf("expected only the first frame, got %v", items)
	}
}

func TestErrorStringIncludesFrames(t *testing.T) {
	s := NewStack().Add("outer").Add("inner")
	err := NewError("boom", s)

	text := err.Error()
	if !strings.HasPrefix(text, "boom") {
		t.Fatalf("message missing: %q", text)
	}
	if strings.Index(text, "inner") > strings.Index(text, "outer") {
		t.Fatalf("frames not innermost first: %q", text)
	}
}

func TestIntoErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		state *ReturnState
		want  string
	}{
		{"return", ReturnFromBlock(), "'return' outside block"},
		{"break", BreakOutOfLoop(), "'break' outside loop"},
		{"error", NewErrorState(NewError("boom", NewStack())), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IntoError(NewStack()).Message; got != tt.want {
				t.Errorf("IntoError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceLocationString(t *testing.T) {
	tests := []struct {
		loc  SourceLocation
		want string
	}{
		{AtBuiltin("do"), "do"},
		{AtSource("", 2, 5), "2:5"},
		{AtSource("main.wpl", 2, 5), "main.wpl:2:5"},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
