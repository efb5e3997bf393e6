package diagnostics

import "strings"

// StackItem is a single diagnostic frame: a human-readable label and an
// optional source location.
type StackItem struct {
	Label    string
	Location *SourceLocation
}

func (item StackItem) String() string {
	if item.Location == nil {
		return item.Label
	}
	return item.Label + " (" + item.Location.String() + ")"
}

// Stack is an immutable chain of diagnostic frames. Add returns a new
// Stack; the receiver is never mutated.
type Stack struct {
	items            []StackItem
	queuedLocation   *SourceLocation
	recordingEnabled bool
}

// NewStack returns an empty, recording stack.
func NewStack() Stack {
	return Stack{recordingEnabled: true}
}

// QueueLocation sets the location that will be attached to the next frame
// pushed via Add, if that frame doesn't already carry one. It is cleared
// after that push.
func (s Stack) QueueLocation(loc SourceLocation) Stack {
	s.queuedLocation = &loc
	return s
}

// DisableRecording stops Add from pushing any further frames onto this
// stack and every stack derived from it: Add on a disabled stack returns it
// unchanged, still disabled.
func (s Stack) DisableRecording() Stack {
	s.recordingEnabled = false
	return s
}

// Add pushes a frame with the given label, no location unless one is
// queued. It is a no-op (returns an equivalent stack) when recording is
// disabled.
func (s Stack) Add(label string) Stack {
	return s.AddLocated(label, nil)
}

// AddLocated pushes a frame with an explicit location. If loc is nil and a
// location was queued, the queued location is used instead.
func (s Stack) AddLocated(label string, loc *SourceLocation) Stack {
	if !s.recordingEnabled {
		return s
	}

	if loc == nil {
		loc = s.queuedLocation
	}

	items := make([]StackItem, len(s.items), len(s.items)+1)
	copy(items, s.items)
	items = append(items, StackItem{Label: label, Location: loc})

	return Stack{items: items, recordingEnabled: true}
}

// Items returns the frames, innermost (most recently pushed) first.
func (s Stack) Items() []StackItem {
	out := make([]StackItem, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}
	return out
}

func (s Stack) String() string {
	var b strings.Builder
	for i, item := range s.Items() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("    ")
		b.WriteString(item.String())
	}
	return b.String()
}
