package diagnostics

import "fmt"

// Error is the only user-visible diagnostic: a message plus a snapshot of
// the stack at the point it was raised.
type Error struct {
	Message string
	Stack   Stack
}

// NewError constructs an Error, snapshotting the given stack.
func NewError(message string, stack Stack) *Error {
	return &Error{Message: message, Stack: stack}
}

// Errorf is NewError with fmt.Sprintf-style formatting.
func Errorf(stack Stack, format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...), stack)
}

func (e *Error) Error() string {
	trace := e.Stack.String()
	if trace == "" {
		return e.Message
	}
	return e.Message + "\n" + trace
}

// ReturnKind distinguishes the three non-ordinary evaluation outcomes.
type ReturnKind int

const (
	// ReturnKindError carries a user-visible Error.
	ReturnKindError ReturnKind = iota
	// ReturnKindReturnFromBlock unwinds to the nearest enclosing block.
	ReturnKindReturnFromBlock
	// ReturnKindBreakOutOfLoop unwinds to the nearest enclosing loop.
	ReturnKindBreakOutOfLoop
)

// ReturnState is the non-ordinary outcome of an evaluation. Only Error is
// user-visible; ReturnFromBlock and BreakOutOfLoop are caught at
// well-defined boundaries and converted to errors if they escape to the
// top level.
type ReturnState struct {
	Kind ReturnKind
	Err  *Error
}

func (rs *ReturnState) Error() string {
	switch rs.Kind {
	case ReturnKindReturnFromBlock:
		return "'return' outside block"
	case ReturnKindBreakOutOfLoop:
		return "'break' outside loop"
	default:
		return rs.Err.Error()
	}
}

// NewErrorState wraps an Error as a ReturnState.
func NewErrorState(err *Error) *ReturnState {
	return &ReturnState{Kind: ReturnKindError, Err: err}
}

// ErrorStatef is NewErrorState with formatting, snapshotting stack.
func ErrorStatef(stack Stack, format string, args ...any) *ReturnState {
	return NewErrorState(Errorf(stack, format, args...))
}

// ReturnFromBlock is the control-flow state produced by a 'return'
// expression; it is caught at the nearest Block boundary.
func ReturnFromBlock() *ReturnState {
	return &ReturnState{Kind: ReturnKindReturnFromBlock}
}

// BreakOutOfLoop is the control-flow state produced by a 'break'
// expression; it is caught at the nearest loop boundary.
func BreakOutOfLoop() *ReturnState {
	return &ReturnState{Kind: ReturnKindBreakOutOfLoop}
}

// IntoError converts a stray ReturnFromBlock/BreakOutOfLoop that reached
// the top level into a user-visible Error. Error states pass through
// unchanged.
func (rs *ReturnState) IntoError(stack Stack) *Error {
	switch rs.Kind {
	case ReturnKindReturnFromBlock:
		return NewError("'return' outside block", stack)
	case ReturnKindBreakOutOfLoop:
		return NewError("'break' outside loop", stack)
	default:
		return rs.Err
	}
}
