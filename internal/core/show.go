package core

// Show is the payload of the "show" environment slot: a
// configurable sink invoked whenever user code prints a value. The driver
// installs the CLI's default (render via Text, newline to stdout); nothing
// in the core depends on what it actually does with the rendered text.
type Show func(text string)

// ShowKey declares the show slot. Children inherit the parent's sink
// unless they install their own; a nil sink (ShowKey's default) means no
// sink is configured and callers should treat that as a no-op.
var ShowKey = NewEnvironmentKey[Show](
	func() Show { return nil },
	func(parent, child Show) Show {
		if child != nil {
			return child
		}
		return parent
	},
	true,
)
