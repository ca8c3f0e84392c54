// Released under an MIT license. See LICENSE.

// Package event describes the input events the console understands.
package event

// Kind is an event's type.
type Kind int

// Event kinds.
const (
	KeyDown Kind = iota + 1
	TextInput
)

// Code identifies a non-text key.
type Code int

// Key codes.
const (
	None Code = iota
	Commit
	Backspace
	Delete
	Left
	Right
	Home
	End
)

// T (event) is one input event.
type T struct {
	Kind Kind
	Code Code
	Rune rune
}

type event = T

// Key creates a key-down event for the code c.
func Key(c Code) *T {
	return &event{Kind: KeyDown, Code: c}
}

// Text creates a text input event for the rune r.
func Text(r rune) *T {
	return &event{Kind: TextInput, Rune: r}
}
