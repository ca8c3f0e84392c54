// Released under an MIT license. See LICENSE.

// Package level provides the registry of named dynamic bodies the
// console's native bindings operate on.
package level

import (
	"github.com/ashmeltin/nothing/internal/game/vec"
)

// RigidRect is a named dynamic body that accumulates applied forces.
type RigidRect struct {
	name  string
	force vec.T
}

// Name returns the name the body is registered under.
func (r *RigidRect) Name() string {
	return r.name
}

// ApplyForce adds f to the force accumulated on the body.
func (r *RigidRect) ApplyForce(f vec.T) {
	r.force = vec.Sum(r.force, f)
}

// Force returns the force accumulated on the body since the last reset.
func (r *RigidRect) Force() vec.T {
	return r.force
}

// ResetForce clears the accumulated force. The simulation calls this
// after integrating a step.
func (r *RigidRect) ResetForce() {
	r.force = vec.T{}
}

// T (level) is a registry of named dynamic bodies.
type T struct {
	rects map[string]*RigidRect
}

type level = T

// New creates an empty level.
func New() *T {
	return &level{rects: map[string]*RigidRect{}}
}

// AddRigidRect registers a body under name and returns it.
// Registering a name twice returns the existing body.
func (l *level) AddRigidRect(name string) *RigidRect {
	if r, ok := l.rects[name]; ok {
		return r
	}

	r := &RigidRect{name: name}
	l.rects[name] = r

	return r
}

// RigidRect returns the body registered under name, or nil.
func (l *level) RigidRect(name string) *RigidRect {
	return l.rects[name]
}
