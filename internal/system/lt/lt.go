// Released under an MIT license. See LICENSE.

// Package lt provides a lifetime ledger for multi-step construction.
//
// Finalizers are pushed as resources are acquired and run in reverse
// order on release. A constructor that fails part way calls Release
// and every resource acquired so far is torn down, in dependency
// order, exactly once. Release is idempotent: finalizers never run
// twice, and a ledger can be released again without effect.
package lt

// T (lt) is a LIFO list of finalizers.
type T struct {
	finalizers []func()
}

type lt = T

// New creates an empty ledger.
func New() *T {
	return &lt{}
}

// Push registers the finalizer f. It will run when the ledger is
// released, after every finalizer pushed later than it.
func (l *lt) Push(f func()) {
	l.finalizers = append(l.finalizers, f)
}

// Release runs every registered finalizer in reverse order of
// registration and forgets them.
func (l *lt) Release() {
	finalizers := l.finalizers
	l.finalizers = nil

	for i := len(finalizers) - 1; i >= 0; i-- {
		finalizers[i]()
	}
}
