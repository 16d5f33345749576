// internal/component/effect.go
package component

// Effect is a transient state attached to a creep. The engine constructs an
// effect, calls Init once and then Update once per tick until Done reports
// true.
type Effect interface {
	Init()
	Update()
	Done() bool
	// Target is the affected creep.
	Target() *Creep
	Kind() string
}
