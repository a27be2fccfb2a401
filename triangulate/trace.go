package triangulate

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

func init() {
	// Names are assigned in call order, so make them nondeterministic to
	// remind whoever is watching that the same name doesn't mean the same
	// object between runs.
	petname.NonDeterministicMode()
}

// Tracer receives human-readable progress notes during trapezoidation and
// triangulation. Passing one via WithTracer is purely a debugging aid; it
// has no effect on the result.
type Tracer interface {
	Tracef(format string, args ...interface{})
	NameEdge(e *Segment) string
}

// nopTracer is the default: tracing costs nothing unless asked for.
type nopTracer struct{}

func (nopTracer) Tracef(string, ...interface{}) {}
func (nopTracer) NameEdge(*Segment) string      { return "" }

// ConsoleTracer passes one line per Tracef call to Out; when Out is nil,
// Tracef writes nothing (this package never touches a stream directly).
// Colors appear only in the names: edges and trapezoids are given stable,
// readable, colorized petname-style labels instead of pointer addresses,
// following the original tool's debug-naming convention.
type ConsoleTracer struct {
	Out func(string)

	names map[interface{}]string
}

func NewConsoleTracer(out func(string)) *ConsoleTracer {
	return &ConsoleTracer{Out: out, names: make(map[interface{}]string)}
}

func (c *ConsoleTracer) Tracef(format string, args ...interface{}) {
	if c.Out == nil {
		return
	}
	c.Out(fmt.Sprintf(format, args...))
}

func (c *ConsoleTracer) NameEdge(e *Segment) string {
	name := c.name(e)
	if e.IsHorizontal() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

// NameTrapezoid labels a trapezoid the way the original tool's debug
// renderer did: cyan for unbounded, red for degenerate (zero height), green
// otherwise.
func (c *ConsoleTracer) NameTrapezoid(t *Trapezoid) string {
	name := c.name(t)
	switch {
	case t.Top == nil || t.Bottom == nil || t.LeftEdge == nil || t.RightEdge() == nil:
		return aurora.Cyan(name).String()
	case Equal(t.Top.Y, t.Bottom.Y):
		return aurora.Red(name).String()
	default:
		return aurora.Green(name).String()
	}
}

func (c *ConsoleTracer) name(obj interface{}) string {
	if r, ok := c.names[obj]; ok {
		return r
	}
	r := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	c.names[obj] = r
	return r
}
