/*
Package route implements persistent branching routes over computers
and the traversal policies (viruses) that walk them.

Routes are never mutated: every edit returns a new route sharing the
untouched substructure with the original. There are no back-references
and no cycles, so separate traversals can read the same route without
coordination.
*/
package route

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hacknet.route'
func tracer() tracing.Trace {
	return tracing.Select("hacknet.route")
}
