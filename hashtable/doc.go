/*
Package hashtable provides the custom hash table family used across
hacknet: a bounded linear-probe table keyed by a single string, a
two-level table keyed by a (key1, key2) pair, and a recursive table
that resolves collisions by nesting itself on successive key
characters.

All tables are single-writer structures. None of them locks
internally; callers needing concurrent access must serialize outside.
*/
package hashtable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hacknet.hashtable'
func tracer() tracing.Trace {
	return tracing.Select("hacknet.hashtable")
}
