/*
Package alloc provides the node-allocator capability consumed by ordered
containers.

An Allocator hands out tree nodes and takes them back. Construction (placing a
payload into a node) and destruction (clearing it) are separate steps, so that a
container can prepare a candidate node completely before it touches any tree
link, and can give the node back unchanged if it turns out not to be needed.

Three allocators are provided:

  - Heap, which relies on the Go garbage collector,
  - FreeList, which recycles a bounded number of released nodes,
  - Limited, which wraps another allocator and fails once a budget of live
    nodes is exhausted.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
