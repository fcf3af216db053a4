/*
Package sentinel provides the structural engine for ordered containers: a binary
search tree terminated by a payload-less header node.

The package knows nothing about keys. It maintains links only:

  - every real node has a parent link; the root's parent is the header,
  - the header caches the root, the leftmost and the rightmost node,
  - the leftmost node's left link and the rightmost node's right link point back
    to the header, closing the in-order sequence into a ring,
  - an empty tree consists of the header alone, linking to itself in all three
    directions.

With this layout "one past the end" and "one before the beginning" are the same
node, and in-order stepping (Next, Prev) never needs recursion or an explicit
stack. Placement decisions are made by clients (see package search); this package
only attaches nodes where it is told and removes nodes it is given.

The tree never rebalances. Depth is whatever the insertion order produces.

Nodes are owned by the client, not by the tree. Removal always unlinks exactly the
node named by the caller: when a node with two children is removed, it trades link
roles with its in-order predecessor instead of trading payloads, so that any
reference held to the predecessor stays valid and keeps its payload.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sentinel

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
