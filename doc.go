/*
Package ordmap offers ordered associative containers: maps, multimaps, sets and
multisets, kept in key order by a comparator.

# Containers

All four container kinds share one engine. A Container owns a binary search tree
whose nodes carry the payloads (a key for sets, a key/value Entry for maps). The
tree is terminated by a header node, which serves as the end position and keeps
the minimum and maximum element at hand:

	Operation          |  Cost
	-------------------+----------------
	Begin, RBegin      |  O(1)
	Next, Prev         |  O(1) amortized
	Find, Insert       |  O(depth)
	Erase(position)    |  O(depth)
	Clear              |  O(n)
	Swap, Len          |  O(1)

The tree is not rebalanced. Its depth depends on insertion order and is n in the
worst case, e.g. for keys inserted in ascending order.

Unique-key containers (Map, Set) reject a key which is already present and
report the element found instead. Multi-key containers (MultiMap, MultiSet)
accept duplicates and keep equivalent keys next to each other, in insertion
order.

# Positions

An Iterator denotes one element of one container. It stays valid until that
element is erased, the container is cleared, or the container's content is
swapped away. Inserting or erasing other elements never invalidates it.

Using the end position, or a position belonging to another container, where an
element is required results in an error matching ErrOutOfRange.

Containers are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ordmap

import (
	"github.com/npillmayer/ordmap/alloc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the ordmap module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged whenever a position does not denote an element of
// the container it is used with: the end position, a zero Iterator, a position
// of another container, or a position whose element has been erased.
const ErrOutOfRange = ContainerError("position out of range")

// ErrKeyNotFound is flagged by lookups which require a key to be present.
const ErrKeyNotFound = ContainerError("key not found")

// ErrInvalidConfig is flagged for container configurations which cannot work.
const ErrInvalidConfig = ContainerError("invalid container configuration")

// ErrAllocationFailure is returned unchanged from a node allocator which
// cannot provide a node. The container is left as it was.
var ErrAllocationFailure = alloc.ErrAllocationFailure
