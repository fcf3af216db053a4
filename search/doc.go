/*
Package search turns key comparisons into placement decisions on a sentinel
tree.

A Policy knows how to extract a key from a node payload and how to compare keys.
It descends a sentinel.Tree to find nodes, to compute insertion points and to
delimit bounded ranges. Whether duplicate keys are accepted is decided here, and
only here, by the policy's Mode.

Every operation takes the tree as an argument; a policy carries no tree state
of its own.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package search
