/*
Package compare provides the comparator capability for ordered containers.

A comparator is a Less function implementing a strict weak ordering. Two keys a
and b are equivalent if neither is less than the other.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package compare
