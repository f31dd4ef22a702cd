/*
Package vlist implements an ordered container of named typed values:
a mapping from unique case-insensitive names to scalar values of eight
kinds (bool, int32, int64, float, date/time, fixed-point currency, text,
and opaque pointer handles).

It is meant for passing an arbitrary, runtime-determined bag of parameters
between two pieces of code that cannot share a compile-time-known struct,
without resorting to untyped variant arrays.

We implement:

1. Ordered storage with index- and name-based access. Names are unique
under Unicode simple case folding; lookup is a linear scan.

2. Typed accessors with create-on-write semantics: setting an unknown name
creates a slot of the requested kind, setting an existing name of a
different kind fails with ErrTypeMismatch.

3. Structural operations: Add, Insert, Move, Exchange, Delete, Remove,
Clear, and explicit capacity control via SetCap.

4. Change notifications on two independent channels per event (an Observer
interface plus free-function callbacks), with batched delivery: between
BeginUpdate and EndUpdate, list changes coalesce into a single
notification, and value changes replay once per distinct slot in ascending
index order.

Lists are not safe for concurrent use; callers needing shared access must
serialize externally. Notification callbacks run synchronously on the
mutating goroutine and may reenter the list.

Serialization and persistence are deliberately outside the core: see the
pack and stash subpackages.
*/
package vlist
