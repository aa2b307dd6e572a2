// Package identity provides an explicit, single-writer identifier
// allocator for in-memory entities. Passing a *Sequence to the code that
// creates entities makes the non-thread-safe allocation discipline a
// visible part of the API instead of hidden global state.
package identity
