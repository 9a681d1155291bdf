// Package statemachine holds the per-asset-class processing state machines.
//
// A state machine is pure reference data: an ordered sequence of state
// descriptors whose insertion order IS the progression path an order walks
// from initiation to completion. Definitions are immutable after construction
// and safely shared by all callers without locking; changing the processing
// rules of a deployment means building a new Catalog, never patching one.
package statemachine
