// Package transaction provides the order lifecycle aggregate and its history
// ledger. A Transaction is the mutable record of one asset order walking the
// state machine of its asset class; every transition appends exactly one
// HistoryEntry to the append-only ledger owned by the record.
//
// The aggregate enforces the transition rules itself:
//   - Advance moves strictly one catalog state forward (registrar only)
//   - Fail jumps to the sentinel "failed" state (registrar or owner)
//   - Cancel flips status without touching the catalog position (owner only)
//
// All precondition checks happen before any mutation, so a rejected operation
// leaves both the record and the ledger untouched. Persistence of the mutated
// record together with the new ledger entry as one atomic unit is the
// repository's contract, not the aggregate's.
package transaction
