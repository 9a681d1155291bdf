package transaction

import "time"

// HistoryEntry is one line of the append-only audit ledger. Entries belong to
// exactly one transaction, are ordered by creation time ascending, and are
// never mutated, reordered, or deleted after append.
type HistoryEntry struct {
	TransactionID ID
	StateID       string
	Message       string
	Metadata      map[string]string
	Timestamp     time.Time
}
