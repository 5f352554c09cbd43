package model

import (
	"fmt"
	"time"
)

// SessionCapacity is the maximum number of transactions a session may hold.
// A full head session forces the aggregator to open a fresh one.
const SessionCapacity = 10

// Session is a bounded batch of consecutive transactions.
// Transactions is kept most-recent-first; the session list itself is kept
// most-recently-created-first, with the head being the only appendable one.
type Session struct {
	SessionID    string        `json:"session_id"`
	Transactions []Transaction `json:"transactions"`
}

// Full reports whether the session reached capacity.
func (s Session) Full() bool {
	return len(s.Transactions) >= SessionCapacity
}

// NewSessionID derives the composite session key from its creation date,
// business name, cashier and a zero-padded per-run sequence number.
func NewSessionID(date time.Time, businessName, cashier string, seq int) string {
	return fmt.Sprintf("%s_%s_%s_%04d", date.Format("20060102"), businessName, cashier, seq)
}
