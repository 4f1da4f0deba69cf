package storage

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Record is one persisted account row: id, holder name, class code, and
// balance. Class codes follow the account class ordinals: 0 for Savings,
// 1 for Current. Credentials and transaction history are not persisted.
type Record struct {
	ID         string
	HolderName string
	Class      int
	Balance    decimal.Decimal
}

// RecordsFromSummaries converts a ledger snapshot into persistable records.
func RecordsFromSummaries(summaries []ledger.Summary) []Record {
	out := make([]Record, len(summaries))
	for i, s := range summaries {
		out[i] = Record{
			ID:         s.ID,
			HolderName: s.HolderName,
			Class:      int(s.Class),
			Balance:    s.Balance,
		}
	}
	return out
}

// SummariesFromRecords converts loaded records into ledger restore seeds.
func SummariesFromRecords(records []Record) []ledger.Summary {
	out := make([]ledger.Summary, len(records))
	for i, r := range records {
		out[i] = ledger.Summary{
			ID:         r.ID,
			HolderName: r.HolderName,
			Class:      ledger.Class(r.Class),
			Balance:    r.Balance,
		}
	}
	return out
}
