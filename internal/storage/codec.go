package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// Encode writes one comma-delimited line per record in the order
// id, holderName, classCode, balance.
func Encode(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		row := []string{r.ID, r.HolderName, strconv.Itoa(r.Class), r.Balance.String()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode parses the flat snapshot format back into records. Rows with the
// wrong field count, an unknown class code, or an unparseable balance are
// errors; the snapshot is the only durable state and a bad row means a
// corrupt file, not something to skip.
func Decode(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		class, err := strconv.Atoi(row[2])
		if err != nil || class < 0 || class > 1 {
			return nil, fmt.Errorf("line %d: bad account class code %q", line, row[2])
		}
		balance, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad balance %q: %w", line, row[3], err)
		}

		records = append(records, Record{
			ID:         row[0],
			HolderName: row[1],
			Class:      class,
			Balance:    balance,
		})
	}
	return records, nil
}
