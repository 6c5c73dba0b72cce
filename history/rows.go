package history

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

// RowHeader lists the export columns. Each cell is exactly the record
// field name, with no added punctuation, so external tabular consumers
// can map columns to fields directly.
var RowHeader = []string{
	"call_num",
	"logged_num",
	"name",
	"chain",
	"args",
	"kwargs",
	"retval",
	"elapsed_secs",
	"timestamp",
}

// Rows renders records as a header row followed by one row per record,
// oldest first.
func Rows(records []Record) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), RowHeader...))
	for i := range records {
		rows = append(rows, recordRow(&records[i]))
	}
	return rows
}

func recordRow(r *Record) []string {
	return []string{
		strconv.FormatUint(r.CallNum, 10),
		strconv.FormatUint(r.LoggedNum, 10),
		r.Name,
		strings.Join(r.Chain, ", "),
		r.Args,
		r.Kwargs,
		r.Retval,
		strconv.FormatFloat(r.ElapsedSecs, 'f', -1, 64),
		r.Timestamp.Format(time.RFC3339Nano),
	}
}

// WriteCSV writes records to w in CSV form, header first.
func WriteCSV(w io.Writer, records []Record) error {
	return csv.NewWriter(w).WriteAll(Rows(records))
}
