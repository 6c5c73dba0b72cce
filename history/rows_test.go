package history

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRows_HeaderIsBareFieldNames(t *testing.T) {
	rows := Rows(nil)
	if len(rows) != 1 {
		t.Fatalf("Rows(nil) len = %d, want header only", len(rows))
	}

	want := []string{"call_num", "logged_num", "name", "chain", "args", "kwargs", "retval", "elapsed_secs", "timestamp"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("header = %v, want %v", rows[0], want)
	}
	for _, cell := range rows[0] {
		if strings.ContainsAny(cell, `"'= `) {
			t.Errorf("header cell %q carries decoration", cell)
		}
	}
}

func TestRows_RecordRendering(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	records := []Record{{
		CallNum:     7,
		LoggedNum:   3,
		Name:        "Point.scale",
		Chain:       []string{"main", "resize"},
		Args:        "factor=2",
		Kwargs:      "mode=\"fast\", y=10",
		Retval:      "4",
		ElapsedSecs: 0.125,
		Timestamp:   ts,
	}}

	rows := Rows(records)
	if len(rows) != 2 {
		t.Fatalf("Rows() len = %d, want 2", len(rows))
	}

	want := []string{"7", "3", "Point.scale", "main, resize", "factor=2", "mode=\"fast\", y=10", "4", "0.125", "2026-03-01T10:30:00Z"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestWriteCSV(t *testing.T) {
	records := []Record{{
		CallNum:   1,
		LoggedNum: 1,
		Name:      "f",
		Args:      "x=1",
		Kwargs:    "y=3",
		Retval:    "11",
		Timestamp: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV line count = %d, want 2", len(lines))
	}
	if lines[0] != "call_num,logged_num,name,chain,args,kwargs,retval,elapsed_secs,timestamp" {
		t.Errorf("CSV header = %q, want unquoted field names", lines[0])
	}
	if !strings.Contains(lines[1], "x=1") || !strings.Contains(lines[1], "y=3") {
		t.Errorf("CSV row = %q, missing argument renderings", lines[1])
	}
}
