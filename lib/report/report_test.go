// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// decodeLines parses each line of output as a JSON object.
func decodeLines(t *testing.T, output string) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("line %q is not a JSON object: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}

func keys(record map[string]any) []string {
	var result []string
	for key := range record {
		result = append(result, key)
	}
	return result
}

func TestVersionRecord(t *testing.T) {
	var buffer bytes.Buffer
	New(&buffer).Version("1.2.3")

	if got, want := buffer.String(), `{"zpv_version":"1.2.3"}`+"\n"; got != want {
		t.Errorf("version record = %q, want %q", got, want)
	}
}

func TestStatsRecord(t *testing.T) {
	var buffer bytes.Buffer
	New(&buffer).Stats(Stats{
		At:         epoch.Add(1250 * time.Millisecond),
		StdinWait:  12*time.Millisecond + 900*time.Microsecond,
		StdoutWait: 840 * time.Millisecond,
		Total:      1250 * time.Millisecond,
		BytesOut:   65536,
	})

	want := `{"utc_time":"2026-01-01 00:00:01.250","stdin_wait_ms":12,"stdout_wait_ms":840,"total_time_ms":1250,"bytes_out":65536}` + "\n"
	if got := buffer.String(); got != want {
		t.Errorf("stats record =\n%s\nwant\n%s", got, want)
	}
}

func TestInfoRecord(t *testing.T) {
	var buffer bytes.Buffer
	New(&buffer).Info(epoch.Add(2*time.Second), "stalled while writing")

	records := decodeLines(t, buffer.String())
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := map[string]any{
		"utc_time": "2026-01-01 00:00:02.000",
		"msg":      "stalled while writing",
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("info record = %v, want %v", records[0], want)
	}
}

func TestExitRecord(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		message  string
		errno    int
		hasErrno bool
		want     map[string]any
	}{
		{
			name:    "success",
			status:  Success,
			message: "end of input",
			want: map[string]any{
				"utc_time":    "2026-01-01 00:00:00.000",
				"exit_status": "Success",
				"msg":         "end of input",
			},
		},
		{
			name:     "error with errno",
			status:   Error,
			message:  "writing stdout: broken pipe",
			errno:    32,
			hasErrno: true,
			want: map[string]any{
				"utc_time":    "2026-01-01 00:00:00.000",
				"exit_status": "Error",
				"msg":         "writing stdout: broken pipe",
				"errno":       float64(32),
			},
		},
		{
			name:    "error without errno",
			status:  Error,
			message: "write to stdout made no progress",
			want: map[string]any{
				"utc_time":    "2026-01-01 00:00:00.000",
				"exit_status": "Error",
				"msg":         "write to stdout made no progress",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			New(&buffer).Exit(epoch, test.status, test.message, test.errno, test.hasErrno)

			records := decodeLines(t, buffer.String())
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if !reflect.DeepEqual(records[0], test.want) {
				t.Errorf("exit record = %v, want %v", records[0], test.want)
			}
		})
	}
}

func TestExitRecordFieldOrder(t *testing.T) {
	var buffer bytes.Buffer
	New(&buffer).Exit(epoch, Error, "reading stdin: input/output error", 5, true)

	want := `{"utc_time":"2026-01-01 00:00:00.000","exit_status":"Error","msg":"reading stdin: input/output error","errno":5}` + "\n"
	if got := buffer.String(); got != want {
		t.Errorf("exit record =\n%s\nwant\n%s", got, want)
	}
}

func TestRecordsHaveNoHandlerBuiltins(t *testing.T) {
	var buffer bytes.Buffer
	reporter := New(&buffer)
	reporter.Version("1.0.0")
	reporter.Stats(Stats{At: epoch})
	reporter.Info(epoch, "hello")
	reporter.Exit(epoch, Success, "done", 0, false)

	for _, record := range decodeLines(t, buffer.String()) {
		for _, key := range []string{"time", "level"} {
			if _, present := record[key]; present {
				t.Errorf("record %v has handler builtin %q (keys %v)", record, key, keys(record))
			}
		}
	}
}

func TestFormatTimeConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2026, 3, 4, 10, 30, 15, 123_456_789, zone)
	if got, want := FormatTime(local), "2026-03-04 05:30:15.123"; got != want {
		t.Errorf("FormatTime = %q, want %q", got, want)
	}
}
