package simdcsv

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
)

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string // raw field bytes, quotes preserved
	}{
		{
			name:  "two records",
			input: "a,b\nc,d\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "no trailing newline",
			input: "a,b,c",
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "trailing comma",
			input: "a,",
			want:  [][]string{{"a", ""}},
		},
		{
			name:  "empty fields",
			input: ",,\n",
			want:  [][]string{{"", "", ""}},
		},
		{
			name:  "quoted field kept raw",
			input: "\"a,b\",c\n",
			want:  [][]string{{"\"a,b\"", "c"}},
		},
		{
			name:  "doubled quote kept raw",
			input: "\"a\"\"b\"\n",
			want:  [][]string{{"\"a\"\"b\""}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.input)
			pcsv := mustFindIndexes(t, data)
			got := pcsv.SplitRecords(data)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for r, wantRec := range tt.want {
				gotRec := make([]string, len(got[r]))
				for f, b := range got[r] {
					gotRec[f] = string(b)
				}
				if !reflect.DeepEqual(gotRec, wantRec) {
					t.Errorf("record %d = %q, want %q", r, gotRec, wantRec)
				}
			}
		})
	}
}

// On unquoted input, raw fields match encoding/csv exactly.
func TestSplitRecordsMatchesStdlib(t *testing.T) {
	data := generateSimpleCSV(100, 6)

	pcsv := mustFindIndexes(t, data)
	got := pcsv.SplitRecords(data)

	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	want, err := r.ReadAll()
	if err != nil {
		t.Fatalf("encoding/csv error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d records, stdlib has %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("record %d: got %d fields, stdlib has %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if string(got[i][j]) != want[i][j] {
				t.Errorf("record %d field %d = %q, stdlib has %q", i, j, got[i][j], want[i][j])
			}
		}
	}
}
