package model

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2025-06-10", wantErr: false},
		{input: "2025-12-31", wantErr: false},
		{input: "2025-13-01", wantErr: true},
		{input: "2025-06-40", wantErr: true},
		{input: "10-06-2025", wantErr: true},
		{input: "2025/06/10", wantErr: true},
		{input: "not-a-date", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		d, err := ParseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %v", tt.input, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if d.String() != tt.input {
			t.Errorf("ParseDate(%q).String() = %q", tt.input, d.String())
		}
	}
}

func TestDateOf_TruncatesToUTCDay(t *testing.T) {
	// 23:30 in UTC-5 is 04:30 the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2025, time.June, 10, 23, 30, 0, 0, loc)

	d := DateOf(instant)
	if d.String() != "2025-06-11" {
		t.Errorf("expected UTC date 2025-06-11, got %s", d)
	}
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2025, time.June, 10)
	later := NewDate(2025, time.June, 15)

	if !earlier.Before(later) {
		t.Error("expected June 10 before June 15")
	}
	if !later.After(earlier) {
		t.Error("expected June 15 after June 10")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date is neither before nor after itself")
	}
	if !earlier.Equal(NewDate(2025, time.June, 10)) {
		t.Error("expected equal dates to compare equal")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.June, 30)

	if got := d.AddDays(1).String(); got != "2025-07-01" {
		t.Errorf("expected month rollover to 2025-07-01, got %s", got)
	}
	if got := d.AddDays(-30).String(); got != "2025-05-31" {
		t.Errorf("expected 2025-05-31, got %s", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.June, 10)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2025-06-10"` {
		t.Errorf("expected quoted date string, got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", decoded, d)
	}
}

func TestDateJSON_RejectsNonString(t *testing.T) {
	var d Date

	for _, input := range []string{`20250610`, `null`, `"2025-06"`, `{}`} {
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("expected unmarshal of %s to fail", input)
		}
	}
}

// Dates must survive storage byte-for-byte: an off-by-one from a time zone
// conversion would silently shift booking intervals.
func TestDateBSON(t *testing.T) {
	d := NewDate(2025, time.June, 10)

	typ, data, err := bson.MarshalValue(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if typ != bson.TypeString {
		t.Fatalf("expected string BSON type, got %s", typ)
	}

	var stored string
	if err := bson.UnmarshalValue(typ, data, &stored); err != nil {
		t.Fatalf("failed to read stored value: %v", err)
	}
	if stored != "2025-06-10" {
		t.Errorf("expected stored ISO string 2025-06-10, got %q", stored)
	}

	var decoded Date
	if err := bson.UnmarshalValue(typ, data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", decoded, d)
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if NewDate(2025, time.June, 10).IsZero() {
		t.Error("a real date should not report IsZero")
	}
}
