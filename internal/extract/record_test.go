package extract

import (
	"testing"
)

func TestParseRecord_StrictJSON(t *testing.T) {
	raw := `{"Revenue": "100M", "Earnings": "", "OperatingMargin": "", "RevenueGrowthRates": "", "Guidance": ""}`
	obj, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["Revenue"] != "100M" {
		t.Errorf("expected Revenue=100M, got %v", obj["Revenue"])
	}
}

func TestParseRecord_CodeFenced(t *testing.T) {
	raw := "```json\n{\"Revenue\": \"$4.2B\"}\n```"
	obj, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["Revenue"] != "$4.2B" {
		t.Errorf("expected Revenue=$4.2B, got %v", obj["Revenue"])
	}
}

func TestParseRecord_RepairsSloppyJSON(t *testing.T) {
	// Single quotes and a trailing comma: invalid strict JSON, repairable.
	raw := `{'Revenue': '100M', 'Guidance': 'FY25 revenue of $450M',}`
	obj, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("expected repair to succeed, got error: %v", err)
	}
	if obj["Revenue"] != "100M" {
		t.Errorf("expected Revenue=100M, got %v", obj["Revenue"])
	}
}

func TestParseRecord_ProseIsMalformed(t *testing.T) {
	if _, err := ParseRecord("I cannot extract this."); err == nil {
		t.Fatal("expected error for non-JSON prose")
	}
}

func TestParseRecord_ScalarJSONIsMalformed(t *testing.T) {
	// A bare JSON string parses but is not an object.
	if _, err := ParseRecord(`"just a string"`); err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}

func TestNormalizeValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "12.5%", "12.5%"},
		{"whole number", float64(100), "100"},
		{"fraction", 12.5, "12.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"object", map[string]any{"YoY": "8%"}, `{"YoY":"8%"}`},
		{"array", []any{"a", "b"}, `["a","b"]`},
	}
	for _, tc := range cases {
		if got := NormalizeValue(tc.in); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestHasValue(t *testing.T) {
	truthy := []any{"x", float64(1), true, map[string]any{"k": "v"}, []any{"x"}}
	for _, v := range truthy {
		if !HasValue(v) {
			t.Errorf("expected HasValue(%v) to be true", v)
		}
	}
	falsy := []any{nil, "", float64(0), false, map[string]any{}, []any{}}
	for _, v := range falsy {
		if HasValue(v) {
			t.Errorf("expected HasValue(%v) to be false", v)
		}
	}
}

func TestRecordSetGetRoundTrip(t *testing.T) {
	var r Record
	for i, f := range Fields {
		r.Set(f, string(f))
		if got := r.Get(f); got != string(f) {
			t.Errorf("field %d (%s): expected %q, got %q", i, f, f, got)
		}
	}
}
