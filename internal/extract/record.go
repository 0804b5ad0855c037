package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Field names the metrics this tool extracts. The set is closed.
type Field string

const (
	FieldRevenue            Field = "Revenue"
	FieldEarnings           Field = "Earnings"
	FieldOperatingMargin    Field = "OperatingMargin"
	FieldRevenueGrowthRates Field = "RevenueGrowthRates"
	FieldGuidance           Field = "Guidance"
)

// Fields lists the metric set in output order.
var Fields = []Field{
	FieldRevenue,
	FieldEarnings,
	FieldOperatingMargin,
	FieldRevenueGrowthRates,
	FieldGuidance,
}

// Record is the consolidated extraction result. Field order here fixes the
// key order of the serialized output.
type Record struct {
	Revenue            string `json:"Revenue"`
	Earnings           string `json:"Earnings"`
	OperatingMargin    string `json:"OperatingMargin"`
	RevenueGrowthRates string `json:"RevenueGrowthRates"`
	Guidance           string `json:"Guidance"`
}

// Set assigns a field by name.
func (r *Record) Set(f Field, v string) {
	switch f {
	case FieldRevenue:
		r.Revenue = v
	case FieldEarnings:
		r.Earnings = v
	case FieldOperatingMargin:
		r.OperatingMargin = v
	case FieldRevenueGrowthRates:
		r.RevenueGrowthRates = v
	case FieldGuidance:
		r.Guidance = v
	}
}

// Get reads a field by name.
func (r Record) Get(f Field) string {
	switch f {
	case FieldRevenue:
		return r.Revenue
	case FieldEarnings:
		return r.Earnings
	case FieldOperatingMargin:
		return r.OperatingMargin
	case FieldRevenueGrowthRates:
		return r.RevenueGrowthRates
	case FieldGuidance:
		return r.Guidance
	}
	return ""
}

// ParseRecord turns a raw model response into a JSON object. Markdown code
// fences are stripped first, then parsing is tiered: strict JSON, then
// json-repair, then hjson as the most lenient fallback. Anything that does
// not come out as an object is a malformed response.
func ParseRecord(raw string) (map[string]any, error) {
	text := stripCodeBlock(raw)

	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		if obj, ok := v.(map[string]any); ok {
			return obj, nil
		}
		return nil, fmt.Errorf("response is valid JSON but not an object")
	}

	if repaired, err := jsonrepair.RepairJSON(text); err == nil {
		var rv any
		if err := json.Unmarshal([]byte(repaired), &rv); err == nil {
			if obj, ok := rv.(map[string]any); ok {
				return obj, nil
			}
		}
	}

	// Hjson tolerates unquoted keys, comments and missing commas; normalize
	// through standard JSON so downstream sees plain maps.
	var hv any
	if err := hjson.Unmarshal([]byte(text), &hv); err == nil {
		if normalized, err := json.Marshal(hv); err == nil {
			var nv any
			if err := json.Unmarshal(normalized, &nv); err == nil {
				if obj, ok := nv.(map[string]any); ok {
					return obj, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("response is not parseable JSON")
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

// NormalizeValue flattens a heterogeneous JSON value to one string: strings
// pass through, objects and arrays re-serialize as canonical JSON, numbers
// print with minimal digits, booleans as "true"/"false".
func NormalizeValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// HasValue reports whether a parsed JSON value carries data worth keeping:
// null, empty strings, zero numbers, false and empty composites do not.
func HasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
