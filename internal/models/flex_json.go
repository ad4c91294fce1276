package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index mappings per row type.
var (
	fieldMapsMu sync.Mutex
	fieldMaps   = map[reflect.Type]map[string]int{}
)

func fieldMapFor(t reflect.Type) map[string]int {
	fieldMapsMu.Lock()
	defer fieldMapsMu.Unlock()
	if m, ok := fieldMaps[t]; ok {
		return m
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		m[name] = i
	}
	fieldMaps[t] = m
	return m
}

// flexUnmarshal decodes data into the struct pointed to by v, accepting the
// loose encoding the workbook export produces: numbers serialized as quoted
// strings, IDs serialized as bare numbers, and (via aliases) column names
// that drifted between feed versions. Unparseable values leave the field at
// its zero value rather than failing the row.
func flexUnmarshal(data []byte, v any, aliases map[string]string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	// An alias key only applies when the canonical key is absent.
	for alias, canonical := range aliases {
		if _, ok := raw[canonical]; ok {
			continue
		}
		if val, ok := raw[alias]; ok {
			raw[canonical] = val
		}
	}

	rv := reflect.ValueOf(v).Elem()
	fm := fieldMapFor(rv.Type())

	for key, rawVal := range raw {
		idx, ok := fm[key]
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		if !fv.CanSet() || string(rawVal) == "null" {
			continue
		}

		// Fast path: encoding already matches the field type.
		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		// Mismatched encoding: recover the token text and coerce.
		var s string
		if len(rawVal) > 1 && rawVal[0] == '"' {
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
		} else {
			s = string(rawVal)
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		coerceStringToField(fv, s)
	}

	return nil
}

// coerceStringToField converts a string token to the field's native type.
// Returns false when the token does not parse, leaving the field untouched.
func coerceStringToField(fv reflect.Value, s string) bool {
	switch fv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())
		if !coerceStringToField(elem.Elem(), s) {
			return false
		}
		fv.Set(elem)
		return true
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			fv.SetFloat(n)
			return true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "28.5" -> truncate to int
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			fv.SetInt(int64(n))
			return true
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			fv.SetBool(b)
			return true
		}
	case reflect.String:
		fv.SetString(s)
		return true
	}
	return false
}

func (m *Match) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, m, nil)
}

func (p *Player) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, p, map[string]string{
		"Name": "Player Name",
	})
}

func (r *BattingRow) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, r, map[string]string{
		"SR": "Strike Rate",
	})
}

// Older exports ship bowling columns unrenamed (Runs/Wickets/Dots); newer
// ones use Bowl Runs/Wkts/Dot Balls.
func (r *BowlingRow) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, r, map[string]string{
		"Runs":          "Bowl Runs",
		"Runs Conceded": "Bowl Runs",
		"Wickets":       "Wkts",
		"Dots":          "Dot Balls",
		"Econ":          "Economy",
	})
}

// The direct-hit run-out column name varies across feeds.
func (r *FieldingRow) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, r, map[string]string{
		"Direct Hits":      "Direct Hit Run Outs",
		"Direct Run Outs":  "Direct Hit Run Outs",
		"DirectHitRunouts": "Direct Hit Run Outs",
	})
}

func (r *CareerRow) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, r, map[string]string{
		"Name":    "Player Name",
		"Wickets": "Wkts",
		"Average": "Avg",
	})
}

func (t *TeamStats) UnmarshalJSON(data []byte) error {
	return flexUnmarshal(data, t, map[string]string{
		"NetRR": "Net RR",
	})
}
