package recordstore

import (
	"encoding/json"
	"math"
)

// Record A single text entry of the backing file
type Record struct {
	ID   int64  `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// Sanitize Applies validation-and-filtering to an arbitrary decoded document. A value that
// is not a sequence yields an empty slice, otherwise every entry that is not a mapping
// holding an integer "id" (greater than zero) and a string "text" is dropped. Extra keys
// are ignored and the order of the surviving entries is preserved
func Sanitize(value any) []Record {
	records := make([]Record, 0)

	switch entries := value.(type) {
	case []any:
		for _, entry := range entries {
			if record, ok := recordFromValue(entry); ok {
				records = append(records, record)
			}
		}
	case []map[string]any:
		for _, entry := range entries {
			if record, ok := recordFromValue(entry); ok {
				records = append(records, record)
			}
		}
	case []Record:
		for _, record := range entries {
			if record.ID > 0 {
				records = append(records, record)
			}
		}
	}

	return records
}

func recordFromValue(entry any) (Record, bool) {
	var id, text any
	var hasID, hasText bool

	switch m := entry.(type) {
	case map[string]any:
		id, hasID = m["id"]
		text, hasText = m["text"]
	case map[any]any:
		id, hasID = m["id"]
		text, hasText = m["text"]
	case Record:
		return m, m.ID > 0
	case *Record:
		if m == nil {
			return Record{}, false
		}

		return *m, m.ID > 0
	default:
		return Record{}, false
	}

	if !hasID || !hasText {
		return Record{}, false
	}

	recordID, ok := integerValue(id)
	if !ok || recordID < 1 {
		return Record{}, false
	}

	recordText, ok := text.(string)
	if !ok {
		return Record{}, false
	}

	return Record{ID: recordID, Text: recordText}, true
}

// integerValue Accepts the integer representations produced by the codecs. Booleans and
// floating point numbers are not integers, even when integral
func integerValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintValue(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintValue(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}

		return i, true
	}

	return 0, false
}

func uintValue(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}

	return int64(n), true
}

func nextID(records []Record) int64 {
	var highest int64
	for _, record := range records {
		if record.ID > highest {
			highest = record.ID
		}
	}

	return highest + 1
}
