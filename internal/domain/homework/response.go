// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
	keyName        = "homework_name"
	keyStatus      = "status"
)

// CheckResponse validates a decoded status API payload and returns its
// homeworks sequence unchanged.
func CheckResponse(raw any) ([]any, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, &ShapeError{Kind: ShapeNotMapping, Got: typeName(raw)}
	}
	value, ok := body[keyHomeworks]
	if !ok || value == nil {
		return nil, &ShapeError{Kind: ShapeMissingKey, Key: keyHomeworks}
	}
	homeworks, ok := value.([]any)
	if !ok {
		return nil, &ShapeError{Kind: ShapeWrongType, Key: keyHomeworks, Got: typeName(value)}
	}
	return homeworks, nil
}

// CurrentDate extracts the server-side current_date from a decoded payload.
// Numbers may come as json.Number (decoder with UseNumber) or float64.
func CurrentDate(raw any) (int64, bool) {
	body, ok := raw.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := body[keyCurrentDate].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ParseRecord turns one decoded homework entry into a Record.
func ParseRecord(raw any) (Record, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Record{}, &ShapeError{Kind: ShapeWrongType, Key: keyHomeworks + "[0]", Got: typeName(raw)}
	}
	name, ok := entry[keyName].(string)
	if !ok || name == "" {
		return Record{}, &UnknownStatusError{Field: keyName}
	}
	rawStatus, present := entry[keyStatus]
	if !present || rawStatus == nil {
		return Record{}, &UnknownStatusError{Field: keyStatus}
	}
	status, ok := rawStatus.(string)
	if !ok {
		return Record{}, &UnknownStatusError{Status: fmt.Sprint(rawStatus)}
	}
	if _, known := Verdict(Status(status)); !known {
		return Record{}, &UnknownStatusError{Status: status}
	}
	return Record{Name: name, Status: Status(status)}, nil
}

// FormatMessage renders the notification text for a record with a known status.
func FormatMessage(r Record) (string, error) {
	verdict, ok := Verdict(r.Status)
	if !ok {
		return "", &UnknownStatusError{Status: string(r.Status)}
	}
	return fmt.Sprintf("Changed status of check for \"%s\". %s", r.Name, verdict), nil
}

// ParseStatus interprets a decoded homework entry into the notification text.
func ParseStatus(raw any) (string, error) {
	record, err := ParseRecord(raw)
	if err != nil {
		return "", err
	}
	return FormatMessage(record)
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
