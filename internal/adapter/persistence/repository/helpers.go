package repository

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// cell is a sheet cell on the wire. SheetDB hands numeric cells back as
// strings or numbers interchangeably, so cells decode from either and always
// carry the textual form.
type cell string

func (c *cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = cell(s)
		return nil
	}
	// Bare number (or bool); keep the raw token.
	*c = cell(data)
	return nil
}

func (c cell) String() string {
	return string(c)
}

// Int coerces the cell to an integer. Non-numeric or empty cells coerce to 0
// rather than failing; fractional values truncate toward zero.
func (c cell) Int() int {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

const sheetTimeLayout = "2006-01-02T15:04:05"

// Time parses the cell as a timestamp, accepting RFC 3339 with or without a
// zone suffix. Unparseable cells yield the zero time.
func (c cell) Time() time.Time {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(sheetTimeLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func intCell(n int) cell {
	return cell(strconv.Itoa(n))
}

func timeCell(t time.Time) cell {
	if t.IsZero() {
		return ""
	}
	return cell(t.UTC().Format(time.RFC3339Nano))
}
