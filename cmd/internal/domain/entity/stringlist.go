package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList is a slice of display strings stored as a JSON array in a
// single text column. Element order is significant and preserved.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("stringlist: cannot scan %T", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	if err := json.Unmarshal(raw, l); err != nil {
		return errors.New("stringlist: column is not a JSON array of strings")
	}
	return nil
}
