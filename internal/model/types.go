package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Int64List stores an id list as a JSON column. Pending submissions keep their
// relation ids in this form instead of junction rows, since the referenced
// entities are not validated until approval.
type Int64List []int64

// Scan implements sql.Scanner
func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = []int64{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into Int64List", value)
	}
}

// Value implements driver.Valuer
func (l Int64List) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}
