package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MoneyMap stores named amounts, like allowances or deductions, as a
// JSON column.
type MoneyMap map[string]float64

func (m MoneyMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (m *MoneyMap) Scan(v any) error {
	switch raw := v.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(raw, m)
	case string:
		return json.Unmarshal([]byte(raw), m)
	default:
		return fmt.Errorf("cannot scan %T into MoneyMap", v)
	}
}

// Sum returns the total of all amounts in the map.
func (m MoneyMap) Sum() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}
