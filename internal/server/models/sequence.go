package models

// Sequence is a named monotonic counter. Counters back serial
// allocation for login IDs and employee numbers.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}
