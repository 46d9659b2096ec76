package data

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/loginid"
	"github.com/workforcehq/workforce/internal/server/models"
)

const employeeNumberSequence = "employee_number"

// nextSequence atomically increments the named counter and returns the
// new value. The upsert makes concurrent allocations within competing
// transactions serialize on the counter row, so two requests can never
// observe the same value.
func nextSequence(tx *gorm.DB, name string) (int64, error) {
	stmt := `
		INSERT INTO sequences (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`

	var value int64
	if err := tx.Raw(stmt, name).Scan(&value).Error; err != nil {
		return 0, fmt.Errorf("next sequence %v: %w", name, err)
	}
	return value, nil
}

// seedSequence creates the counter row with an initial value if it does
// not exist yet. Losing the insert race to another transaction is fine,
// the other transaction seeded the same value.
func seedSequence(tx *gorm.DB, name string, initial func() (int64, error)) error {
	var seq models.Sequence
	err := tx.Where("name = ?", name).First(&seq).Error
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	value, err := initial()
	if err != nil {
		return err
	}

	stmt := `INSERT INTO sequences (name, value) VALUES (?, ?) ON CONFLICT (name) DO NOTHING`
	return tx.Exec(stmt, name, value).Error
}

// AllocateLoginSerial returns the next unused serial for the identity
// bucket. The first allocation for a bucket seeds the counter from
// existing login IDs, so buckets created before counters were
// introduced continue where they left off.
func AllocateLoginSerial(tx *gorm.DB, identity loginid.Identity) (int, error) {
	name := "login_id:" + identity.Bucket()

	err := seedSequence(tx, name, func() (int64, error) {
		return maxLoginSerial(tx, identity.Bucket())
	})
	if err != nil {
		return 0, err
	}

	serial, err := nextSequence(tx, name)
	if err != nil {
		return 0, err
	}
	if serial > loginid.SerialMax {
		return 0, fmt.Errorf("serial space exhausted for %v", identity.Bucket())
	}

	return int(serial), nil
}

// maxLoginSerial scans existing login IDs in the bucket for the highest
// issued serial. The suffix is parsed in Go because not every database
// can cast it safely in SQL.
func maxLoginSerial(tx *gorm.DB, bucket string) (int64, error) {
	var loginIDs []string
	err := tx.Unscoped().Model(&models.Employee{}).
		Where("login_id LIKE ?", bucket+"%").
		Pluck("login_id", &loginIDs).Error
	if err != nil {
		return 0, err
	}

	var max int64
	for _, id := range loginIDs {
		serial, err := loginid.ParseSerial(id)
		if err != nil {
			continue
		}
		if int64(serial) > max {
			max = int64(serial)
		}
	}
	return max, nil
}

// NextEmployeeNumber allocates the next EMP prefixed employee number.
func NextEmployeeNumber(tx *gorm.DB) (string, error) {
	err := seedSequence(tx, employeeNumberSequence, func() (int64, error) {
		return maxEmployeeNumber(tx)
	})
	if err != nil {
		return "", err
	}

	value, err := nextSequence(tx, employeeNumberSequence)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("EMP%04d", value), nil
}

func maxEmployeeNumber(tx *gorm.DB) (int64, error) {
	var numbers []string
	err := tx.Unscoped().Model(&models.Employee{}).
		Where("employee_id LIKE ?", "EMP%").
		Pluck("employee_id", &numbers).Error
	if err != nil {
		return 0, err
	}

	var max int64
	for _, n := range numbers {
		value, err := strconv.ParseInt(n[3:], 10, 64)
		if err != nil {
			continue
		}
		if value > max {
			max = value
		}
	}
	return max, nil
}
