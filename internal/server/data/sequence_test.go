package data

import (
	"sync"
	"testing"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/internal/server/loginid"
)

func TestNextSequence(t *testing.T) {
	db := setupDB(t)

	for want := int64(1); want <= 3; want++ {
		got, err := nextSequence(db, "testing")
		assert.NilError(t, err)
		assert.Equal(t, got, want)
	}

	// independent counters do not interfere
	got, err := nextSequence(db, "other")
	assert.NilError(t, err)
	assert.Equal(t, got, int64(1))
}

func TestAllocateLoginSerial(t *testing.T) {
	db := setupDB(t)
	identity := loginid.New("Acme Corp", "Test", "Employee", 2023)

	serial, err := AllocateLoginSerial(db, identity)
	assert.NilError(t, err)
	assert.Equal(t, serial, 1)

	serial, err = AllocateLoginSerial(db, identity)
	assert.NilError(t, err)
	assert.Equal(t, serial, 2)
}

func TestAllocateLoginSerial_SeedsFromExistingIDs(t *testing.T) {
	db := setupDB(t)

	// an employee that was issued an ID before counters existed
	createTestEmployee(t, db, "ACTEEM20230917", "legacy@example.com")

	identity := loginid.New("Acme Corp", "Test", "Employee", 2023)
	serial, err := AllocateLoginSerial(db, identity)
	assert.NilError(t, err)
	assert.Equal(t, serial, 918)
}

func TestAllocateLoginSerial_Concurrent(t *testing.T) {
	db := setupDB(t)
	identity := loginid.New("Acme Corp", "Test", "Employee", 2023)

	const workers = 20

	serials := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Transaction(func(tx *gorm.DB) error {
				serial, err := AllocateLoginSerial(tx, identity)
				if err != nil {
					return err
				}
				serials <- serial
				return nil
			})
			assert.Check(t, err)
		}()
	}
	wg.Wait()
	close(serials)

	seen := make(map[int]bool)
	for serial := range serials {
		assert.Assert(t, !seen[serial], "serial %d allocated twice", serial)
		assert.Assert(t, serial >= 1 && serial <= workers)
		seen[serial] = true
	}
	assert.Equal(t, len(seen), workers)
}

func TestNextEmployeeNumber(t *testing.T) {
	db := setupDB(t)

	number, err := NextEmployeeNumber(db)
	assert.NilError(t, err)
	assert.Equal(t, number, "EMP0001")

	number, err = NextEmployeeNumber(db)
	assert.NilError(t, err)
	assert.Equal(t, number, "EMP0002")
}

func TestNextEmployeeNumber_SeedsFromExistingIDs(t *testing.T) {
	db := setupDB(t)

	createTestEmployee(t, db, "ACTEEM20230001", "legacy@example.com")
	// createTestEmployee derives EMP0001 from the login ID serial

	number, err := NextEmployeeNumber(db)
	assert.NilError(t, err)
	assert.Equal(t, number, "EMP0002")
}
