package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createShiftTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		duration_hours INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLocationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		street TEXT NOT NULL,
		house_number INTEGER NOT NULL,
		district TEXT NOT NULL,
		region TEXT NOT NULL
	);`)
}

func createCompanyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		location_id INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTeamTypeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		member_count INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		leader TEXT,
		shift_id INTEGER,
		company_id INTEGER,
		team_type_id INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createRosterTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE firefighters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		paternal_name TEXT NOT NULL,
		maternal_name TEXT NOT NULL,
		phone INTEGER NOT NULL UNIQUE,
		team_id INTEGER
	);`)
	mustExec(t, db, `CREATE TABLE vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		plate TEXT NOT NULL,
		driver TEXT NOT NULL,
		status TEXT NOT NULL,
		team_id INTEGER
	);`)
	mustExec(t, db, `CREATE TABLE resources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		team_id INTEGER
	);`)
}

// createAllTables sets up the full schema for aggregate tests
func createAllTables(t *testing.T, db *gorm.DB) {
	createShiftTable(t, db)
	createLocationTable(t, db)
	createCompanyTable(t, db)
	createTeamTypeTable(t, db)
	createTeamTable(t, db)
	createRosterTables(t, db)
}
