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

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'donor',
		phone_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDonationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE donations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		phone_verified BOOLEAN NOT NULL DEFAULT 0,
		address TEXT NOT NULL,
		medicine_name TEXT NOT NULL,
		quantity TEXT NOT NULL,
		expiry_date DATETIME NOT NULL,
		condition TEXT NOT NULL DEFAULT 'unopened',
		additional_info TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		status_updated_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOtpVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otp_verifications (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		phone TEXT NOT NULL,
		code TEXT NOT NULL,
		attempts INTEGER NOT NULL DEFAULT 0,
		verified_at DATETIME,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}
