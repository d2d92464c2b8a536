package models

import (
	"fmt"
	"strings"
	"testing"

	"pulse/config"
	"pulse/db"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database named
// after the test, so tests cannot see each other's rows.
func setupTestDB(t *testing.T) {
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db.Init()
	Init()
}
