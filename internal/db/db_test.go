package db

import (
	"path/filepath"
	"testing"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   "storage/panti.db",
			want: "file:storage/panti.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		},
		{
			in:   "file:panti.db?mode=rwc",
			want: "file:panti.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		},
		{
			in:   "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)&_time_format=sqlite",
			want: "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)&_time_format=sqlite",
		},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	database, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	var enabled int
	if err := database.Get(&enabled, `PRAGMA foreign_keys`); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign_keys = %d, want 1", enabled)
	}
	if got := database.Rebind("SELECT ? , ?"); got != "SELECT ? , ?" {
		t.Fatalf("sqlite bind type changed query: %q", got)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("mysql", "x"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
