package database

import (
	"context"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(SQLConfig{
		Host: "db.local", Port: "3306", User: "app", Password: "p@ss", Name: "fashion_ai",
	})

	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("ParseDSN(%q) error = %v", dsn, err)
	}
	if mc.Addr != "db.local:3306" || mc.User != "app" || mc.Passwd != "p@ss" || mc.DBName != "fashion_ai" {
		t.Errorf("unexpected config: %+v", mc)
	}
	if !mc.ParseTime {
		t.Error("ParseTime should be enabled")
	}
}

func TestNewSQL_SQLite(t *testing.T) {
	db, closeFn, err := NewSQL(context.Background(), SQLConfig{
		Driver: "sqlite",
		URL:    "file:newsql?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("NewSQL() error = %v", err)
	}
	defer closeFn()

	if db.DriverName() != "sqlite" {
		t.Errorf("DriverName() = %q", db.DriverName())
	}
	if got := db.Rebind("SELECT ? , ?"); got != "SELECT ? , ?" {
		t.Errorf("Rebind() = %q", got)
	}
	if db.Stats().MaxOpenConnections != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", db.Stats().MaxOpenConnections)
	}
}

func TestNewSQL_UnknownDriver(t *testing.T) {
	_, _, err := NewSQL(context.Background(), SQLConfig{Driver: "oracle"})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("err = %v", err)
	}
}
