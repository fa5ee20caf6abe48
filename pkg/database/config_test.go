package database

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Driver:   DriverMySQL,
		Host:     "db.local",
		Port:     3307,
		User:     "atm",
		Password: "secret",
		DBName:   "ledger",
	}
	want := "atm:secret@tcp(db.local:3307)/ledger?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.DSN(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	lite := Config{Driver: DriverSQLite, Path: "journal.db"}
	if got := lite.DSN(); got != "journal.db" {
		t.Errorf("Expected sqlite DSN journal.db, got %s", got)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Port != 3306 || cfg.MaxOpenConns != 100 || cfg.MaxIdleConns != 10 {
		t.Errorf("Unexpected pool defaults: %+v", cfg)
	}
	if cfg.ConnMaxLifetime != 30*time.Minute || cfg.MaxRetries != 10 || cfg.RetryInterval != 2*time.Second {
		t.Errorf("Unexpected retry defaults: %+v", cfg)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected log level error, got %s", cfg.LogLevel)
	}

	custom := Config{Port: 4000, MaxRetries: 1, LogLevel: "silent"}
	custom.ApplyDefaults()
	if custom.Port != 4000 || custom.MaxRetries != 1 || custom.LogLevel != "silent" {
		t.Errorf("Defaults overwrote explicit values: %+v", custom)
	}
}

func TestNewClient_UnsupportedDriver(t *testing.T) {
	if _, err := NewClient(Config{Driver: "postgres"}); err == nil {
		t.Error("Expected error for unsupported driver")
	}
	if _, err := NewClient(Config{Driver: DriverSQLite}); err == nil {
		t.Error("Expected error for sqlite without path")
	}
}

func TestNewClient_RetriesThenFails(t *testing.T) {
	cfg := Config{
		Driver:        DriverMySQL,
		Host:          "127.0.0.1",
		Port:          1,
		User:          "atm",
		DBName:        "atm",
		MaxRetries:    2,
		RetryInterval: time.Millisecond,
		LogLevel:      "silent",
	}
	client, err := NewClient(cfg)
	if err == nil {
		client.Close()
		t.Fatal("Expected connection error")
	}
	if !strings.Contains(err.Error(), "after 2 attempts") {
		t.Errorf("Expected retry count in error, got %v", err)
	}
}
