package keyring

import (
	"errors"
	"testing"

	zkeyring "github.com/zalando/go-keyring"
)

func TestConnectionStringLifecycle(t *testing.T) {
	zkeyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("get on empty keyring = %v, want ErrNotFound", err)
	}

	const dsn = "postgres://ticker@db.example.com/tick"
	if err := SetConnectionString(dsn); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil || got != dsn {
		t.Errorf("get = %q, %v", got, err)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestSetRejectsEmpty(t *testing.T) {
	zkeyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("empty connection string accepted")
	}
}
