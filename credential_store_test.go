package gotds

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

func useTestCredentialStore(t *testing.T, open func() (keyring.Keyring, error)) {
	credentialsStorageMu.Lock()
	prev := credentialsStorage
	credentialsStorage = newKeyringCredentialStore(open)
	credentialsStorageMu.Unlock()
	t.Cleanup(func() {
		credentialsStorageMu.Lock()
		credentialsStorage = prev
		credentialsStorageMu.Unlock()
	})
}

func arrayKeyring() (keyring.Keyring, error) {
	return keyring.NewArrayKeyring(nil), nil
}

func TestBuildCredentialsKey(t *testing.T) {
	assertEqualE(t, buildCredentialsKey("db1:1433", "sa"), "DB1:1433:SA:GOTDS:PASSWORD")
}

func TestStoredPasswordIsUsed(t *testing.T) {
	useTestCredentialStore(t, arrayKeyring)
	cfg := testConfig()
	cfg.Password = ""
	cfg.CredentialStore = true
	assertNilF(t, SetStoredPassword(cfg, "from-keyring"))

	ft := newFakeTransport()
	conn, err := Open(context.Background(), cfg, ft.connector())
	assertNilF(t, err)
	defer conn.Close()
	assertEqualE(t, ft.params.Password, "from-keyring")
	assertEqualE(t, cfg.Password, "", "the caller's config is not modified")

	assertNilF(t, DeleteStoredPassword(cfg))
	assertNilF(t, DeleteStoredPassword(cfg), "deleting a missing password is not an error")
	conn2, err := Open(context.Background(), cfg, ft.connector())
	assertNilF(t, err)
	defer conn2.Close()
	assertEqualE(t, ft.params.Password, "")
}

func TestExplicitPasswordWins(t *testing.T) {
	useTestCredentialStore(t, arrayKeyring)
	cfg := testConfig()
	cfg.CredentialStore = true
	assertNilF(t, SetStoredPassword(cfg, "from-keyring"))

	ft := newFakeTransport()
	conn, err := Open(context.Background(), cfg, ft.connector())
	assertNilF(t, err)
	defer conn.Close()
	assertEqualE(t, ft.params.Password, "p")
}

func TestUnavailableCredentialStore(t *testing.T) {
	useTestCredentialStore(t, func() (keyring.Keyring, error) {
		return nil, errors.New("no keyring backend")
	})
	cfg := testConfig()
	cfg.Password = ""
	cfg.CredentialStore = true

	ft := newFakeTransport()
	conn, err := Open(context.Background(), cfg, ft.connector())
	assertNilF(t, err, "a missing keyring does not prevent the login")
	defer conn.Close()
	assertEqualE(t, ft.params.Password, "")
	assertNotNilE(t, SetStoredPassword(cfg, "x"))
}
