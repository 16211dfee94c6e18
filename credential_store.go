package gotds

import (
	"errors"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

const (
	credentialServiceName = "GOTDS"
	passwordCredential    = "PASSWORD"
)

type credentialStore interface {
	getPassword(server, user string) (string, error)
	setPassword(server, user, password string) error
	deletePassword(server, user string) error
}

var (
	credentialsStorageMu sync.Mutex
	credentialsStorage   credentialStore = newKeyringCredentialStore(func() (keyring.Keyring, error) {
		return keyring.Open(keyring.Config{ServiceName: credentialServiceName})
	})
)

func getCredentialStore() credentialStore {
	credentialsStorageMu.Lock()
	defer credentialsStorageMu.Unlock()
	return credentialsStorage
}

func buildCredentialsKey(server, user string) string {
	return strings.ToUpper(server) + ":" + strings.ToUpper(user) + ":" + credentialServiceName + ":" + passwordCredential
}

type keyringCredentialStore struct {
	mu   sync.Mutex
	open func() (keyring.Keyring, error)
	ring keyring.Keyring
}

func newKeyringCredentialStore(open func() (keyring.Keyring, error)) *keyringCredentialStore {
	return &keyringCredentialStore{open: open}
}

func (s *keyringCredentialStore) openRing() (keyring.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ring == nil {
		ring, err := s.open()
		if err != nil {
			return nil, err
		}
		s.ring = ring
	}
	return s.ring, nil
}

func (s *keyringCredentialStore) getPassword(server, user string) (string, error) {
	ring, err := s.openRing()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(buildCredentialsKey(server, user))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *keyringCredentialStore) setPassword(server, user, password string) error {
	ring, err := s.openRing()
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:   buildCredentialsKey(server, user),
		Data:  []byte(password),
		Label: "gotds password for " + user,
	})
}

func (s *keyringCredentialStore) deletePassword(server, user string) error {
	ring, err := s.openRing()
	if err != nil {
		return err
	}
	err = ring.Remove(buildCredentialsKey(server, user))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

// SetStoredPassword saves the password for cfg's server and username in the
// OS credential store. Connections opened with CredentialStore set read it back.
func SetStoredPassword(cfg *Config, password string) error {
	return getCredentialStore().setPassword(cfg.server(), cfg.Username, password)
}

// DeleteStoredPassword removes the stored password for cfg's server and username.
func DeleteStoredPassword(cfg *Config) error {
	return getCredentialStore().deletePassword(cfg.server(), cfg.Username)
}

// resolvePassword fills an empty password from the credential store when requested.
func resolvePassword(cfg *Config) {
	if !cfg.CredentialStore || cfg.Password != "" {
		return
	}
	password, err := getCredentialStore().getPassword(cfg.server(), cfg.Username)
	if err != nil {
		logger.Warnf("cannot read password from credential store: %v", err)
		return
	}
	if password == "" {
		logger.Debugf("no stored password for %v", cfg.Username)
	}
	cfg.Password = password
}
