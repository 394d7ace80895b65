package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"unitconv/internal/domain"
	"unitconv/internal/util/memzero"
)

const apiKeyFilename = "exchange_api_key.enc"

// ErrNoAPIKey is returned by LoadAPIKey when no key has been saved.
var ErrNoAPIKey = errors.New("no exchange API key stored")

// KeyFileStore persists the exchange-rate API key to disk, encrypted.
type KeyFileStore struct {
	dir    string
	params kdfParams
	mu     sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, params: scryptParamsDefault()}
}

// SaveAPIKey encrypts key under passphrase and writes it to disk.
func (s *KeyFileStore) SaveAPIKey(passphrase string, key string) error {
	if passphrase == "" {
		return errors.New("passphrase required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw := []byte(key)
	defer memzero.Zero(raw)
	ct, err := sealEnvelope(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(s.path(), ct, 0o600)
}

// LoadAPIKey reads and decrypts the stored key.
func (s *KeyFileStore) LoadAPIKey(passphrase string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", ErrNoAPIKey
	}
	pt, err := openEnvelope(passphrase, b)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(pt)
	return string(pt), nil
}

// HasAPIKey reports whether a key file exists.
func (s *KeyFileStore) HasAPIKey() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// DeleteAPIKey removes the key file. Deleting a missing key is not an error.
func (s *KeyFileStore) DeleteAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *KeyFileStore) path() string { return filepath.Join(s.dir, apiKeyFilename) }

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
