package keyvalue

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"io/fs"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	fileFormatVersion = 1
	saltLength        = 16
	nonceLength       = 24
	keyLength         = 32

	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
)

type fileEnvelope struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries,omitempty"`
	Salt    []byte            `json:"salt,omitempty"`
	Sealed  []byte            `json:"sealed,omitempty"`
}

type fileStorage struct {
	mu         sync.Mutex
	path       string
	passphrase string
}

// NewFileStorage keeps the entries in a single JSON file written with 0600
// permissions. A non-empty passphrase seals the entries with secretbox under
// an argon2id derived key.
func NewFileStorage(path, passphrase string) contracts.KeyValueStorage {
	return &fileStorage{path: path, passphrase: passphrase}
}

func (s *fileStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, exceptions.ErrStorageGet(err, key, s.Driver())
	}
	value, found := entries[key]
	return value, found, nil
}

func (s *fileStorage) SetMany(ctx context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return exceptions.ErrStorageSet(err, s.Driver())
	}
	for key, value := range entries {
		current[key] = value
	}
	err = s.save(current)
	if err != nil {
		return exceptions.ErrStorageSet(err, s.Driver())
	}
	return nil
}

func (s *fileStorage) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		// An unreadable file cannot hold a usable session, drop it entirely.
		removeErr := os.Remove(s.path)
		if removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			return exceptions.ErrStorageDelete(removeErr, s.Driver())
		}
		return nil
	}

	changed := false
	for _, key := range keys {
		if _, found := current[key]; found {
			delete(current, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	err = s.save(current)
	if err != nil {
		return exceptions.ErrStorageDelete(err, s.Driver())
	}
	return nil
}

func (s *fileStorage) Driver() string {
	return constvars.CredentialStoreDriverFile
}

func (s *fileStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, err
	}

	var envelope fileEnvelope
	err = json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Sealed == nil {
		if envelope.Entries == nil {
			envelope.Entries = make(map[string]string)
		}
		return envelope.Entries, nil
	}

	plain, err := s.open(envelope.Salt, envelope.Sealed)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]string)
	err = json.Unmarshal(plain, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *fileStorage) save(entries map[string]string) error {
	envelope := fileEnvelope{Version: fileFormatVersion}
	if s.passphrase == "" {
		envelope.Entries = entries
	} else {
		plain, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		envelope.Salt, envelope.Sealed, err = s.seal(plain)
		if err != nil {
			return err
		}
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(0o600)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

func (s *fileStorage) seal(plain []byte) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	_, err := io.ReadFull(rand.Reader, salt)
	if err != nil {
		return nil, nil, exceptions.ErrStorageSeal(err)
	}

	var nonce [nonceLength]byte
	_, err = io.ReadFull(rand.Reader, nonce[:])
	if err != nil {
		return nil, nil, exceptions.ErrStorageSeal(err)
	}

	key := s.deriveKey(salt)
	sealed := secretbox.Seal(nonce[:], plain, &nonce, key)
	return salt, sealed, nil
}

func (s *fileStorage) open(salt, sealed []byte) ([]byte, error) {
	if s.passphrase == "" || len(sealed) < nonceLength {
		return nil, exceptions.ErrStorageSeal(errors.New("credential file is sealed but cannot be opened"))
	}

	var nonce [nonceLength]byte
	copy(nonce[:], sealed[:nonceLength])
	key := s.deriveKey(salt)
	plain, ok := secretbox.Open(nil, sealed[nonceLength:], &nonce, key)
	if !ok {
		return nil, exceptions.ErrStorageSeal(errors.New("wrong passphrase or tampered credential file"))
	}
	return plain, nil
}

func (s *fileStorage) deriveKey(salt []byte) *[keyLength]byte {
	var key [keyLength]byte
	copy(key[:], argon2.IDKey([]byte(s.passphrase), salt, argonTime, argonMemory, argonThreads, keyLength))
	return &key
}
