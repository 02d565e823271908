// Package license stores the premium activation key, encrypted at rest using
// age encryption. The key lives in a single age-encrypted file at
// ~/.local/share/renshu/license.age (XDG DataDir).
//
// The file uses passphrase-based encryption (age scrypt). Writes are atomic:
// data goes to a temp file, is fsync'd, then renamed into place.
package license

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/renshuapp/renshu/internal/config"
)

// ErrWrongPassphrase is returned when decryption fails due to a bad passphrase.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// ErrNotActivated is returned when no license file exists yet.
var ErrNotActivated = errors.New("premium not activated")

// ErrInvalidKey is returned when an activation key has the wrong shape.
var ErrInvalidKey = errors.New("invalid activation key")

// keyPattern matches "RENSHU-XXXX-XXXX-XXXX" activation keys.
var keyPattern = regexp.MustCompile(`^RENSHU(-[A-Z0-9]{4}){3}$`)

// Store manages the age-encrypted license file.
type Store struct {
	path       string
	passphrase string
}

// New creates a Store backed by the XDG data path.
func New(passphrase string) *Store {
	paths := config.GetPaths()
	return &Store{
		path:       filepath.Join(paths.DataDir, "license.age"),
		passphrase: passphrase,
	}
}

// newWithPath creates a Store at an explicit path (used in tests).
func newWithPath(path, passphrase string) *Store {
	return &Store{path: path, passphrase: passphrase}
}

// ValidateKey checks that a key has the expected activation-key shape.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(strings.TrimSpace(key)) {
		return fmt.Errorf("%w: expected RENSHU-XXXX-XXXX-XXXX", ErrInvalidKey)
	}
	return nil
}

// Activate validates and stores the activation key.
func (s *Store) Activate(key string) error {
	key = strings.TrimSpace(key)
	if err := ValidateKey(key); err != nil {
		return err
	}
	return s.save(key)
}

// Key decrypts and returns the stored activation key.
// Returns ErrNotActivated when no license file exists and ErrWrongPassphrase
// when the passphrase doesn't match.
func (s *Store) Key() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotActivated
		}
		return "", fmt.Errorf("reading license: %w", err)
	}
	return decrypt(raw, s.passphrase)
}

// Unlocked reports whether a valid activation key is stored.
func (s *Store) Unlocked() bool {
	key, err := s.Key()
	return err == nil && ValidateKey(key) == nil
}

// Deactivate removes the stored license.
func (s *Store) Deactivate() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing license: %w", err)
	}
	return nil
}

// save encrypts and atomically writes the key to disk.
func (s *Store) save(key string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating license directory: %w", err)
	}

	raw, err := encrypt(key, s.passphrase)
	if err != nil {
		return err
	}
	return atomicWrite(s.path, raw)
}

// encrypt seals the key with age scrypt (passphrase-based) armor.
func encrypt(key, passphrase string) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age recipient: %w", err)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing age encryption: %w", err)
	}
	if _, err := io.WriteString(w, key); err != nil {
		return nil, fmt.Errorf("encrypting license: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}
	return buf.Bytes(), nil
}

// decrypt opens an age-encrypted license blob.
func decrypt(raw []byte, passphrase string) (string, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return "", fmt.Errorf("creating age identity: %w", err)
	}

	armorReader := armor.NewReader(bytes.NewReader(raw))
	r, err := age.Decrypt(armorReader, identity)
	if err != nil {
		// age does not export a typed error for a wrong passphrase; match the
		// known message substrings.
		msg := err.Error()
		if strings.Contains(msg, "no identity matched") || strings.Contains(msg, "incorrect") {
			return "", fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
		}
		return "", fmt.Errorf("decrypting license: %w", err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading decrypted license: %w", err)
	}
	return strings.TrimSpace(string(plaintext)), nil
}

// atomicWrite writes data to path atomically: temp file → fsync → rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".license-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing license data: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing license data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing license file: %w", err)
	}
	success = true
	return nil
}
