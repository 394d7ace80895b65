// internal/store/key_store_test.go
package store_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"unitconv/internal/domain"
	"unitconv/internal/store"
)

func TestAPIKey_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var keys domain.KeyStore = store.NewKeyFileStoreForTest(home)

	if err := keys.SaveAPIKey("pass", "  abc123  "); err != nil {
		t.Fatalf("save key: %v", err)
	}
	ok, err := keys.HasAPIKey()
	if err != nil || !ok {
		t.Fatalf("HasAPIKey = %v, %v", ok, err)
	}
	got, err := keys.LoadAPIKey("pass")
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("want trimmed key abc123, got %q", got)
	}
}

func TestAPIKey_NotStoredInPlaintext(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStoreForTest(home)
	if err := keys.SaveAPIKey("pass", "very-distinctive-key"); err != nil {
		t.Fatalf("save key: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(home, "*"))
	if len(matches) != 1 {
		t.Fatalf("want exactly one file (no temp leftovers), got %v", matches)
	}
	b, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.Contains(b, []byte("very-distinctive-key")) {
		t.Fatal("key file contains the plaintext key")
	}
}

func TestAPIKey_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStoreForTest(home)

	if err := keys.SaveAPIKey("correct", "k"); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if _, err := keys.LoadAPIKey("wrong"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestAPIKey_MissingAndDelete(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStoreForTest(home)

	if _, err := keys.LoadAPIKey("pass"); !errors.Is(err, store.ErrNoAPIKey) {
		t.Fatalf("want ErrNoAPIKey, got %v", err)
	}
	if err := keys.DeleteAPIKey(); err != nil {
		t.Fatalf("deleting a missing key: %v", err)
	}
	if err := keys.SaveAPIKey("pass", "k"); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if err := keys.DeleteAPIKey(); err != nil {
		t.Fatalf("delete key: %v", err)
	}
	if ok, _ := keys.HasAPIKey(); ok {
		t.Fatal("key still present after delete")
	}
}

func TestAPIKey_RejectsEmptyInput(t *testing.T) {
	keys := store.NewKeyFileStoreForTest(t.TempDir())
	if err := keys.SaveAPIKey("", "k"); err == nil {
		t.Fatal("expected error for empty passphrase")
	}
	if err := keys.SaveAPIKey("pass", "   "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

// rewriteKeyFile decodes the stored key file, lets edit change it and writes
// it back.
func rewriteKeyFile(t *testing.T, home string, edit func(map[string]any)) {
	t.Helper()
	path := filepath.Join(home, "exchange_api_key.enc")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key file: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode key file: %v", err)
	}
	edit(doc)
	if b, err = json.Marshal(doc); err != nil {
		t.Fatalf("encode key file: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
}

func TestAPIKey_TamperedHeaderRejected(t *testing.T) {
	cases := map[string]func(map[string]any){
		"scrypt r": func(doc map[string]any) { doc["kdf"].(map[string]any)["r"] = 9 },
		"scrypt n": func(doc map[string]any) { doc["kdf"].(map[string]any)["n"] = 1 << 11 },
		"version":  func(doc map[string]any) { doc["v"] = 0 },
	}
	for name, edit := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			keys := store.NewKeyFileStoreForTest(home)
			if err := keys.SaveAPIKey("pass", "k"); err != nil {
				t.Fatalf("save key: %v", err)
			}
			rewriteKeyFile(t, home, edit)
			if _, err := keys.LoadAPIKey("pass"); !errors.Is(err, store.ErrWrongPassphrase) {
				t.Fatalf("want ErrWrongPassphrase, got %v", err)
			}
		})
	}
}

func TestAPIKey_ForeignOrHostileFileRejected(t *testing.T) {
	cases := map[string]func(map[string]any){
		"other purpose":  func(doc map[string]any) { doc["purpose"] = "unitconv/something-else" },
		"huge cost":      func(doc map[string]any) { doc["kdf"].(map[string]any)["n"] = 1 << 30 },
		"future version": func(doc map[string]any) { doc["v"] = 99 },
	}
	for name, edit := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			keys := store.NewKeyFileStoreForTest(home)
			if err := keys.SaveAPIKey("pass", "k"); err != nil {
				t.Fatalf("save key: %v", err)
			}
			rewriteKeyFile(t, home, edit)
			_, err := keys.LoadAPIKey("pass")
			if err == nil || errors.Is(err, store.ErrWrongPassphrase) {
				t.Fatalf("want a format error, got %v", err)
			}
		})
	}
}
