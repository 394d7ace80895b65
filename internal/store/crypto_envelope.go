package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"unitconv/internal/util/memzero"
)

const (
	// envelopeVersion is the on-disk format written by sealEnvelope.
	envelopeVersion = 1
	// apiKeyPurpose names what an envelope protects. It is bound into the
	// AEAD so a sealed file cannot be replayed as some other secret.
	apiKeyPurpose = "unitconv/exchange-api-key"

	// maxScryptN caps the cost read back from disk; a tampered file must not
	// be able to make LoadAPIKey allocate without bound.
	maxScryptN = 1 << 20
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// key file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// envelope is the JSON document stored in the key file.
type envelope struct {
	Version int       `json:"v"`
	Purpose string    `json:"purpose"`
	KDF     kdfRecord `json:"kdf"`
	Nonce   []byte    `json:"nonce"`
	Sealed  []byte    `json:"sealed"`
}

type kdfRecord struct {
	Salt []byte `json:"salt"`
	N    int    `json:"n"`
	R    int    `json:"r"`
	P    int    `json:"p"`
}

// kdfParams are the scrypt cost parameters.
type kdfParams struct{ N, R, P int }

func scryptParamsDefault() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// additionalData binds every cleartext header field to the ciphertext.
func (e envelope) additionalData() []byte {
	ad := []byte(e.Purpose)
	ad = append(ad, 0)
	ad = strconv.AppendInt(ad, int64(e.Version), 10)
	ad = append(ad, 0)
	ad = strconv.AppendInt(ad, int64(e.KDF.N), 10)
	ad = append(ad, ':')
	ad = strconv.AppendInt(ad, int64(e.KDF.R), 10)
	ad = append(ad, ':')
	ad = strconv.AppendInt(ad, int64(e.KDF.P), 10)
	ad = append(ad, 0)
	return append(ad, e.KDF.Salt...)
}

// sealEnvelope encrypts secret under a key derived from passphrase.
func sealEnvelope(passphrase string, secret []byte, p kdfParams) ([]byte, error) {
	env := envelope{
		Version: envelopeVersion,
		Purpose: apiKeyPurpose,
		KDF:     kdfRecord{Salt: make([]byte, 16), N: p.N, R: p.R, P: p.P},
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.KDF.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}
	aead, err := deriveAEAD(passphrase, env.KDF)
	if err != nil {
		return nil, err
	}
	env.Sealed = aead.Seal(nil, env.Nonce, secret, env.additionalData())
	return json.Marshal(env)
}

// openEnvelope decrypts a key file produced by sealEnvelope.
func openEnvelope(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	switch {
	case env.Version > envelopeVersion:
		return nil, fmt.Errorf("unsupported key file version %d", env.Version)
	case env.Purpose != apiKeyPurpose:
		return nil, fmt.Errorf("key file holds %q, not an exchange API key", env.Purpose)
	case env.KDF.N <= 1 || env.KDF.N > maxScryptN:
		return nil, fmt.Errorf("key file scrypt cost %d out of range", env.KDF.N)
	case len(env.Nonce) != chacha20poly1305.NonceSizeX:
		return nil, ErrWrongPassphrase
	}

	aead, err := deriveAEAD(passphrase, env.KDF)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Sealed, env.additionalData())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func deriveAEAD(passphrase string, k kdfRecord) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), k.Salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	return chacha20poly1305.NewX(key)
}
