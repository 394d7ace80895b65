// Package store provides file-based persistence for unitconv's secrets.
//
// KeyFileStore implements domain.KeyStore: it keeps the exchange-rate API key
// under the configured home directory, sealed with ChaCha20-Poly1305 using a
// key derived from a passphrase with scrypt. Writes go through a temp file
// and an atomic rename. All methods are concurrency-safe via internal locking.
package store
