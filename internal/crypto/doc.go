// Package crypto holds the small hashing helpers used to talk about secrets
// without showing them.
package crypto
