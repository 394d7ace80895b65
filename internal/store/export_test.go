package store

// NewKeyFileStoreForTest returns a store with cheap scrypt parameters.
func NewKeyFileStoreForTest(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, params: kdfParams{N: 1 << 10, R: 8, P: 1}}
}
