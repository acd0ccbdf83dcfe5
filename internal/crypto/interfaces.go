package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain handles the end-to-end encryption of ephemerals. It knows nothing
// about the network or the stream; it only derives the key and opens
// payloads sealed by the other devices of the account.
//
// Scheme:
//
//	Key        = PBKDF2-SHA256(password, userIden, 30000 iterations, 32 bytes)
//	Ciphertext = base64("1" || tag(16) || iv(12) || AES-256-GCM ciphertext)
type KeyChain interface {
	// Enabled reports whether a key has been derived.
	Enabled() bool

	// DeriveKey derives and stores the key for password and the user iden
	// used as salt.
	DeriveKey(password, userIden string)

	// Decrypt opens a base64 ciphertext produced by a device of the same
	// account. Returns [ErrDecryption] (wrapped) when no key is set, the
	// version byte is unknown or authentication fails.
	Decrypt(ciphertextB64 string) ([]byte, error)
}
