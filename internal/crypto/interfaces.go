package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic primitive of the journal. It knows
// nothing about storage, notes or sessions.
//
// Scheme:
//
//	salt, iv = GenerateSalt(), GenerateIV()
//	key      = DeriveKey(passphrase, salt, iterations)   PBKDF2-HMAC-SHA256
//	sealed   = Seal(key, iv, plaintext)                  AES-256-GCM
//	plain    = Open(key, iv, sealed)                     fails on wrong key or tampering
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes (128 bits) for key derivation.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns a fresh 12-byte (96-bit) GCM nonce. Every Seal call
	// must use a nonce obtained from here; nonces are never reused.
	GenerateIV() ([]byte, error)

	// DeriveKey stretches passphrase into a 256-bit key with PBKDF2-SHA256
	// using salt and the given iteration count.
	DeriveKey(passphrase string, salt []byte, iterations int) []byte

	// Seal encrypts and authenticates plaintext with AES-256-GCM.
	Seal(key, iv, plaintext []byte) ([]byte, error)

	// Open authenticates and decrypts ciphertext produced by Seal. Returns
	// [ErrDecryptionFailed] (wrapped) when the key is wrong or the data was
	// tampered with.
	Open(key, iv, ciphertext []byte) ([]byte, error)
}
