package crypto

// PasswordCodec stores and verifies user passwords via reversible symmetric
// encryption. Every Encrypt call produces a fresh initialization vector, so
// two users with the same password never share ciphertext.
type PasswordCodec interface {
	// Encrypt encrypts the plaintext password and returns the hex-encoded
	// ciphertext together with the hex-encoded IV used to produce it.
	Encrypt(plaintext string) (ciphertext string, iv string, err error)

	// Decrypt reverses Encrypt given the stored ciphertext and IV.
	Decrypt(ciphertext string, iv string) (string, error)
}
