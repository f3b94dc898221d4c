package hash

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
)

// SaltSize matches the SHA-512 block size, the recommended HMAC key length.
const SaltSize = 128

// Password hashes are keyed: the per-account random salt is the HMAC key,
// so verification needs both columns and nothing else.

func Password(password string) (hash, salt []byte, err error) {
	salt = make([]byte, SaltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

func Verify(password string, storedHash, storedSalt []byte) bool {
	mac := hmac.New(sha512.New, storedSalt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), storedHash)
}
