package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
)

const saltLength = 64

// HashPassword derives a keyed SHA-512 digest of the password. The random
// salt doubles as the HMAC key; both parts are stored on the user row.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// VerifyPassword recomputes the digest with the stored salt and compares it
// in constant time against the stored hash.
func VerifyPassword(password string, hash, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), hash)
}
