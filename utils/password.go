package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword encodes a customer password with argon2id. The encoded form
// embeds salt and parameters, so verification needs no extra state.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a login attempt against the stored encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
