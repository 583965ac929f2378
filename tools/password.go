package tools

import "golang.org/x/crypto/bcrypt"

// PasswordEncrypt hashes a plaintext password for storage.
func PasswordEncrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasswordCompare reports whether the plaintext matches the stored hash.
func PasswordCompare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
