package auth

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored credentials.
var BcryptCost = 12

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hashedPassword.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// HashPIN hashes a numeric credential. The decimal form is what gets hashed,
// so 0042 and 42 are the same PIN.
func HashPIN(pin int64) (string, error) {
	return HashPassword(strconv.FormatInt(pin, 10))
}

// CheckPIN reports whether pin matches hashedPIN.
func CheckPIN(hashedPIN string, pin int64) bool {
	return CheckPassword(hashedPIN, strconv.FormatInt(pin, 10))
}
