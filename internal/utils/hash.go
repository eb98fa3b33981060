package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps verification around a tenth of a second on current
// hardware.
const bcryptCost = 12

// HashPassword produces the bcrypt hash persisted in users.password_h.
func HashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hashed, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
