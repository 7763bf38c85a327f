package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of plain. The salt is
// randomized per call, so hashing the same password twice yields different
// digests.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored digest. bcrypt's
// comparison is constant time with respect to the digest.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
