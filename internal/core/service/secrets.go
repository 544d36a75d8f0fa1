package service

import "golang.org/x/crypto/bcrypt"

// PlainSecrets stores secrets as given and compares them for exact equality.
type PlainSecrets struct{}

func (PlainSecrets) Hash(secret string) (string, error) { return secret, nil }

func (PlainSecrets) Matches(stored, supplied string) bool { return stored == supplied }

// BcryptSecrets stores bcrypt hashes of secrets.
type BcryptSecrets struct {
	Cost int
}

func (b BcryptSecrets) Hash(secret string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptSecrets) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
