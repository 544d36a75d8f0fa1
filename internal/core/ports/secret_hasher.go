package ports

// SecretHasher decides how user secrets are stored and compared.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Matches(stored, supplied string) bool
}
