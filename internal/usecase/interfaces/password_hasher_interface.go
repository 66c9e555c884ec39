package interfaces

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
