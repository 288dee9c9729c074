package ports

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// MtimeHash hashes the modification time of the file at path.
	MtimeHash(path string) (string, error)

	// ContentHash hashes a string.
	ContentHash(content string) string
}
