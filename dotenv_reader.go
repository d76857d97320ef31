package cove

import (
	"fmt"

	"github.com/joho/godotenv"
)

// DotEnv reads a dotenv-format file once and returns a Map reader over its
// contents. The file is never watched or re-read; lookups after construction
// touch only the in-memory mapping.
func DotEnv(path string) (Reader, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading dotenv file %s: %w", path, err)
	}
	return Map(values), nil
}
