package cli

import (
	"os"
	"path/filepath"
)

// cacheDir returns the directory used for the result cache, creating no
// directories itself. Honours SEMIGROUPS_CACHE_DIR for tests and unusual
// setups.
func cacheDir() (string, error) {
	if dir := os.Getenv("SEMIGROUPS_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "semigroups"), nil
}
