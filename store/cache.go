/* cache.go
 * Contains the file cache used as a last-resort fallback when both the
 * database snapshot and the upstream source are unavailable.
 */

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveJSONCache writes a team's snapshot JSON to the cache directory.
// Preconditions: Receives the cache directory, the team slug and the snapshot JSON
// Postconditions: The cache file exists, or an error is returned
func SaveJSONCache(cacheDir string, slug string, data string) error {
	if cacheDir == "" {
		return fmt.Errorf("cache directory not configured")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return os.WriteFile(cachePath(cacheDir, slug), []byte(data), 0o644)
}

// LoadJSONCache reads a team's cached snapshot JSON.
// Preconditions: Receives the cache directory and the team slug
// Postconditions: Returns the cached JSON, or an error if no cache exists
func LoadJSONCache(cacheDir string, slug string) (string, error) {
	if cacheDir == "" {
		return "", fmt.Errorf("cache directory not configured")
	}
	data, err := os.ReadFile(cachePath(cacheDir, slug))
	if err != nil {
		return "", fmt.Errorf("no cached data for %s: %w", slug, err)
	}
	return string(data), nil
}

func cachePath(cacheDir string, slug string) string {
	return filepath.Join(cacheDir, strings.ToLower(slug)+".json")
}
