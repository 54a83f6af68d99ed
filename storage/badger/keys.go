package badger

import "fmt"

// Key prefixes for different data types
const (
	artifactPrefix = "fondart"
)

// makeArtifactKey generates a key for an artifact by path.
func makeArtifactKey(path string) []byte {
	return []byte(fmt.Sprintf("%s:%s", artifactPrefix, path))
}
