package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Cache defines the interface for caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

// Fingerprint generates a cache key from a content snapshot. Analysis is
// idempotent over a snapshot, so the hash of the snapshot identifies its
// result.
func Fingerprint(content string) string {
	return "lessonsift:v1:" + strconv.FormatUint(xxhash.Sum64String(content), 16)
}
