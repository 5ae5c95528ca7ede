package badger

import (
	"encoding/binary"

	"github.com/poiesic/berkut/core"
)

// Key prefixes for different data types
const (
	materialPrefix = "matrec"
	settingsKey    = "settings"
)

// makeMaterialKey generates a key for a material by id.
// The id is written in BigEndian order so lexicographic key iteration
// yields materials in ascending id order.
func makeMaterialKey(id core.ID) []byte {
	prefix := materialPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for id
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// materialKeyPrefix returns the common prefix of all material keys,
// used for iteration and bulk drops.
func materialKeyPrefix() []byte {
	return []byte(materialPrefix + ":")
}

// makeSettingsKey generates the key of the single settings record.
func makeSettingsKey() []byte {
	return []byte(settingsKey)
}
