package hash

import (
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

var configForHash = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DeepHashObject writes specified object to hash using the spew library
// which follows pointers and prints actual values of the nested objects
// ensuring the hash does not change when a pointer changes.
func DeepHashObject(hasher hash.Hash, objectToWrite interface{}) {
	hasher.Reset()
	configForHash.Fprintf(hasher, "%#v", objectToWrite)
}

// Fingerprint returns the FNV-64a deep hash of obj as a hex string. Structurally equal
// objects have equal fingerprints.
func Fingerprint(obj interface{}) string {
	h := fnv.New64a()
	DeepHashObject(h, obj)
	return fmt.Sprintf("%016x", h.Sum64())
}
