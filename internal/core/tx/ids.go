package tx

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

const (
	namespaceFlag = uint64(1) << 63

	// MaxNamespaceNameLength is the longest allowed namespace part.
	MaxNamespaceNameLength = 64
)

var namespaceNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// MosaicIDFromNonce derives the id of a mosaic created by owner with nonce.
func MosaicIDFromNonce(nonce uint32, owner types.Key) types.MosaicID {
	h := sha3.New256()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], nonce)
	h.Write(buf[:])
	h.Write(owner[:])
	sum := h.Sum(nil)
	return types.MosaicID(binary.LittleEndian.Uint64(sum[:8]) &^ namespaceFlag)
}

// NamespaceIDFromName derives the id of namespace part name under parent.
// Root namespaces use a zero parent.
func NamespaceIDFromName(name string, parent types.NamespaceID) types.NamespaceID {
	h := sha3.New256()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	h.Write([]byte(name))
	sum := h.Sum(nil)
	return types.NamespaceID(binary.LittleEndian.Uint64(sum[:8]) | namespaceFlag)
}

// NamespacePath resolves a dotted name like "foo.bar" into the ids of each level.
func NamespacePath(fullName string) ([]types.NamespaceID, error) {
	parts := strings.Split(fullName, ".")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: %q has more than 3 levels", ErrInvalidNamespaceName, fullName)
	}
	ids := make([]types.NamespaceID, 0, len(parts))
	var parent types.NamespaceID
	for _, part := range parts {
		if err := ValidateNamespaceName(part); err != nil {
			return nil, err
		}
		parent = NamespaceIDFromName(part, parent)
		ids = append(ids, parent)
	}
	return ids, nil
}

// ValidateNamespaceName checks a single namespace part.
func ValidateNamespaceName(name string) error {
	if len(name) == 0 || len(name) > MaxNamespaceNameLength {
		return fmt.Errorf("%w: %q length must be 1..%d", ErrInvalidNamespaceName, name, MaxNamespaceNameLength)
	}
	if !namespaceNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespaceName, name)
	}
	return nil
}
