package tx

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// MessageType tags the payload of a transfer message.
type MessageType uint8

const (
	MessagePlain                          MessageType = 0x00
	MessageSecure                         MessageType = 0x01
	MessagePersistentHarvestingDelegation MessageType = 0xFE
)

// MessageTypeFromRaw decodes a message type byte.
func MessageTypeFromRaw(raw uint8) (MessageType, error) {
	switch v := MessageType(raw); v {
	case MessagePlain, MessageSecure, MessagePersistentHarvestingDelegation:
		return v, nil
	}
	return 0, types.UnknownEnum("MessageType", uint64(raw))
}

// HashAlgorithm selects the hash used by secret lock and proof.
type HashAlgorithm uint8

const (
	HashSha3_256   HashAlgorithm = 0
	HashKeccak_256 HashAlgorithm = 1
	HashHash_160   HashAlgorithm = 2
	HashHash_256   HashAlgorithm = 3
)

// HashAlgorithmFromRaw decodes a hash algorithm byte.
func HashAlgorithmFromRaw(raw uint8) (HashAlgorithm, error) {
	if raw > uint8(HashHash_256) {
		return 0, types.UnknownEnum("HashAlgorithm", uint64(raw))
	}
	return HashAlgorithm(raw), nil
}

func (h HashAlgorithm) String() string {
	switch h {
	case HashSha3_256:
		return "Sha3_256"
	case HashKeccak_256:
		return "Keccak_256"
	case HashHash_160:
		return "Hash_160"
	case HashHash_256:
		return "Hash_256"
	}
	return fmt.Sprintf("HashAlgorithm(%d)", uint8(h))
}

// MosaicRestrictionType is the comparison applied by a global restriction.
type MosaicRestrictionType uint8

const (
	RestrictionNone MosaicRestrictionType = iota
	RestrictionEQ
	RestrictionNE
	RestrictionLT
	RestrictionLE
	RestrictionGT
	RestrictionGE
)

// MosaicRestrictionTypeFromRaw decodes a restriction type byte.
func MosaicRestrictionTypeFromRaw(raw uint8) (MosaicRestrictionType, error) {
	if raw > uint8(RestrictionGE) {
		return 0, types.UnknownEnum("MosaicRestrictionType", uint64(raw))
	}
	return MosaicRestrictionType(raw), nil
}

// AliasAction links or unlinks a namespace alias.
type AliasAction uint8

const (
	AliasUnlink AliasAction = 0
	AliasLink   AliasAction = 1
)

// AliasActionFromRaw decodes an alias action byte.
func AliasActionFromRaw(raw uint8) (AliasAction, error) {
	if raw > uint8(AliasLink) {
		return 0, types.UnknownEnum("AliasAction", uint64(raw))
	}
	return AliasAction(raw), nil
}

// LinkAction links or unlinks a remote account.
type LinkAction uint8

const (
	LinkUnlink LinkAction = 0
	LinkLink   LinkAction = 1
)

// LinkActionFromRaw decodes a link action byte.
func LinkActionFromRaw(raw uint8) (LinkAction, error) {
	if raw > uint8(LinkLink) {
		return 0, types.UnknownEnum("LinkAction", uint64(raw))
	}
	return LinkAction(raw), nil
}

// MosaicSupplyChangeAction decreases or increases supply.
type MosaicSupplyChangeAction uint8

const (
	SupplyDecrease MosaicSupplyChangeAction = 0
	SupplyIncrease MosaicSupplyChangeAction = 1
)

// MosaicSupplyChangeActionFromRaw decodes a supply change action byte.
func MosaicSupplyChangeActionFromRaw(raw uint8) (MosaicSupplyChangeAction, error) {
	if raw > uint8(SupplyIncrease) {
		return 0, types.UnknownEnum("MosaicSupplyChangeAction", uint64(raw))
	}
	return MosaicSupplyChangeAction(raw), nil
}

// NamespaceRegistrationType distinguishes root and child namespaces.
type NamespaceRegistrationType uint8

const (
	NamespaceRoot  NamespaceRegistrationType = 0
	NamespaceChild NamespaceRegistrationType = 1
)

// NamespaceRegistrationTypeFromRaw decodes a registration type byte.
func NamespaceRegistrationTypeFromRaw(raw uint8) (NamespaceRegistrationType, error) {
	if raw > uint8(NamespaceChild) {
		return 0, types.UnknownEnum("NamespaceRegistrationType", uint64(raw))
	}
	return NamespaceRegistrationType(raw), nil
}

// TypeFromRaw decodes a transaction type code.
func TypeFromRaw(raw uint16) (Type, error) {
	t := Type(raw)
	if !t.IsKnown() {
		return 0, types.UnknownEnum("TransactionType", uint64(raw))
	}
	return t, nil
}
