package tx

import "fmt"

// Type represents a transaction type code
type Type uint16

// All transaction type codes understood by the codec
const (
	TypeInvalid Type = 0

	TypeTransfer                    Type = 0x4154
	TypeRegisterNamespace           Type = 0x414E
	TypeAddressAlias                Type = 0x424E
	TypeMosaicAlias                 Type = 0x434E
	TypeMosaicDefinition            Type = 0x414D
	TypeMosaicSupplyChange          Type = 0x424D
	TypeModifyMultisigAccount       Type = 0x4155
	TypeAggregateComplete           Type = 0x4141
	TypeAggregateBonded             Type = 0x4241
	TypeHashLock                    Type = 0x4148
	TypeSecretLock                  Type = 0x4152
	TypeSecretProof                 Type = 0x4252
	TypeAccountAddressRestriction   Type = 0x4150
	TypeAccountMosaicRestriction    Type = 0x4250
	TypeAccountOperationRestriction Type = 0x4350
	TypeAccountLink                 Type = 0x414C
	TypeMosaicAddressRestriction    Type = 0x4251
	TypeMosaicGlobalRestriction     Type = 0x4151
	TypeAccountMetadata             Type = 0x4144
	TypeMosaicMetadata              Type = 0x4244
	TypeNamespaceMetadata           Type = 0x4344
)

var typeNames = map[Type]string{
	TypeTransfer:                    "Transfer",
	TypeRegisterNamespace:           "RegisterNamespace",
	TypeAddressAlias:                "AddressAlias",
	TypeMosaicAlias:                 "MosaicAlias",
	TypeMosaicDefinition:            "MosaicDefinition",
	TypeMosaicSupplyChange:          "MosaicSupplyChange",
	TypeModifyMultisigAccount:       "ModifyMultisigAccount",
	TypeAggregateComplete:           "AggregateComplete",
	TypeAggregateBonded:             "AggregateBonded",
	TypeHashLock:                    "HashLock",
	TypeSecretLock:                  "SecretLock",
	TypeSecretProof:                 "SecretProof",
	TypeAccountAddressRestriction:   "AccountAddressRestriction",
	TypeAccountMosaicRestriction:    "AccountMosaicRestriction",
	TypeAccountOperationRestriction: "AccountOperationRestriction",
	TypeAccountLink:                 "AccountLink",
	TypeMosaicAddressRestriction:    "MosaicAddressRestriction",
	TypeMosaicGlobalRestriction:     "MosaicGlobalRestriction",
	TypeAccountMetadata:             "AccountMetadata",
	TypeMosaicMetadata:              "MosaicMetadata",
	TypeNamespaceMetadata:           "NamespaceMetadata",
}

var typeNameMap = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// AllTypes lists every known transaction type in ascending code order.
var AllTypes = []Type{
	TypeAggregateComplete,
	TypeAccountMetadata,
	TypeAccountLink,
	TypeMosaicDefinition,
	TypeRegisterNamespace,
	TypeHashLock,
	TypeAccountAddressRestriction,
	TypeMosaicGlobalRestriction,
	TypeSecretLock,
	TypeTransfer,
	TypeModifyMultisigAccount,
	TypeAggregateBonded,
	TypeMosaicMetadata,
	TypeMosaicSupplyChange,
	TypeAddressAlias,
	TypeAccountMosaicRestriction,
	TypeMosaicAddressRestriction,
	TypeSecretProof,
	TypeNamespaceMetadata,
	TypeMosaicAlias,
	TypeAccountOperationRestriction,
}

// String returns the string name of the transaction type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint16(t))
}

// IsKnown reports whether t is one of the defined transaction types
func (t Type) IsKnown() bool {
	_, ok := typeNames[t]
	return ok
}

// IsAggregate returns true for the two aggregate transaction types
func (t Type) IsAggregate() bool {
	return t == TypeAggregateComplete || t == TypeAggregateBonded
}

// TypeFromName returns the transaction type for a given name
func TypeFromName(name string) (Type, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsKnown() {
		return nil, fmt.Errorf("%w: 0x%04X", ErrInvalidTransactionType, uint16(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts a type name.
func (t *Type) UnmarshalText(text []byte) error {
	v, ok := TypeFromName(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, string(text))
	}
	*t = v
	return nil
}
