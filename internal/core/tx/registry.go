package tx

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownTransactionType is returned when a transaction type is unknown
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// FromJSON creates a Transaction from a JSON object
func FromJSON(data []byte) (Transaction, error) {
	// First, unmarshal to get the type
	var raw struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	txType, ok := TypeFromName(raw.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, raw.Type)
	}

	tx, err := NewFromType(txType)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, tx); err != nil {
		return nil, err
	}
	if tx.TxType() != txType {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransactionType, tx.TxType())
	}

	return tx, nil
}

// ToJSON encodes a Transaction as indented JSON
func ToJSON(tx Transaction) ([]byte, error) {
	return json.MarshalIndent(tx, "", "  ")
}

// NewFromType creates an empty transaction model for the given type.
// The network is left unset and the version is the default.
func NewFromType(txType Type) (Transaction, error) {
	base := *NewBaseTx(txType, 0)
	switch txType {
	case TypeTransfer:
		return &Transfer{BaseTx: base}, nil
	case TypeRegisterNamespace:
		return &RegisterNamespace{BaseTx: base}, nil
	case TypeAddressAlias:
		return &AddressAlias{BaseTx: base}, nil
	case TypeMosaicAlias:
		return &MosaicAlias{BaseTx: base}, nil
	case TypeMosaicDefinition:
		return &MosaicDefinition{BaseTx: base}, nil
	case TypeMosaicSupplyChange:
		return &MosaicSupplyChange{BaseTx: base}, nil
	case TypeModifyMultisigAccount:
		return &ModifyMultisigAccount{BaseTx: base}, nil
	case TypeAggregateComplete, TypeAggregateBonded:
		return &Aggregate{BaseTx: base}, nil
	case TypeHashLock:
		return &HashLock{BaseTx: base}, nil
	case TypeSecretLock:
		return &SecretLock{BaseTx: base}, nil
	case TypeSecretProof:
		return &SecretProof{BaseTx: base}, nil
	case TypeAccountAddressRestriction:
		return &AccountAddressRestriction{BaseTx: base}, nil
	case TypeAccountMosaicRestriction:
		return &AccountMosaicRestriction{BaseTx: base}, nil
	case TypeAccountOperationRestriction:
		return &AccountOperationRestriction{BaseTx: base}, nil
	case TypeAccountLink:
		return &AccountLink{BaseTx: base}, nil
	case TypeMosaicAddressRestriction:
		return &MosaicAddressRestriction{BaseTx: base}, nil
	case TypeMosaicGlobalRestriction:
		return &MosaicGlobalRestriction{BaseTx: base}, nil
	case TypeAccountMetadata:
		return &AccountMetadata{BaseTx: base}, nil
	case TypeMosaicMetadata:
		return &MosaicMetadata{BaseTx: base}, nil
	case TypeNamespaceMetadata:
		return &NamespaceMetadata{BaseTx: base}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnknownTransactionType, uint16(txType))
	}
}
