package tx

import (
	"fmt"
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// ModifyMultisigAccount changes the cosignatories and approval thresholds of a multisig account.
type ModifyMultisigAccount struct {
	BaseTx

	MinRemovalDelta    int8        `json:"minRemovalDelta"`
	MinApprovalDelta   int8        `json:"minApprovalDelta"`
	PublicKeyAdditions []types.Key `json:"publicKeyAdditions,omitempty"`
	PublicKeyDeletions []types.Key `json:"publicKeyDeletions,omitempty"`
}

// NewModifyMultisigAccount creates a new ModifyMultisigAccount transaction
func NewModifyMultisigAccount(network NetworkType, minRemovalDelta, minApprovalDelta int8, additions, deletions []types.Key) *ModifyMultisigAccount {
	return &ModifyMultisigAccount{
		BaseTx:             *NewBaseTx(TypeModifyMultisigAccount, network),
		MinRemovalDelta:    minRemovalDelta,
		MinApprovalDelta:   minApprovalDelta,
		PublicKeyAdditions: additions,
		PublicKeyDeletions: deletions,
	}
}

func (m *ModifyMultisigAccount) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	if err := checkCount("additions count", len(m.PublicKeyAdditions), math.MaxUint8); err != nil {
		return err
	}
	if err := checkCount("deletions count", len(m.PublicKeyDeletions), math.MaxUint8); err != nil {
		return err
	}
	seen := make(map[types.Key]struct{}, len(m.PublicKeyAdditions)+len(m.PublicKeyDeletions))
	for _, k := range append(append([]types.Key(nil), m.PublicKeyAdditions...), m.PublicKeyDeletions...) {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: cosignatory %s listed twice", ErrDuplicateEntry, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// AccountLink delegates the importance of an account to a remote key.
type AccountLink struct {
	BaseTx

	RemotePublicKey types.Key  `json:"remotePublicKey"`
	Action          LinkAction `json:"linkAction"`
}

// NewAccountLink creates a new AccountLink transaction
func NewAccountLink(network NetworkType, remote types.Key, action LinkAction) *AccountLink {
	return &AccountLink{
		BaseTx:          *NewBaseTx(TypeAccountLink, network),
		RemotePublicKey: remote,
		Action:          action,
	}
}

func (a *AccountLink) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if a.RemotePublicKey.IsZero() {
		return required("remotePublicKey")
	}
	_, err := LinkActionFromRaw(uint8(a.Action))
	return err
}
