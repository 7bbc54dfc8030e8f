package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// accountLinkSerializer: remotePublicKey[32] linkAction u8
type accountLinkSerializer struct{}

func (accountLinkSerializer) TransactionType() tx.Type { return tx.TypeAccountLink }

func (accountLinkSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AccountLink](t, tx.TypeAccountLink)
	if err != nil {
		return 0, err
	}
	if _, err := tx.LinkActionFromRaw(uint8(m.Action)); err != nil {
		return 0, err
	}
	return types.KeySize + 1, nil
}

func (accountLinkSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AccountLink](t, tx.TypeAccountLink)
	if err != nil {
		return err
	}
	m.RemotePublicKey.Write(w)
	return w.WriteByte(uint8(m.Action))
}

func (accountLinkSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	remote, err := types.ReadKey(r)
	if err != nil {
		return nil, err
	}
	raw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("link action: %w", err)
	}
	action, err := tx.LinkActionFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return tx.NewAccountLink(network, remote, action), nil
}

// modifyMultisigSerializer: minRemovalDelta i8 minApprovalDelta i8 additionsCount u8
// deletionsCount u8 additions[32]* deletions[32]*
type modifyMultisigSerializer struct{}

func (modifyMultisigSerializer) TransactionType() tx.Type { return tx.TypeModifyMultisigAccount }

func (modifyMultisigSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.ModifyMultisigAccount](t, tx.TypeModifyMultisigAccount)
	if err != nil {
		return 0, err
	}
	if err := checkUint8("additions count", len(m.PublicKeyAdditions)); err != nil {
		return 0, err
	}
	if err := checkUint8("deletions count", len(m.PublicKeyDeletions)); err != nil {
		return 0, err
	}
	return 4 + types.KeySize*(len(m.PublicKeyAdditions)+len(m.PublicKeyDeletions)), nil
}

func (modifyMultisigSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.ModifyMultisigAccount](t, tx.TypeModifyMultisigAccount)
	if err != nil {
		return err
	}
	_ = w.WriteByte(byte(m.MinRemovalDelta))
	_ = w.WriteByte(byte(m.MinApprovalDelta))
	_ = w.WriteByte(uint8(len(m.PublicKeyAdditions)))
	_ = w.WriteByte(uint8(len(m.PublicKeyDeletions)))
	for _, k := range m.PublicKeyAdditions {
		k.Write(w)
	}
	for _, k := range m.PublicKeyDeletions {
		k.Write(w)
	}
	return nil
}

func (modifyMultisigSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	head, err := r.ReadBytes(4)
	if err != nil {
		return nil, fmt.Errorf("multisig header: %w", err)
	}
	readKey := func() (types.Key, error) { return types.ReadKey(r) }
	additions, err := readList(int(head[2]), "additions", readKey)
	if err != nil {
		return nil, err
	}
	deletions, err := readList(int(head[3]), "deletions", readKey)
	if err != nil {
		return nil, err
	}
	return tx.NewModifyMultisigAccount(network, int8(head[0]), int8(head[1]), additions, deletions), nil
}
