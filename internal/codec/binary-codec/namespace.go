package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// registerNamespaceSerializer: registrationType u8, duration or parentId u64, id u64, nameSize u8, name
type registerNamespaceSerializer struct{}

func (registerNamespaceSerializer) TransactionType() tx.Type { return tx.TypeRegisterNamespace }

func (registerNamespaceSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.RegisterNamespace](t, tx.TypeRegisterNamespace)
	if err != nil {
		return 0, err
	}
	if _, err := tx.NamespaceRegistrationTypeFromRaw(uint8(m.RegistrationType)); err != nil {
		return 0, err
	}
	if err := checkUint8("namespace name size", len(m.Name)); err != nil {
		return 0, err
	}
	return 1 + 8 + 8 + 1 + len(m.Name), nil
}

func (registerNamespaceSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.RegisterNamespace](t, tx.TypeRegisterNamespace)
	if err != nil {
		return err
	}
	_ = w.WriteByte(uint8(m.RegistrationType))
	if m.RegistrationType == tx.NamespaceRoot {
		w.WriteUint64(m.Duration)
	} else {
		w.WriteUint64(uint64(m.ParentID))
	}
	w.WriteUint64(uint64(m.ID))
	_ = w.WriteByte(uint8(len(m.Name)))
	w.WriteBytes([]byte(m.Name))
	return nil
}

func (registerNamespaceSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	raw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("registration type: %w", err)
	}
	regType, err := tx.NamespaceRegistrationTypeFromRaw(raw)
	if err != nil {
		return nil, err
	}
	durationOrParent, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("duration or parent id: %w", err)
	}
	id, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("namespace id: %w", err)
	}
	nameSize, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("name size: %w", err)
	}
	name, err := r.ReadBytes(int(nameSize))
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	m := &tx.RegisterNamespace{
		BaseTx:           *tx.NewBaseTx(tx.TypeRegisterNamespace, network),
		RegistrationType: regType,
		ID:               types.NamespaceID(id),
		Name:             string(name),
	}
	if regType == tx.NamespaceRoot {
		m.Duration = durationOrParent
	} else {
		m.ParentID = types.NamespaceID(durationOrParent)
	}
	return m, nil
}

// addressAliasSerializer: namespaceId u64 address[25] aliasAction u8
type addressAliasSerializer struct{}

func (addressAliasSerializer) TransactionType() tx.Type { return tx.TypeAddressAlias }

func (addressAliasSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AddressAlias](t, tx.TypeAddressAlias)
	if err != nil {
		return 0, err
	}
	if _, err := tx.AliasActionFromRaw(uint8(m.Action)); err != nil {
		return 0, err
	}
	return 8 + types.AddressSize + 1, nil
}

func (addressAliasSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AddressAlias](t, tx.TypeAddressAlias)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.NamespaceID))
	m.Address.Write(w)
	return w.WriteByte(uint8(m.Action))
}

func (addressAliasSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	id, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("namespace id: %w", err)
	}
	address, err := types.ReadAddress(r)
	if err != nil {
		return nil, err
	}
	action, err := readAliasAction(r)
	if err != nil {
		return nil, err
	}
	return tx.NewAddressAlias(network, action, types.NamespaceID(id), address), nil
}

// mosaicAliasSerializer: namespaceId u64 mosaicId u64 aliasAction u8
type mosaicAliasSerializer struct{}

func (mosaicAliasSerializer) TransactionType() tx.Type { return tx.TypeMosaicAlias }

func (mosaicAliasSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.MosaicAlias](t, tx.TypeMosaicAlias)
	if err != nil {
		return 0, err
	}
	if _, err := tx.AliasActionFromRaw(uint8(m.Action)); err != nil {
		return 0, err
	}
	return 8 + 8 + 1, nil
}

func (mosaicAliasSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicAlias](t, tx.TypeMosaicAlias)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.NamespaceID))
	w.WriteUint64(uint64(m.MosaicID))
	return w.WriteByte(uint8(m.Action))
}

func (mosaicAliasSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	namespaceID, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("namespace id: %w", err)
	}
	mosaicID, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("mosaic id: %w", err)
	}
	action, err := readAliasAction(r)
	if err != nil {
		return nil, err
	}
	return tx.NewMosaicAlias(network, action, types.NamespaceID(namespaceID), types.MosaicID(mosaicID)), nil
}

func readAliasAction(r interfaces.BinaryParser) (tx.AliasAction, error) {
	raw, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("alias action: %w", err)
	}
	return tx.AliasActionFromRaw(raw)
}
