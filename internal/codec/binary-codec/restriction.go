package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// Account restriction bodies: flags u16 additionsCount u8 deletionsCount u8 additions deletions.

func restrictionHeadSize(flags tx.AccountRestrictionFlags, additions, deletions int) (int, error) {
	if err := flags.Check(); err != nil {
		return 0, err
	}
	if err := checkUint8("additions count", additions); err != nil {
		return 0, err
	}
	if err := checkUint8("deletions count", deletions); err != nil {
		return 0, err
	}
	return 2 + 1 + 1, nil
}

func writeRestrictionHead(w interfaces.BinarySerializer, flags tx.AccountRestrictionFlags, additions, deletions int) {
	w.WriteUint16(uint16(flags))
	_ = w.WriteByte(uint8(additions))
	_ = w.WriteByte(uint8(deletions))
}

func readRestrictionHead(r interfaces.BinaryParser) (tx.AccountRestrictionFlags, int, int, error) {
	raw, err := r.ReadUint16()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("restriction flags: %w", err)
	}
	flags, err := tx.AccountRestrictionFlagsFromRaw(raw)
	if err != nil {
		return 0, 0, 0, err
	}
	counts, err := r.ReadBytes(2)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("restriction counts: %w", err)
	}
	return flags, int(counts[0]), int(counts[1]), nil
}

type accountAddressRestrictionSerializer struct{}

func (accountAddressRestrictionSerializer) TransactionType() tx.Type {
	return tx.TypeAccountAddressRestriction
}

func (accountAddressRestrictionSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AccountAddressRestriction](t, tx.TypeAccountAddressRestriction)
	if err != nil {
		return 0, err
	}
	head, err := restrictionHeadSize(m.Flags, len(m.Additions), len(m.Deletions))
	if err != nil {
		return 0, err
	}
	return head + types.AddressSize*(len(m.Additions)+len(m.Deletions)), nil
}

func (accountAddressRestrictionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AccountAddressRestriction](t, tx.TypeAccountAddressRestriction)
	if err != nil {
		return err
	}
	writeRestrictionHead(w, m.Flags, len(m.Additions), len(m.Deletions))
	for _, a := range m.Additions {
		a.Write(w)
	}
	for _, a := range m.Deletions {
		a.Write(w)
	}
	return nil
}

func (accountAddressRestrictionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	flags, nAdd, nDel, err := readRestrictionHead(r)
	if err != nil {
		return nil, err
	}
	read := func() (types.UnresolvedAddress, error) { return types.ReadUnresolvedAddress(r) }
	additions, err := readList(nAdd, "additions", read)
	if err != nil {
		return nil, err
	}
	deletions, err := readList(nDel, "deletions", read)
	if err != nil {
		return nil, err
	}
	return tx.NewAccountAddressRestriction(network, flags, additions, deletions), nil
}

type accountMosaicRestrictionSerializer struct{}

func (accountMosaicRestrictionSerializer) TransactionType() tx.Type {
	return tx.TypeAccountMosaicRestriction
}

func (accountMosaicRestrictionSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AccountMosaicRestriction](t, tx.TypeAccountMosaicRestriction)
	if err != nil {
		return 0, err
	}
	head, err := restrictionHeadSize(m.Flags, len(m.Additions), len(m.Deletions))
	if err != nil {
		return 0, err
	}
	return head + 8*(len(m.Additions)+len(m.Deletions)), nil
}

func (accountMosaicRestrictionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AccountMosaicRestriction](t, tx.TypeAccountMosaicRestriction)
	if err != nil {
		return err
	}
	writeRestrictionHead(w, m.Flags, len(m.Additions), len(m.Deletions))
	for _, id := range m.Additions {
		w.WriteUint64(uint64(id))
	}
	for _, id := range m.Deletions {
		w.WriteUint64(uint64(id))
	}
	return nil
}

func (accountMosaicRestrictionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	flags, nAdd, nDel, err := readRestrictionHead(r)
	if err != nil {
		return nil, err
	}
	read := func() (types.UnresolvedMosaicID, error) {
		v, err := r.ReadUint64()
		return types.UnresolvedMosaicID(v), err
	}
	additions, err := readList(nAdd, "additions", read)
	if err != nil {
		return nil, err
	}
	deletions, err := readList(nDel, "deletions", read)
	if err != nil {
		return nil, err
	}
	return tx.NewAccountMosaicRestriction(network, flags, additions, deletions), nil
}

type accountOperationRestrictionSerializer struct{}

func (accountOperationRestrictionSerializer) TransactionType() tx.Type {
	return tx.TypeAccountOperationRestriction
}

func (accountOperationRestrictionSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AccountOperationRestriction](t, tx.TypeAccountOperationRestriction)
	if err != nil {
		return 0, err
	}
	head, err := restrictionHeadSize(m.Flags, len(m.Additions), len(m.Deletions))
	if err != nil {
		return 0, err
	}
	for _, list := range [][]tx.Type{m.Additions, m.Deletions} {
		for _, op := range list {
			if _, err := tx.TypeFromRaw(uint16(op)); err != nil {
				return 0, err
			}
		}
	}
	return head + 2*(len(m.Additions)+len(m.Deletions)), nil
}

func (accountOperationRestrictionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AccountOperationRestriction](t, tx.TypeAccountOperationRestriction)
	if err != nil {
		return err
	}
	writeRestrictionHead(w, m.Flags, len(m.Additions), len(m.Deletions))
	for _, op := range m.Additions {
		w.WriteUint16(uint16(op))
	}
	for _, op := range m.Deletions {
		w.WriteUint16(uint16(op))
	}
	return nil
}

func (accountOperationRestrictionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	flags, nAdd, nDel, err := readRestrictionHead(r)
	if err != nil {
		return nil, err
	}
	read := func() (tx.Type, error) {
		v, err := r.ReadUint16()
		if err != nil {
			return 0, err
		}
		return tx.TypeFromRaw(v)
	}
	additions, err := readList(nAdd, "additions", read)
	if err != nil {
		return nil, err
	}
	deletions, err := readList(nDel, "deletions", read)
	if err != nil {
		return nil, err
	}
	return tx.NewAccountOperationRestriction(network, flags, additions, deletions), nil
}

// mosaicAddressRestrictionSerializer: mosaicId u64 restrictionKey u64 previousValue u64
// newValue u64 targetAddress[25]
type mosaicAddressRestrictionSerializer struct{}

func (mosaicAddressRestrictionSerializer) TransactionType() tx.Type {
	return tx.TypeMosaicAddressRestriction
}

func (mosaicAddressRestrictionSerializer) BodySize(t tx.Transaction) (int, error) {
	if _, err := model[*tx.MosaicAddressRestriction](t, tx.TypeMosaicAddressRestriction); err != nil {
		return 0, err
	}
	return 4*8 + types.AddressSize, nil
}

func (mosaicAddressRestrictionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicAddressRestriction](t, tx.TypeMosaicAddressRestriction)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.MosaicID))
	w.WriteUint64(m.RestrictionKey)
	w.WriteUint64(m.PreviousValue)
	w.WriteUint64(m.NewValue)
	m.TargetAddress.Write(w)
	return nil
}

func (mosaicAddressRestrictionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	var fields [4]uint64
	for i := range fields {
		v, err := r.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("mosaic address restriction field %d: %w", i, err)
		}
		fields[i] = v
	}
	target, err := types.ReadUnresolvedAddress(r)
	if err != nil {
		return nil, err
	}
	return tx.NewMosaicAddressRestriction(network, types.UnresolvedMosaicID(fields[0]), fields[1], target, fields[2], fields[3]), nil
}

// mosaicGlobalRestrictionSerializer: mosaicId u64 referenceMosaicId u64 restrictionKey u64
// previousValue u64 newValue u64 previousType u8 newType u8
type mosaicGlobalRestrictionSerializer struct{}

func (mosaicGlobalRestrictionSerializer) TransactionType() tx.Type {
	return tx.TypeMosaicGlobalRestriction
}

func (mosaicGlobalRestrictionSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.MosaicGlobalRestriction](t, tx.TypeMosaicGlobalRestriction)
	if err != nil {
		return 0, err
	}
	if _, err := tx.MosaicRestrictionTypeFromRaw(uint8(m.PreviousType)); err != nil {
		return 0, err
	}
	if _, err := tx.MosaicRestrictionTypeFromRaw(uint8(m.NewType)); err != nil {
		return 0, err
	}
	return 5*8 + 2, nil
}

func (mosaicGlobalRestrictionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicGlobalRestriction](t, tx.TypeMosaicGlobalRestriction)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.MosaicID))
	w.WriteUint64(uint64(m.ReferenceMosaicID))
	w.WriteUint64(m.RestrictionKey)
	w.WriteUint64(m.PreviousValue)
	w.WriteUint64(m.NewValue)
	_ = w.WriteByte(uint8(m.PreviousType))
	return w.WriteByte(uint8(m.NewType))
}

func (mosaicGlobalRestrictionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	var fields [5]uint64
	for i := range fields {
		v, err := r.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("mosaic global restriction field %d: %w", i, err)
		}
		fields[i] = v
	}
	kinds, err := r.ReadBytes(2)
	if err != nil {
		return nil, fmt.Errorf("restriction types: %w", err)
	}
	previousType, err := tx.MosaicRestrictionTypeFromRaw(kinds[0])
	if err != nil {
		return nil, err
	}
	newType, err := tx.MosaicRestrictionTypeFromRaw(kinds[1])
	if err != nil {
		return nil, err
	}
	return tx.NewMosaicGlobalRestriction(network,
		types.UnresolvedMosaicID(fields[0]), types.UnresolvedMosaicID(fields[1]), fields[2],
		fields[3], previousType, fields[4], newType), nil
}
