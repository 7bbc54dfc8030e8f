package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// transferSerializer: recipient[25] mosaicsCount u8 messageSize u16 mosaics message
type transferSerializer struct{}

func (transferSerializer) TransactionType() tx.Type { return tx.TypeTransfer }

func (s transferSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.Transfer](t, tx.TypeTransfer)
	if err != nil {
		return 0, err
	}
	if err := checkUint8("mosaics count", len(m.Mosaics)); err != nil {
		return 0, err
	}
	if err := checkUint16("message size", m.Message.Size()); err != nil {
		return 0, err
	}
	if _, err := tx.MessageTypeFromRaw(uint8(m.Message.Type)); err != nil {
		return 0, err
	}
	return types.AddressSize + 1 + 2 + mosaicSize*len(m.Mosaics) + m.Message.Size(), nil
}

func (s transferSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.Transfer](t, tx.TypeTransfer)
	if err != nil {
		return err
	}
	m.Recipient.Write(w)
	_ = w.WriteByte(uint8(len(m.Mosaics)))
	w.WriteUint16(uint16(m.Message.Size()))
	for _, mosaic := range tx.SortedMosaics(m.Mosaics) {
		writeMosaic(w, mosaic)
	}
	_ = w.WriteByte(uint8(m.Message.Type))
	w.WriteBytes(m.Message.Payload)
	return nil
}

func (s transferSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	recipient, err := types.ReadUnresolvedAddress(r)
	if err != nil {
		return nil, err
	}
	count, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("mosaics count: %w", err)
	}
	messageSize, err := r.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("message size: %w", err)
	}
	mosaics, err := readList(int(count), "mosaics", func() (tx.Mosaic, error) { return readMosaic(r) })
	if err != nil {
		return nil, err
	}

	var message tx.Message
	if messageSize > 0 {
		raw, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("message type: %w", err)
		}
		if message.Type, err = tx.MessageTypeFromRaw(raw); err != nil {
			return nil, err
		}
		if message.Payload, err = r.ReadBytes(int(messageSize) - 1); err != nil {
			return nil, fmt.Errorf("message payload: %w", err)
		}
	}
	return tx.NewTransfer(network, recipient, mosaics, message), nil
}
