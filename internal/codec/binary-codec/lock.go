package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// hashLockSerializer: mosaic(u64,u64) duration u64 hash[32]
type hashLockSerializer struct{}

func (hashLockSerializer) TransactionType() tx.Type { return tx.TypeHashLock }

func (hashLockSerializer) BodySize(t tx.Transaction) (int, error) {
	if _, err := model[*tx.HashLock](t, tx.TypeHashLock); err != nil {
		return 0, err
	}
	return mosaicSize + 8 + types.Hash256Size, nil
}

func (hashLockSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.HashLock](t, tx.TypeHashLock)
	if err != nil {
		return err
	}
	writeMosaic(w, m.Mosaic)
	w.WriteUint64(m.Duration)
	m.Hash.Write(w)
	return nil
}

func (hashLockSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	mosaic, err := readMosaic(r)
	if err != nil {
		return nil, err
	}
	duration, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	hash, err := types.ReadHash256(r)
	if err != nil {
		return nil, err
	}
	return tx.NewHashLock(network, mosaic, duration, hash), nil
}

// secretLockSerializer: secret[32] mosaic(u64,u64) duration u64 hashAlgorithm u8 recipient[25]
type secretLockSerializer struct{}

func (secretLockSerializer) TransactionType() tx.Type { return tx.TypeSecretLock }

func (secretLockSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.SecretLock](t, tx.TypeSecretLock)
	if err != nil {
		return 0, err
	}
	if _, err := tx.HashAlgorithmFromRaw(uint8(m.HashAlgorithm)); err != nil {
		return 0, err
	}
	return types.Hash256Size + mosaicSize + 8 + 1 + types.AddressSize, nil
}

func (secretLockSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.SecretLock](t, tx.TypeSecretLock)
	if err != nil {
		return err
	}
	m.Secret.Write(w)
	writeMosaic(w, m.Mosaic)
	w.WriteUint64(m.Duration)
	_ = w.WriteByte(uint8(m.HashAlgorithm))
	m.Recipient.Write(w)
	return nil
}

func (secretLockSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	secret, err := types.ReadHash256(r)
	if err != nil {
		return nil, err
	}
	mosaic, err := readMosaic(r)
	if err != nil {
		return nil, err
	}
	duration, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	alg, err := readHashAlgorithm(r)
	if err != nil {
		return nil, err
	}
	recipient, err := types.ReadUnresolvedAddress(r)
	if err != nil {
		return nil, err
	}
	return tx.NewSecretLock(network, mosaic, duration, alg, secret, recipient), nil
}

// secretProofSerializer: secret[32] proofSize u16 hashAlgorithm u8 recipient[25] proof
type secretProofSerializer struct{}

func (secretProofSerializer) TransactionType() tx.Type { return tx.TypeSecretProof }

func (secretProofSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.SecretProof](t, tx.TypeSecretProof)
	if err != nil {
		return 0, err
	}
	if _, err := tx.HashAlgorithmFromRaw(uint8(m.HashAlgorithm)); err != nil {
		return 0, err
	}
	if err := checkUint16("proof size", len(m.Proof)); err != nil {
		return 0, err
	}
	return types.Hash256Size + 2 + 1 + types.AddressSize + len(m.Proof), nil
}

func (secretProofSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.SecretProof](t, tx.TypeSecretProof)
	if err != nil {
		return err
	}
	m.Secret.Write(w)
	w.WriteUint16(uint16(len(m.Proof)))
	_ = w.WriteByte(uint8(m.HashAlgorithm))
	m.Recipient.Write(w)
	w.WriteBytes(m.Proof)
	return nil
}

func (secretProofSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	secret, err := types.ReadHash256(r)
	if err != nil {
		return nil, err
	}
	proofSize, err := r.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("proof size: %w", err)
	}
	alg, err := readHashAlgorithm(r)
	if err != nil {
		return nil, err
	}
	recipient, err := types.ReadUnresolvedAddress(r)
	if err != nil {
		return nil, err
	}
	proof, err := r.ReadBytes(int(proofSize))
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}
	return tx.NewSecretProof(network, alg, secret, recipient, proof), nil
}

func readHashAlgorithm(r interfaces.BinaryParser) (tx.HashAlgorithm, error) {
	raw, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("hash algorithm: %w", err)
	}
	return tx.HashAlgorithmFromRaw(raw)
}
