package binarycodec

import (
	"testing"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

var (
	testSigner    = types.Key{0xA1, 0xA2, 0xA3, 0xA4}
	testRemote    = types.Key{0xB1, 0xB2}
	testSignature = types.Signature{0xC1, 63: 0xC2}
	testHash      = types.Hash256{0xD1, 31: 0xD2}
	testRecipient = types.UnresolvedAddress{0x98, 0x11, 0x22, 24: 0x33}
	testAlias     = types.UnresolvedAddress{0x99, 0x44, 0xB2, 0x62, 0xC4, 0x6C, 0xEA, 0xBB, 0x85}
)

type sample struct {
	name string
	tx   tx.Transaction
}

func signedBy(t tx.Transaction, signer types.Key) tx.Transaction {
	s := signer
	t.GetCommon().Signer = &s
	return t
}

// nonAggregateSamples returns one or more models for each non-aggregate type.
func nonAggregateSamples() []sample {
	return []sample{
		{"transfer", tx.NewTransfer(tx.NetworkTestNet, testRecipient,
			[]tx.Mosaic{tx.NewMosaic(0x0DC67FBE1CAD29E3, 1), tx.NewMosaic(0x2CF403E85507F39E, 1000000)},
			tx.NewPlainMessage("hello"))},
		{"transfer to alias without mosaics", tx.NewTransfer(tx.NetworkMijinTest, testAlias, nil, tx.Message{})},
		{"transfer with secure message", tx.NewTransfer(tx.NetworkMainNet, testRecipient, nil,
			tx.Message{Type: tx.MessageSecure, Payload: []byte{0xDE, 0xAD}})},
		{"root namespace", tx.NewRootNamespace(tx.NetworkTestNet, "foo", 1000)},
		{"child namespace", tx.NewChildNamespace(tx.NetworkTestNet, "bar", tx.NamespaceIDFromName("foo", 0))},
		{"address alias", tx.NewAddressAlias(tx.NetworkTestNet, tx.AliasLink, 0x85BBEA6CC462B244, types.Address{0x98, 0x01})},
		{"mosaic alias", tx.NewMosaicAlias(tx.NetworkTestNet, tx.AliasUnlink, 0x85BBEA6CC462B244, 0x2CF403E85507F39E)},
		{"mosaic definition", tx.NewMosaicDefinition(tx.NetworkTestNet, testSigner, 7,
			tx.MosaicFlagSupplyMutable|tx.MosaicFlagTransferable, 6, 1000)},
		{"mosaic supply change", tx.NewMosaicSupplyChange(tx.NetworkTestNet, 0x2CF403E85507F39E, tx.SupplyIncrease, 500)},
		{"modify multisig", tx.NewModifyMultisigAccount(tx.NetworkTestNet, -1, 2,
			[]types.Key{{0x01}, {0x02}}, []types.Key{{0x03}})},
		{"hash lock", tx.NewHashLock(tx.NetworkTestNet, tx.NewMosaic(0x2CF403E85507F39E, 10000000), 480, testHash)},
		{"secret lock", tx.NewSecretLock(tx.NetworkTestNet, tx.NewMosaic(0x2CF403E85507F39E, 10), 100,
			tx.HashKeccak_256, testHash, testRecipient)},
		{"secret proof", tx.NewSecretProof(tx.NetworkTestNet, tx.HashHash_160, testHash, testRecipient, []byte("proof-bytes"))},
		{"account address restriction", tx.NewAccountAddressRestriction(tx.NetworkTestNet,
			tx.RestrictionFlagAddress|tx.RestrictionFlagBlock, []types.UnresolvedAddress{testRecipient}, []types.UnresolvedAddress{testAlias})},
		{"account mosaic restriction", tx.NewAccountMosaicRestriction(tx.NetworkTestNet,
			tx.RestrictionFlagMosaicID, []types.UnresolvedMosaicID{1, 2}, nil)},
		{"account operation restriction", tx.NewAccountOperationRestriction(tx.NetworkTestNet,
			tx.RestrictionFlagTransactionType|tx.RestrictionFlagOutgoing, []tx.Type{tx.TypeTransfer}, []tx.Type{tx.TypeSecretLock, tx.TypeHashLock})},
		{"account link", tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkLink)},
		{"mosaic address restriction", tx.NewMosaicAddressRestriction(tx.NetworkTestNet, 0x2CF403E85507F39E, 17, testRecipient, 0xFFFFFFFFFFFFFFFF, 5)},
		{"mosaic global restriction", tx.NewMosaicGlobalRestriction(tx.NetworkTestNet, 0x2CF403E85507F39E, 0, 17,
			0, tx.RestrictionNone, 5, tx.RestrictionGE)},
		{"account metadata", tx.NewAccountMetadata(tx.NetworkTestNet, tx.NewMetadataEntry(testRemote, 0xABCDEF, []byte("value"), 8))},
		{"mosaic metadata", tx.NewMosaicMetadata(tx.NetworkTestNet, tx.NewMetadataEntry(testRemote, 1, nil, 0), 0x2CF403E85507F39E)},
		{"namespace metadata", tx.NewNamespaceMetadata(tx.NetworkTestNet, tx.NewMetadataEntry(testRemote, 2, []byte{0x00, 0xFF}, 0), 0x85BBEA6CC462B244)},
	}
}

func aggregateSamples() []sample {
	inner := []tx.Transaction{
		signedBy(tx.NewTransfer(tx.NetworkTestNet, testRecipient, []tx.Mosaic{tx.NewMosaic(1, 1)}, tx.NewPlainMessage("hi")), testSigner),
		signedBy(tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkUnlink), testRemote),
		signedBy(tx.NewMosaicSupplyChange(tx.NetworkTestNet, 9, tx.SupplyDecrease, 1), testSigner),
	}
	return []sample{
		{"aggregate complete", tx.NewAggregateComplete(tx.NetworkTestNet, testHash, inner,
			[]tx.Cosignature{{Signer: testRemote, Signature: testSignature}})},
		{"aggregate bonded", tx.NewAggregateBonded(tx.NetworkTestNet, testHash, inner[:1], nil)},
		{"empty aggregate", tx.NewAggregateComplete(tx.NetworkTestNet, types.Hash256{}, nil, nil)},
	}
}

func allSamples() []sample {
	return append(nonAggregateSamples(), aggregateSamples()...)
}

func withEnvelope(t tx.Transaction) tx.Transaction {
	c := t.GetCommon()
	sig, signer := testSignature, testSigner
	c.Signature = &sig
	c.Signer = &signer
	c.MaxFee = 20000
	c.Deadline = 0x0102030405
	return t
}

func newTestCodec(t *testing.T) *BinarySerialization {
	t.Helper()
	return New()
}
