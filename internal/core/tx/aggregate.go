package tx

import (
	"encoding/json"
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// Cosignature is a detached signature over an aggregate hash.
type Cosignature struct {
	Signer    types.Key       `json:"signer"`
	Signature types.Signature `json:"signature"`
}

// Aggregate wraps embedded transactions. It serves both AggregateComplete
// and AggregateBonded; Common.Type tells them apart.
type Aggregate struct {
	BaseTx

	// TransactionsHash is the merkle root of the embedded transaction hashes
	TransactionsHash types.Hash256 `json:"transactionsHash"`

	Transactions []Transaction `json:"transactions"`
	Cosignatures []Cosignature `json:"cosignatures,omitempty"`
}

// NewAggregateComplete creates an aggregate that carries all required cosignatures.
func NewAggregateComplete(network NetworkType, transactionsHash types.Hash256, txs []Transaction, cosignatures []Cosignature) *Aggregate {
	return newAggregate(TypeAggregateComplete, network, transactionsHash, txs, cosignatures)
}

// NewAggregateBonded creates an aggregate that collects cosignatures on chain.
func NewAggregateBonded(network NetworkType, transactionsHash types.Hash256, txs []Transaction, cosignatures []Cosignature) *Aggregate {
	return newAggregate(TypeAggregateBonded, network, transactionsHash, txs, cosignatures)
}

func newAggregate(t Type, network NetworkType, hash types.Hash256, txs []Transaction, cosignatures []Cosignature) *Aggregate {
	return &Aggregate{
		BaseTx:           *NewBaseTx(t, network),
		TransactionsHash: hash,
		Transactions:     txs,
		Cosignatures:     cosignatures,
	}
}

// Validate checks the aggregate type and every embedded transaction
func (a *Aggregate) Validate() error {
	if err := a.BaseTx.Validate(); err != nil {
		return err
	}
	if !a.Type.IsAggregate() {
		return fmt.Errorf("%w: %s is not an aggregate", ErrInvalidTransactionType, a.Type)
	}
	for i, inner := range a.Transactions {
		if inner == nil {
			return required(fmt.Sprintf("transactions[%d]", i))
		}
		if inner.TxType().IsAggregate() {
			return fmt.Errorf("%w: transactions[%d] is a nested aggregate", ErrInvalidTransactionType, i)
		}
		if inner.GetCommon().Signer == nil {
			return required(fmt.Sprintf("transactions[%d].signer", i))
		}
		if err := inner.Validate(); err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
	}
	return nil
}

// UnmarshalJSON decodes the embedded transactions through FromJSON.
func (a *Aggregate) UnmarshalJSON(data []byte) error {
	type plain Aggregate
	var raw struct {
		plain
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Aggregate(raw.plain)
	a.Transactions = nil
	for i, msg := range raw.Transactions {
		inner, err := FromJSON(msg)
		if err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
		a.Transactions = append(a.Transactions, inner)
	}
	return nil
}
