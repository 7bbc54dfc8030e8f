package binarycodec

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// BinarySerialization maps transaction types to their serializers and
// drives the envelope and embedded framing around them.
// It is read-only once construction returns, so it is safe for concurrent use.
type BinarySerialization struct {
	serializers map[tx.Type]TransactionSerializer
	log         zerolog.Logger
}

// Option configures a BinarySerialization under construction.
type Option func(*BinarySerialization)

// WithLogger sets the logger used to report registrations.
func WithLogger(log zerolog.Logger) Option {
	return func(b *BinarySerialization) {
		b.log = log.With().Str("component", "binarycodec").Logger()
	}
}

// New returns a codec with a serializer for every known transaction type.
// It panics if two serializers claim the same type.
func New(opts ...Option) *BinarySerialization {
	b := newEmpty(opts...)
	for _, s := range DefaultSerializers() {
		b.MustRegister(s)
	}
	b.MustRegister(NewAggregateSerializer(tx.TypeAggregateComplete, b))
	b.MustRegister(NewAggregateSerializer(tx.TypeAggregateBonded, b))
	return b
}

// NewWith returns a codec with exactly the given serializers.
// Aggregate serializers that need a back-reference can be added with Register afterwards.
func NewWith(serializers []TransactionSerializer, opts ...Option) (*BinarySerialization, error) {
	b := newEmpty(opts...)
	for _, s := range serializers {
		if err := b.Register(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func newEmpty(opts ...Option) *BinarySerialization {
	b := &BinarySerialization{
		serializers: make(map[tx.Type]TransactionSerializer),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DefaultSerializers returns one serializer for every non-aggregate type.
func DefaultSerializers() []TransactionSerializer {
	return []TransactionSerializer{
		transferSerializer{},
		registerNamespaceSerializer{},
		addressAliasSerializer{},
		mosaicAliasSerializer{},
		mosaicDefinitionSerializer{},
		mosaicSupplyChangeSerializer{},
		modifyMultisigSerializer{},
		hashLockSerializer{},
		secretLockSerializer{},
		secretProofSerializer{},
		accountAddressRestrictionSerializer{},
		accountMosaicRestrictionSerializer{},
		accountOperationRestrictionSerializer{},
		accountLinkSerializer{},
		mosaicAddressRestrictionSerializer{},
		mosaicGlobalRestrictionSerializer{},
		accountMetadataSerializer{},
		mosaicMetadataSerializer{},
		namespaceMetadataSerializer{},
	}
}

// Register adds a serializer.
// Returns ErrDuplicateSerializer if one is already registered for its type.
// Register must not be called once the codec is shared between goroutines.
func (b *BinarySerialization) Register(s TransactionSerializer) error {
	t := s.TransactionType()
	if _, exists := b.serializers[t]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSerializer, t)
	}
	b.serializers[t] = s
	b.log.Debug().Str("type", t.String()).Msg("registered serializer")
	return nil
}

// MustRegister adds a serializer and panics if registration fails.
func (b *BinarySerialization) MustRegister(s TransactionSerializer) {
	if err := b.Register(s); err != nil {
		panic(err)
	}
}

// Resolve returns the serializer for a transaction type.
func (b *BinarySerialization) Resolve(t tx.Type) (TransactionSerializer, error) {
	s, ok := b.serializers[t]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnsupportedTransactionType, uint16(t))
	}
	return s, nil
}

// Types returns all registered transaction types in ascending order.
func (b *BinarySerialization) Types() []tx.Type {
	out := make([]tx.Type, 0, len(b.serializers))
	for t := range b.serializers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns the number of registered serializers.
func (b *BinarySerialization) Count() int {
	return len(b.serializers)
}
