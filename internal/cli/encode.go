package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	addresscodec "github.com/nemtech/nem2-e2e-tests/internal/codec/address-codec"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto/algorithms/ed25519"
	"github.com/nemtech/nem2-e2e-tests/internal/protocol/packet"
)

// encodeResult is printed by the encode command.
type encodeResult struct {
	Type    tx.Type `json:"type"`
	Payload string  `json:"payload"`
	Hash    string  `json:"hash,omitempty"`
	Signer  string  `json:"signer,omitempty"`
	Address string  `json:"address,omitempty"`
	Packet  bool    `json:"packet,omitempty"`
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		file       string
		privateKey string
		asPacket   bool
	)
	cmd := &cobra.Command{
		Use:   "encode [json]",
		Short: "Encode a JSON transaction model to its binary payload",
		Long: `Encode a JSON transaction model and print the hex payload.

Missing network, max fee and deadline are taken from the configuration.
An aggregate without a transactions hash gets one computed from its
embedded transactions. With --private-key the payload is signed using the
configured generation hash and the transaction hash is printed too.

Examples:
    nem2codec encode --file transfer.json
    nem2codec encode --file transfer.json --private-key <hex> --packet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			t, err := tx.FromJSON(raw)
			if err != nil {
				return fmt.Errorf("parse model: %w", err)
			}
			if err := a.applyDefaults(t, time.Now()); err != nil {
				return err
			}
			if err := t.Validate(); err != nil {
				return fmt.Errorf("invalid transaction: %w", err)
			}

			result := encodeResult{Type: t.TxType(), Packet: asPacket}
			var payload []byte
			if privateKey != "" {
				genHash, err := a.cfg.GenesisHash()
				if err != nil {
					return err
				}
				kp, err := crypto.NewCryptoWrapper(ed25519.NewED25519Provider()).KeyPairFromHex(privateKey)
				if err != nil {
					return err
				}
				defer kp.Close()
				signed, err := a.codec.Sign(t, kp, genHash)
				if err != nil {
					return fmt.Errorf("sign: %w", err)
				}
				payload = signed.Payload
				result.Hash = signed.Hash.String()
				result.Signer = signed.Signer.String()
				addr, err := addresscodec.AddressFromPublicKey(signed.Signer, signed.Network)
				if err != nil {
					return err
				}
				result.Address = addresscodec.EncodeAddress(addr)
			} else {
				if payload, err = a.codec.Serialize(t); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			if asPacket {
				if payload, err = packet.NewCodec(a.cfg.Packet.MaxSize).PushTransactions(payload); err != nil {
					return err
				}
			}
			result.Payload = upperHex(payload)
			logger := a.component("encode")
			logger.Info().Str("type", t.TxType().String()).Int("size", len(payload)).Bool("signed", result.Hash != "").Msg("encoded transaction")
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the JSON model from a file (- for stdin)")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex ed25519 private key seed to sign with")
	cmd.Flags().BoolVar(&asPacket, "packet", false, "wrap the payload in a push transactions packet")
	return cmd
}

// applyDefaults fills the envelope fields the model left empty.
func (a *app) applyDefaults(t tx.Transaction, now time.Time) error {
	network, err := a.cfg.NetworkType()
	if err != nil {
		return err
	}
	c := t.GetCommon()
	if c.NetworkType == 0 {
		c.NetworkType = network
	}
	if c.MaxFee == 0 {
		c.MaxFee = a.cfg.DefaultMaxFee
	}
	if c.Deadline == 0 {
		c.Deadline = a.cfg.Deadline(now)
	}

	agg, ok := t.(*tx.Aggregate)
	if !ok {
		return nil
	}
	for _, inner := range agg.Transactions {
		if inner != nil && inner.GetCommon().NetworkType == 0 {
			inner.GetCommon().NetworkType = c.NetworkType
		}
	}
	if agg.TransactionsHash.IsZero() && len(agg.Transactions) > 0 {
		h, err := a.codec.TransactionsHash(agg.Transactions)
		if err != nil {
			return fmt.Errorf("transactions hash: %w", err)
		}
		agg.TransactionsHash = h
	}
	return nil
}
