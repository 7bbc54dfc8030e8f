package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
	"github.com/nemtech/nem2-e2e-tests/internal/protocol/packet"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		file     string
		asPacket bool
	)
	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode a transaction payload to JSON",
		Long: `Decode a hex encoded transaction payload and print its JSON model.

With --packet the input is a push transactions packet and every
transaction it carries is printed as one JSON array.

Examples:
    nem2codec decode 0000...5441...
    nem2codec decode --file payload.hex
    nem2codec decode --packet --file packet.hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			payload, err := decodeHexInput(raw)
			if err != nil {
				return err
			}
			if asPacket {
				return a.decodePacket(cmd.OutOrStdout(), payload)
			}
			t, err := a.codec.Deserialize(payload)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			logger := a.component("decode")
			logger.Info().Str("type", t.TxType().String()).Int("size", len(payload)).Msg("decoded transaction")
			return writeJSON(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the hex payload from a file (- for stdin)")
	cmd.Flags().BoolVar(&asPacket, "packet", false, "input is a push transactions packet")
	return cmd
}

func (a *app) decodePacket(out io.Writer, buf []byte) error {
	payloads, err := packet.NewCodec(a.cfg.Packet.MaxSize).Transactions(buf)
	if err != nil {
		return fmt.Errorf("packet: %w", err)
	}
	txs := make([]tx.Transaction, 0, len(payloads))
	for i, p := range payloads {
		t, err := a.codec.Deserialize(p)
		if err != nil {
			return fmt.Errorf("packet transaction %d: %w", i, err)
		}
		txs = append(txs, t)
	}
	logger := a.component("decode")
	logger.Info().Int("transactions", len(txs)).Msg("decoded packet")
	return writeJSON(out, txs)
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
