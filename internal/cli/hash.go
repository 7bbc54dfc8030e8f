package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	binarycodec "github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto/algorithms/ed25519"
)

func newHashCmd(a *app) *cobra.Command {
	var (
		file   string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "hash [hex]",
		Short: "Compute the transaction hash of a payload",
		Long: `Compute the transaction hash of a serialized top-level transaction using
the configured generation hash. With --verify the signature is checked too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genHash, err := a.cfg.GenesisHash()
			if err != nil {
				return err
			}
			raw, err := readInput(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			payload, err := decodeHexInput(raw)
			if err != nil {
				return err
			}
			h, err := binarycodec.TransactionHash(payload, genHash)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.String())

			if !verify {
				return nil
			}
			ok, err := binarycodec.VerifySignature(payload, genHash, ed25519.NewED25519Provider())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature does not verify")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature: valid")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the hex payload from a file (- for stdin)")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the payload signature")
	return cmd
}
