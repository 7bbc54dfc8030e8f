package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	addresscodec "github.com/nemtech/nem2-e2e-tests/internal/codec/address-codec"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

func newAddressCmd(a *app) *cobra.Command {
	var (
		network string
		decode  bool
	)
	cmd := &cobra.Command{
		Use:   "address <public-key|address>",
		Short: "Derive or check an account address",
		Long: `Derive the address of a hex public key for the configured network, or with
--decode check an encoded address and print its raw hex form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.cfg.NetworkType()
			if err != nil {
				return err
			}
			if network != "" {
				if net, err = tx.NetworkTypeFromName(network); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()

			if decode {
				addr, err := addresscodec.DecodeAddressForNetwork(args[0], net)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, addr.String())
				return nil
			}

			pk, err := types.KeyFromHex(args[0])
			if err != nil {
				return err
			}
			addr, err := addresscodec.AddressFromPublicKey(pk, net)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, addresscodec.EncodeAddress(addr))
			fmt.Fprintln(out, addresscodec.PrettyAddress(addr))
			return nil
		},
	}
	cmd.Flags().StringVar(&network, "network", "", "network name, defaults to the configured network")
	cmd.Flags().BoolVar(&decode, "decode", false, "decode an encoded address instead")
	return cmd
}
