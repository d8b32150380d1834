package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/spikeekips/alexandria/base58"
)

func newBase58Command() *cobra.Command {
	var binary bool

	cmd := &cobra.Command{
		Use:   "base58",
		Short: "Convert stdin from or to base58",
		Args:  cobra.NoArgs,
	}
	cmd.PersistentFlags().BoolVar(&binary, "binary", false, "raw bytes instead of hex")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode",
			Short: "Encode hex, or raw bytes with --binary, to base58",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := ioutil.ReadAll(cmd.InOrStdin())
				if err != nil {
					return xerrors.Errorf("failed to read stdin: %w", err)
				}

				if !binary {
					h := string(bytes.TrimSpace(b))
					if b, err = hex.DecodeString(h); err != nil {
						return xerrors.Errorf("invalid hex input: %w", err)
					}
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(b))
				return err
			},
		},
		&cobra.Command{
			Use:   "decode",
			Short: "Decode base58 to hex, or raw bytes with --binary",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := ioutil.ReadAll(cmd.InOrStdin())
				if err != nil {
					return xerrors.Errorf("failed to read stdin: %w", err)
				}

				b, err := base58.Decode(string(bytes.TrimSpace(s)))
				if err != nil {
					return err
				}

				if binary {
					_, err = cmd.OutOrStdout().Write(b)
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
				return err
			},
		},
	)

	return cmd
}
