package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newGenkeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genkey",
		Short: "Generate a new private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := a.keypair.Generate(a.random)
			if err != nil {
				return err
			}

			log.Debug("private key generated", "public", pr.PublicKey())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), pr.String())
			return err
		},
	}
}

func newPubkeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey [private key]",
		Short: "Generate public key from private key",
		Long:  "Generate public key from private key; the private key is read from the first line of stdin when not given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s string
			if len(args) > 0 {
				s = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				s = line
			}

			pr, err := a.keypair.NewPrivateKeyFromText([]byte(s))
			if err != nil {
				return err
			}

			pk := pr.PublicKey()
			log.Debug("public key derived", "public", pk)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), pk.String())
			return err
		},
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !xerrors.Is(err, io.EOF) {
		return "", xerrors.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
