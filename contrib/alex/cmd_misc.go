package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/alexandria/common"
)

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective config in yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.settings.Config()
			if len(c.Deriver) < 1 {
				c.Deriver = a.keypair.Deriver().Name()
			}

			b, err := yaml.Marshal(c)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bytes.TrimSpace(b)))
			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := common.NewVersion(Version)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "alex(andria) %s\n", v)
			return err
		},
	}
}

// TODO encrypt and decrypt need a message format before they can be built.
func newEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt",
		Aliases: []string{"enc"},
		Short:   "Encrypt a message (not implemented)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.NotImplementedError.Newf("encrypt")
		},
	}
}

func newDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt",
		Aliases: []string{"dec"},
		Short:   "Decrypt a message (not implemented)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.NotImplementedError.Newf("decrypt")
		},
	}
}
