package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeekips/alexandria/keypair"
)

// Version is replaced by `-ldflags "-X main.Version=..."`.
var Version = "0.1.0"

type app struct {
	settings *settings
	random   io.Reader
	keypair  keypair.X25519
}

func newRootCommand(random io.Reader) *cobra.Command {
	a := &app{settings: newSettings(), random: random}

	rootCmd := &cobra.Command{
		Use:           "alex",
		Short:         "alex(andria) creates and converts x25519 keys in base58 text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}
	a.settings.addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newGenkeyCommand(a),
		newPubkeyCommand(a),
		newBase58Command(),
		newConfigCommand(a),
		newVersionCommand(),
		newEncryptCommand(),
		newDecryptCommand(),
	)

	return rootCmd
}

func (a *app) prepare(cmd *cobra.Command) error {
	fs := cmd.Flags()

	if len(a.settings.config) > 0 {
		c, err := loadConfig(a.settings.config)
		if err != nil {
			return err
		}

		if err := a.settings.merge(fs, c); err != nil {
			return err
		}
	}

	if err := setLogging(a.settings, cmd.ErrOrStderr()); err != nil {
		return err
	}

	var deriver keypair.Deriver
	var err error
	if len(a.settings.deriver) > 0 {
		deriver, err = keypair.DefaultDerivers.Deriver(a.settings.deriver)
	} else {
		deriver, err = keypair.DefaultDerivers.Default()
	}
	if err != nil {
		return err
	}
	a.keypair = keypair.NewX25519(deriver)

	log.Debug("prepared", "config", a.settings.Config(), "keypair", a.keypair.String())

	return nil
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	return execute(newRootCommand(rand.Reader), args, in, out, errOut)
}

func execute(rootCmd *cobra.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		log.Error("failed", "error", err)
	}

	code, message := exitStatus(err)
	if code != 0 {
		fmt.Fprintln(errOut, "Error:", message)
	}

	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
