package main

import (
	"fmt"

	"cipherriot/internal"
	"cipherriot/internal/cipher"

	"github.com/spf13/cobra"
)

func (a *app) newTableCmd() *cobra.Command {
	f := &cipherFlags{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the plain to cipher alphabet for the configured cipher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.buildCipher(cmd, f, internal.ModeEncode)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, internal.Label("Algorithm", string(c.Algorithm())))
			fmt.Fprintln(w, internal.Label("Plain ", cipher.Letters))
			fmt.Fprintln(w, internal.Label("Cipher", internal.Style(cipher.Table(c.Engine()), internal.Bold, internal.Cyan)))
			return nil
		},
	}
	addCipherFlags(cmd, f)
	return cmd
}

func (a *app) newCiphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List the available cipher algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, reg := range cipher.Algorithms() {
				name := fmt.Sprintf("%-8s", reg.Algorithm)
				fmt.Fprintf(w, "%s  %s\n", internal.Style(name, internal.Bold, internal.Blue), reg.Description)
			}
			if alg, err := cipher.ParseAlgorithm(a.cfg.Algorithm); err == nil {
				fmt.Fprintln(w, internal.Label("Default", string(alg)))
			}
			return nil
		},
	}
}

func (a *app) newSelfTestCmd() *cobra.Command {
	var (
		opts       internal.SelfTestOptions
		algorithms []string
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip random messages through every cipher and option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range algorithms {
				alg, err := cipher.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				opts.Algorithms = append(opts.Algorithms, alg)
			}

			fmt.Fprintln(cmd.OutOrStdout(), internal.Banner(version))
			failed, err := internal.RunSelfTest(cmd.Context(), cmd.OutOrStdout(), a.logger, opts)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d case(s)", errSelfTestFailed, failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Messages, "messages", "n", 25, "Random messages per case")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed (0 = time based)")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "Limit to these algorithms (default: all)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
