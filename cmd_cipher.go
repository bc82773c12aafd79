package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"cipherriot/internal"
	"cipherriot/internal/cipher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// cipherFlags are shared by every command that builds a cipher.
type cipherFlags struct {
	algorithm string
	offset    int
	alpha     int
	beta      int
	keyword   string
	pad       string
	blocks    bool
	symbols   string

	promptKeyword bool
	promptPad     bool
	padPassphrase bool
	padLength     int
	allowWeak     bool
	mask          bool
}

// outputFlags only apply to encode/decode.
type outputFlags struct {
	qr     bool
	verify bool
}

func addCipherFlags(cmd *cobra.Command, f *cipherFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "Cipher: caesar, atbash, affine, keyword (default from config)")
	fl.IntVar(&f.offset, "offset", cipher.DefaultOffset, "Caesar shift")
	fl.IntVar(&f.alpha, "alpha", cipher.DefaultAlpha, "Affine multiplier (coprime with 26)")
	fl.IntVar(&f.beta, "beta", cipher.DefaultBeta, "Affine shift (>= 0)")
	fl.StringVar(&f.keyword, "keyword", cipher.DefaultKeyword, "Keyword for the keyword cipher")
	fl.StringVar(&f.pad, "pad", "", "Numeric pad, digits only (e.g. 31415)")
	fl.BoolVar(&f.blocks, "blocks", false, "Hide spaces and group output in blocks of 5")
	fl.StringVar(&f.symbols, "symbols", cipher.DefaultSymbols, "Decoy symbols used by --blocks")

	fl.BoolVar(&f.promptKeyword, "prompt-keyword", false, "Securely prompt for the keyword (no echo)")
	fl.BoolVar(&f.promptPad, "prompt-pad", false, "Securely prompt for the pad digits (no echo)")
	fl.BoolVar(&f.padPassphrase, "pad-passphrase", false, "Derive the pad from a prompted passphrase (Argon2id)")
	fl.IntVar(&f.padLength, "pad-length", 64, "Number of digits derived by --pad-passphrase")
	fl.BoolVar(&f.allowWeak, "allow-weak-passphrase", false, "Accept short pad passphrases")
	fl.BoolVar(&f.mask, "mask", true, "With prompts, show * while typing (use --mask=false to disable)")

	cmd.MarkFlagsMutuallyExclusive("keyword", "prompt-keyword")
	cmd.MarkFlagsMutuallyExclusive("pad", "prompt-pad", "pad-passphrase")
}

// buildCipher layers flags over the loaded config and builds the cipher.
// Only flags the user actually set override config values.
func (a *app) buildCipher(cmd *cobra.Command, f *cipherFlags, mode internal.Mode) (*cipher.Cipher, error) {
	cfg := *a.cfg
	fl := cmd.Flags()

	if fl.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fl.Changed("offset") {
		cfg.Caesar.Offset = f.offset
	}
	if fl.Changed("alpha") {
		cfg.Affine.Alpha = f.alpha
	}
	if fl.Changed("beta") {
		cfg.Affine.Beta = f.beta
	}
	if fl.Changed("keyword") {
		cfg.Keyword.Word = f.keyword
	}
	if fl.Changed("pad") {
		cfg.Pad = f.pad
	}
	if fl.Changed("blocks") {
		cfg.Blocks.Enabled = f.blocks
	}
	if fl.Changed("symbols") {
		cfg.Blocks.Symbols = f.symbols
	}

	prompts := cmd.ErrOrStderr()
	if f.promptKeyword {
		kw, err := internal.PromptSecret(prompts, "keyword", f.mask, false)
		if err != nil {
			return nil, err
		}
		cfg.Keyword.Word = kw
	}
	if f.promptPad {
		pad, err := internal.PromptSecret(prompts, "pad", f.mask, false)
		if err != nil {
			return nil, err
		}
		cfg.Pad = strings.TrimSpace(pad)
	}
	if f.padPassphrase {
		// Ask twice when encoding; a typo there produces an undecodable message.
		pass, err := internal.PromptSecret(prompts, "pad passphrase", f.mask, mode == internal.ModeEncode)
		if err != nil {
			return nil, err
		}
		policy := cfg.PadPolicy()
		policy.AllowWeak = f.allowWeak
		pad, err := internal.DerivePad(pass, f.padLength, policy)
		if err != nil {
			return nil, err
		}
		cfg.Pad = pad
	}

	cc, err := cfg.CipherConfig()
	if err != nil {
		return nil, err
	}
	c, err := cipher.New(cc)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("cipher ready",
		zap.String("algorithm", string(c.Algorithm())),
		zap.Strings("stages", c.Stages()),
		zap.Int("pad_len", len(cc.Pad)),
		zap.Bool("prompted", f.promptKeyword || f.promptPad || f.padPassphrase))
	return c, nil
}

// readMessage joins args with spaces, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprintln(cmd.ErrOrStderr(), internal.Style("Reading message from terminal; end with Ctrl-D.", internal.Gray))
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	msg := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(msg, "\r"), nil
}

func (a *app) transcode(cmd *cobra.Command, f *cipherFlags, out *outputFlags, mode internal.Mode, args []string) error {
	msg, err := readMessage(cmd, args)
	if err != nil {
		return err
	}
	c, err := a.buildCipher(cmd, f, mode)
	if err != nil {
		return err
	}

	var result string
	if mode == internal.ModeEncode && out.verify {
		result, err = internal.EncodeVerified(c, msg)
		if err == nil {
			a.logger.Debug("round trip verified", zap.String("algorithm", string(c.Algorithm())))
		}
	} else {
		result, err = internal.Transcode(c, mode, msg, a.logger)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, result)
	if out.qr {
		if err := internal.RenderQR(w, result); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newTranscodeCmd(mode internal.Mode) *cobra.Command {
	f := &cipherFlags{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   mode.String() + " [message...]",
		Short: "Encode a message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transcode(cmd, f, out, mode, args)
		},
	}
	if mode == internal.ModeEncode {
		cmd.Aliases = []string{"e", "encrypt"}
		cmd.Flags().BoolVar(&out.verify, "verify", false, "Decode the result again and fail on mismatch")
	} else {
		cmd.Short = "Decode a message"
		cmd.Aliases = []string{"d", "decrypt"}
	}
	addCipherFlags(cmd, f)
	cmd.Flags().BoolVar(&out.qr, "qr", false, "Also print the result as a terminal QR code")
	return cmd
}

func (a *app) newRunCmd() *cobra.Command {
	f := &cipherFlags{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "run <mode> [message...]",
		Short: "Encode or decode, with the mode given as a word (e, encrypt, d, decrypt, ...)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := internal.ParseMode(args[0])
			if err != nil {
				return err
			}
			return a.transcode(cmd, f, out, mode, args[1:])
		},
	}
	addCipherFlags(cmd, f)
	cmd.Flags().BoolVar(&out.qr, "qr", false, "Also print the result as a terminal QR code")
	cmd.Flags().BoolVar(&out.verify, "verify", false, "When encoding, decode the result again and fail on mismatch")
	return cmd
}
