package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"primelab/cipher"
)

var errNoText = errors.New("no text given: use --text or pass it as arguments")

// cipherInput holds the flags shared by the cipher commands.
type cipherInput struct {
	text     string
	alphabet string
}

func (in *cipherInput) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&in.text, "text", "t", "", "text to transform (default: the arguments joined by spaces)")
	flags.StringVar(&in.alphabet, "alphabet", cipher.DefaultAlphabet, "alphabet; text is upper-cased and filtered to it")
}

func (in *cipherInput) resolve(args []string) (string, *cipher.Alphabet, error) {
	text := in.text
	if text == "" {
		text = strings.Join(args, " ")
	}
	if text == "" {
		return "", nil, usage(errNoText)
	}
	alphabet, err := cipher.PrepareAlphabet(in.alphabet)
	if err != nil {
		return "", nil, usage(err)
	}
	return text, alphabet, nil
}

func newAffineCmd(a *app) *cobra.Command {
	var (
		in         cipherInput
		multiplier int
		shift      int
	)

	cmd := &cobra.Command{
		Use:   "affine",
		Short: "Affine cipher: E(x) = (a*x + b) mod m",
	}
	flags := cmd.PersistentFlags()
	in.bind(flags)
	flags.IntVarP(&multiplier, "a", "a", 1, "multiplier; must be invertible modulo the alphabet size to decrypt")
	flags.IntVarP(&shift, "b", "b", 0, "shift")

	transform := func(name string, fn func(string, int, int, *cipher.Alphabet) (string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   name + " [text...]",
			Short: strings.ToUpper(name[:1]) + name[1:] + " text with the affine cipher",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, alphabet, err := in.resolve(args)
				if err != nil {
					return err
				}
				out, err := fn(text, multiplier, shift, alphabet)
				if err != nil {
					return usage(err)
				}
				a.logger.Debug("affine "+name,
					zap.Int("a", multiplier),
					zap.Int("b", shift),
					zap.Int("alphabet_size", alphabet.Len()),
				)
				_, err = fmt.Fprintln(a.stdout, out)
				return err
			},
		}
	}
	cmd.AddCommand(
		transform("encrypt", cipher.AffineEncrypt),
		transform("decrypt", cipher.AffineDecrypt),
	)
	return cmd
}

func newVigenereCmd(a *app) *cobra.Command {
	var (
		in  cipherInput
		key string
	)

	cmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenère cipher with a repeating key",
	}
	flags := cmd.PersistentFlags()
	in.bind(flags)
	flags.StringVarP(&key, "key", "k", "", "key; characters outside the alphabet are dropped")

	transform := func(name string, encrypt bool) *cobra.Command {
		return &cobra.Command{
			Use:   name + " [text...]",
			Short: strings.ToUpper(name[:1]) + name[1:] + " text with the Vigenère cipher",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, alphabet, err := in.resolve(args)
				if err != nil {
					return err
				}
				out, err := cipher.Vigenere(text, key, alphabet, encrypt)
				if err != nil {
					return usage(err)
				}
				a.logger.Debug("vigenere "+name, zap.Int("alphabet_size", alphabet.Len()))
				_, err = fmt.Fprintln(a.stdout, out)
				return err
			},
		}
	}
	cmd.AddCommand(
		transform("encrypt", true),
		transform("decrypt", false),
	)
	return cmd
}
