package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10n/core/contentmap"
	"github.com/dmitrymomot/l10n/core/localizer"
)

// ErrInvalidPair is returned for --set values that are not code=text.
var ErrInvalidPair = errors.New("expected code=text")

func newEncodeCmd(opts *options) *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a content map from code=text pairs",
		Example: `  l10n encode --set en=Car --set pt=Carro
  {"en":"Car","pt":"Carro"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			m := make(contentmap.Map, len(pairs))
			for _, pair := range pairs {
				code, text, ok := strings.Cut(pair, "=")
				if !ok || strings.TrimSpace(code) == "" {
					return fmt.Errorf("%w: %q", ErrInvalidPair, pair)
				}
				m[strings.TrimSpace(code)] = text
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), contentmap.New(r).Encode(m))
			return err
		},
	}

	cmd.Flags().StringArrayVar(&pairs, "set", nil, "language text as code=text, repeatable")
	return cmd
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode TEXT",
		Short: "Print the supported entries of a content map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			m, err := contentmap.New(r).Decode(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range r.Supported() {
				if text, ok := m[code]; ok {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", code, text); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "resolve TEXT",
		Short: "Resolve a content map to the text of one language",
		Long: `Resolve prints the text for --lang, falling back to the first supported
language and then to any entry. Text that is not a content map is printed unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			text := args[0]
			m, ok := contentmap.New(r).TryDecode(text)
			if ok {
				code, supported := r.Canonical(lang)
				if !supported {
					code = r.First()
				}
				if text, err = localizer.Resolve(m, code, r.First()); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "target language (default: first supported)")
	return cmd
}

func newLanguagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range r.Supported() {
				kind := "optional"
				if containsFold(r.Required(), code) {
					kind = "required"
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", code, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
