package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10n/pkg/culture"
)

func newMoneyCmd() *cobra.Command {
	var (
		iso  string
		lang string
		code bool
	)

	cmd := &cobra.Command{
		Use:   "money AMOUNT",
		Short: "Format a currency amount for a language",
		Example: `  l10n money --currency BRL 1234.5
  R$ 1.234,50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			var fopts []culture.FormatOption
			if code {
				fopts = append(fopts, culture.WithISOSymbols())
			}

			// without --lang the currency's home language decides the separators
			f := culture.New(lang, fopts...)
			if lang == "" {
				if f, err = culture.ForCurrency(iso, fopts...); err != nil {
					return err
				}
			}

			s, err := f.Currency(amount, iso)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVarP(&iso, "currency", "c", "USD", "ISO 4217 currency code")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language (default: the currency's home language)")
	cmd.Flags().BoolVar(&code, "iso", false, "print the ISO code instead of the symbol")
	return cmd
}
