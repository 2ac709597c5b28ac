package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/validationx"
)

func newCheckCmd(a *app) *cobra.Command {
	var minLength, maxLength int

	cmd := &cobra.Command{
		Use:   "check NAME|all TEXT",
		Short: "Run one or all format checks",
		Long: `Classifies TEXT with the named check, or with every check when NAME is
"all". The exit status is non-zero when a single check reports invalid.

Checks: ` + strings.Join(validationx.Names(), ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone := a.settings.Phone
			if cmd.Flags().Changed("min") {
				phone.MinLength = minLength
			}
			if cmd.Flags().Changed("max") {
				phone.MaxLength = maxLength
			}
			opts := []validationx.PhoneOption{
				validationx.WithMinLength(phone.MinLength),
				validationx.WithMaxLength(phone.MaxLength),
			}

			name, text := args[0], args[1]
			out := cmd.OutOrStdout()

			if strings.EqualFold(name, "all") {
				verdicts := validationx.Classify(text, opts...)
				verdicts[validationx.NameJSON] = validationx.IsValidJSONWithLimits(text, a.jsonLimits())
				for _, n := range validationx.Names() {
					fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", n)), verdict(verdicts[n]))
				}
				return nil
			}

			var (
				ok  bool
				err error
			)
			if strings.EqualFold(strings.TrimSpace(name), validationx.NameJSON) {
				ok = validationx.IsValidJSONWithLimits(text, a.jsonLimits())
			} else {
				ok, err = validationx.Check(name, text, opts...)
				if err != nil {
					return err
				}
			}

			a.logger.Debug("checked", log.Fields{"check": name, "valid": ok})
			fmt.Fprintln(out, verdict(ok))
			if !ok {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min", 0, "Minimum phone number length (0 = unbounded)")
	cmd.Flags().IntVar(&maxLength, "max", 0, "Maximum phone number length (0 = unbounded)")
	return cmd
}

func (a *app) jsonLimits() validationx.JSONLimits {
	return validationx.JSONLimits{
		MaxBytes: a.settings.JSON.MaxBytes,
		MaxDepth: a.settings.JSON.MaxDepth,
	}
}
