package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/filex"
	"github.com/msto63/textkit/utils/jsonx"
	"github.com/msto63/textkit/utils/validationx"
)

func newJSONCmd(a *app) *cobra.Command {
	var validate, keepNames, keepNulls bool

	cmd := &cobra.Command{
		Use:   "json FILE|-",
		Short: "Validate or re-serialize JSON",
		Long: `Reads JSON from FILE or standard input ("-") and prints it with
camelCase property names, null properties removed and indentation from
json.indent. With --validate only the well-formedness verdict is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := filex.ReadInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("json input read", log.Fields{"source": args[0], "bytes": len(data)})

			if validate {
				ok := validationx.IsValidJSONWithLimits(string(data), a.jsonLimits())
				fmt.Fprintln(cmd.OutOrStdout(), verdict(ok))
				if !ok {
					return ErrCheckFailed
				}
				return nil
			}

			opts := []jsonx.Option{jsonx.WithIndent(a.settings.JSON.Indent)}
			if keepNames {
				opts = append(opts, jsonx.WithNaming(nil))
			}
			if keepNulls {
				opts = append(opts, jsonx.WithIgnoreNull(false))
			}
			out, err := jsonx.Reformat(data, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "Only check well-formedness")
	cmd.Flags().BoolVar(&keepNames, "keep-names", false, "Keep property names unchanged")
	cmd.Flags().BoolVar(&keepNulls, "keep-nulls", false, "Keep null properties")
	return cmd
}
