package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/convertx"
	"github.com/msto63/textkit/utils/validationx"
)

func newYearsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "years FROM [TO]",
		Short: "Whole years between two dates",
		Long: `Prints the whole years elapsed from FROM until TO, or until today in
UTC when TO is omitted. A year only counts once its anniversary is reached.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if !validationx.IsValidDateString(arg) {
					return tkerror.Newf("not a date: %q", arg).
						WithCode(tkerror.CodeInvalidFormat).
						WithOperation("years")
				}
			}

			from := convertx.ToDateTime(args[0])
			var years int
			if len(args) == 2 {
				years = convertx.YearsDifference(from, convertx.ToDateTime(args[1]))
			} else {
				years = convertx.YearsFromDate(from)
			}

			a.logger.Debug("years computed", log.Fields{"from": args[0], "years": years})
			fmt.Fprintln(cmd.OutOrStdout(), years)
			return nil
		},
	}
}
