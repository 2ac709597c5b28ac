package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/utils/convertx"
)

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode TEXT",
		Short: "Encode UTF-8 text as padded standard base64",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), convertx.Base64Encode(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode TEXT",
		Short: "Decode padded standard base64; whitespace is ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := convertx.Base64Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	})

	return cmd
}
