package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cpplite/pkg/core/config"
	clerror "github.com/msto63/cpplite/pkg/core/error"
)

func newConfigCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file,
CPPLITE_* environment variables and command line flags have been applied.

The first line names the file that was loaded, or "defaults".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f config.Format
			switch strings.ToLower(format) {
			case "toml":
				f = config.FormatTOML
			case "yaml", "yml":
				f = config.FormatYAML
			default:
				return clerror.Newf("unknown config format %q (want toml or yaml)", format).
					WithCode(clerror.CodeInvalidInput).
					WithDetail("format", format)
			}

			source := a.cfg.FilePath()
			if source == "" {
				source = "defaults"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", source)
			return a.settings.Encode(out, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "output format (toml|yaml)")
	return cmd
}
