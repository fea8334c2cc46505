package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version":   version,
				"commit":    commit,
				"buildDate": date,
				"goVersion": runtime.Version(),
				"platform":  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(info)
			case "yaml":
				return outputYAML(info)
			default:
				fmt.Printf("fegg %s (commit %s, built %s, %s, %s/%s)\n",
					version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)

				return nil
			}
		},
	}
}
