package cli

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information, set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(out, "inspectgen version: ")
			color.New(color.FgWhite).Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			color.New(color.FgWhite).Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			color.New(color.FgWhite).Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			color.New(color.FgWhite).Fprintln(out, runtime.Version())
		},
	}
}
