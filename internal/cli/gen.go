package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"inspector-kit/examples/scene"
	"inspector-kit/internal/diagnostic"
	"inspector-kit/internal/gen"
)

func (a *app) newGenCommand() *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:       "gen [Type...]",
		Short:     "Generate static inspector functions for sample types",
		Long:      "Generate one Go file per type with a Draw<Type> function. All sample types are generated when none is named.",
		ValidArgs: scene.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = scene.Names()
			}

			types := make([]reflect.Type, 0, len(names))
			for _, name := range names {
				t, err := lookupType(name)
				if err != nil {
					return err
				}

				types = append(types, t)
			}

			g := gen.NewGenerator(a.genConfig(), a.cache(), nil)

			files, err := g.Generate(types...)
			if err != nil {
				return err
			}

			diags := g.Diagnostics()
			printDiagnostics(cmd.ErrOrStderr(), diags)

			if err := diags.Error(); err != nil {
				return err
			}

			if stdout {
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", f.Filename, f.Content)
				}

				return nil
			}

			if err := gen.WriteFiles(a.fs, files, a.cfg.Gen.OutputDir); err != nil {
				return err
			}

			for _, f := range files {
				path := filepath.Join(a.cfg.Gen.OutputDir, f.Filename)
				color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "wrote ")
				fmt.Fprintln(cmd.OutOrStdout(), path)
				a.logger.Debug("generated file", zap.String("path", path), zap.Int("bytes", len(f.Content)))
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("package", "", "package name of the generated files")
	flags.String("package-path", "", "import path of the generated package")
	flags.String("out", "", "output directory")
	flags.Bool("comments", true, "emit doc comments")
	flags.BoolVar(&stdout, "stdout", false, "print the generated source instead of writing files")

	_ = a.v.BindPFlag("gen.package", flags.Lookup("package"))
	_ = a.v.BindPFlag("gen.package_path", flags.Lookup("package-path"))
	_ = a.v.BindPFlag("gen.output_dir", flags.Lookup("out"))
	_ = a.v.BindPFlag("gen.comments", flags.Lookup("comments"))

	return cmd
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		c := color.New(color.FgBlue)

		switch d.Severity {
		case diagnostic.DiagnosticError:
			c = color.New(color.FgRed, color.Bold)
		case diagnostic.DiagnosticWarning:
			c = color.New(color.FgYellow)
		}

		c.Fprintf(w, "%s: ", d.Severity)
		fmt.Fprintln(w, d.String())
	}
}
