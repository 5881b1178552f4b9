package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"inspector-kit/examples/scene"
	"inspector-kit/internal/gen"
	"inspector-kit/meta"
)

// app is the state shared by all commands of one invocation.
type app struct {
	fs     afero.Fs
	v      *viper.Viper
	cfg    *Config
	logger *zap.Logger

	configPath string
	verbose    bool
}

// NewRootCommand creates the inspectgen command tree working on fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:     fs,
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "inspectgen",
		Short: "Describe annotated types and generate static inspector code",
		Long: color.CyanString(`inspectgen - metadata-driven object inspector tooling

Lists the members the inspector discovers for a type, in the order and
grouping the editor shows them, and compiles them into static drawing
functions that need no reflection at runtime.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./inspectgen.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newDescribeCommand())
	root.AddCommand(a.newGenCommand())
	root.AddCommand(a.newLsCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs inspectgen on the OS filesystem.
func Execute() error {
	root := NewRootCommand(afero.NewOsFs())
	if err := root.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)

		return err
	}

	return nil
}

func (a *app) setup() error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return err
	}

	a.logger = logger

	cfg, err := LoadConfig(a.v, a.fs, a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("package", cfg.Gen.Package),
		zap.String("output", cfg.Gen.OutputDir))

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func (a *app) cache() *meta.Cache {
	return scene.NewCache(a.cfg.Scan.Properties, a.cfg.Scan.Fields, meta.WithLogger(a.logger))
}

func (a *app) genConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:      a.cfg.Gen.Package,
		PackagePath:      a.cfg.Gen.PackagePath,
		OutputDir:        a.cfg.Gen.OutputDir,
		GenerateComments: a.cfg.Gen.Comments,
	}
}
