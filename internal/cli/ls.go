package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"inspector-kit/browse"
)

func (a *app) newLsCommand() *cobra.Command {
	var favorite bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory the way the file browser shows it",
		Long:  "List a directory with content types and thumbnail sizes. The directory defaults to browse.root.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Browse.Root
			if len(args) == 1 {
				dir = args[0]
			}

			dir = filepath.Clean(dir)
			out := cmd.OutOrStdout()

			lister := browse.NewLister(a.fs)
			thumbs := browse.NewThumbCache(a.fs, browse.WithThumbLogger(a.logger))

			entries, err := lister.List(dir)
			if err != nil {
				return err
			}

			dirColor := color.New(color.FgBlue, color.Bold)

			for _, e := range entries {
				if e.IsDir {
					dirColor.Fprintf(out, "%-28s", e.Name+"/")
					fmt.Fprintf(out, " %-28s %8s %s\n", "directory", "-", thumbSize(thumbs, e.Path))

					continue
				}

				kind := "unknown"
				if mime, err := lister.DetectMIME(e.Path); err == nil {
					kind = mime.String()
				}

				fmt.Fprintf(out, "%-28s %-28s %8d %s\n", e.Name, kind, e.Size, thumbSize(thumbs, e.Path))
			}

			store, err := browse.LoadStore(a.fs, a.cfg.Browse.Store)
			if err != nil {
				return err
			}

			if favorite {
				if store.AddFavorite(dir) {
					if err := browse.WriteStore(a.fs, store, a.cfg.Browse.Store); err != nil {
						return err
					}

					a.logger.Debug("favorite added", zap.String("dir", dir), zap.String("store", a.cfg.Browse.Store))
				}

				color.New(color.FgGreen).Fprintf(out, "%s is a favorite\n", dir)
			}

			if len(store.Favorites) > 0 {
				color.New(color.FgYellow, color.Bold).Fprintln(out, "Favorites:")

				for _, f := range store.Favorites {
					fmt.Fprintf(out, "  %s\n", f)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&favorite, "favorite", false, "add the directory to the favorites store")

	return cmd
}

func thumbSize(thumbs *browse.ThumbCache, path string) string {
	img, err := thumbs.GetOrCreate(path)
	if err != nil || img == nil {
		return "-"
	}

	b := img.Bounds()

	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}
