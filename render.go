package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"schemegrip/internal/catalog"
	"schemegrip/internal/eventbus"
	"schemegrip/internal/ui"
	"schemegrip/internal/ui/logic"
)

var renderWidth int

// renderCmd prints one page without starting the TUI
var renderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Print a statically rendered page",
	Long: `Render a page of the catalog to stdout, every card included.

Examples:
  # Trending schemes
  schemegrip render

  # Second page of the most starred
  schemegrip render /top/page/2 --width 160`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

// pagesCmd lists every page a static build would produce
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List every page path with its range",
	Args:  cobra.NoArgs,
	RunE:  runPages,
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 120, "output width in columns")
}

func runRender(cmd *cobra.Command, args []string) error {
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}

	cfg, source, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	bus := eventbus.New()
	defer bus.Close()
	loader := catalog.NewLoader(bus, source, cfg.PageSize)
	defer loader.Stop()

	data, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPage(cfg, path, data, renderWidth))
	return nil
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg, source, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	bus := eventbus.New()
	defer bus.Close()
	loader := catalog.NewLoader(bus, source, cfg.PageSize)
	defer loader.Stop()

	paths, err := loader.Pages(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range paths {
		data, err := loader.Load(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		caption := "no repositories"
		if pc := data.Context; data.TotalCount > 0 {
			caption = logic.RangeCaption(pc.CurrentPage, pc.PageCount, data.TotalCount, cfg.PageSize)
		}
		fmt.Fprintf(out, "%-20s %s\n", path, caption)
	}
	return nil
}
