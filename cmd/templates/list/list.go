package list

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/internal/fetch"
	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

type handler struct {
	log   *zerolog.Logger
	store *templateconfig.Store
	out   io.Writer
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists template aliases",
		Long:  `Displays every template alias saved in ~/.scaffold/templates.yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &handler{log: runtimeContext.Logger, store: runtimeContext.Templates, out: cmd.OutOrStdout()}
			return h.Execute()
		},
	}
}

func (h *handler) Execute() error {
	cfg, err := h.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load template aliases: %w", err)
	}

	if len(cfg.Templates) == 0 {
		ui.Line()
		ui.Warning("No template aliases configured")
		ui.Dim("Add one with: scaffold templates add <alias> <location>")
		ui.Line()
		return nil
	}

	fmt.Fprintln(h.out, FormatAliasesTable(cfg.Templates))
	return nil
}

func FormatAliasesTable(aliases []templateconfig.Alias) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Alias", "Location", "Source"})

	for _, a := range aliases {
		source := "local"
		if fetch.IsRemote(a.Location) {
			source = "git"
		}
		t.AppendRow(table.Row{a.Name, a.Location, source})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter},
	})

	t.SortBy([]table.SortBy{
		{Name: "Alias", Mode: table.Asc},
	})

	return t.Render()
}
