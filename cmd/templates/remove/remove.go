package remove

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

type handler struct {
	log   *zerolog.Logger
	store *templateconfig.Store
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <alias>...",
		Short:   "Removes template aliases",
		Long:    `Removes one or more template aliases from ~/.scaffold/templates.yaml.`,
		Args:    cobra.MinimumNArgs(1),
		Example: "scaffold templates remove go-svc local",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &handler{log: runtimeContext.Logger, store: runtimeContext.Templates}
			return h.Execute(args)
		},
	}
}

func (h *handler) Execute(names []string) error {
	var removed []string
	for _, name := range names {
		err := h.store.Remove(name)
		if errors.Is(err, templateconfig.ErrUnknownAlias) {
			ui.Warning(fmt.Sprintf("Alias %s is not configured, skipping", name))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to remove template alias %s: %w", name, err)
		}
		removed = append(removed, name)
	}

	if len(removed) == 0 {
		return nil
	}

	ui.Line()
	for _, name := range removed {
		ui.Success(fmt.Sprintf("Removed %s", name))
	}
	ui.Line()

	return nil
}
