package add

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/settings"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/ui"
	"github.com/smartcontractkit/scaffold/internal/validation"
)

type Inputs struct {
	Name     string `validate:"required,alias_name" cli:"alias"`
	Location string `validate:"required" cli:"location"`
	Replace  bool   `cli:"--replace"`
}

type handler struct {
	log   *zerolog.Logger
	store *templateconfig.Store
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <alias> <location>",
		Short: "Adds a template alias",
		Long:  `Saves a short name for a template location (a local directory or a git repository ending in .git).`,
		Args:  cobra.ExactArgs(2),
		Example: `  scaffold templates add go-svc git@github.com:org/go-service-template.git
  scaffold templates add local ./templates/basic --replace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			replace, err := cmd.Flags().GetBool(settings.Flags.Replace.Name)
			if err != nil {
				return err
			}
			h := &handler{log: runtimeContext.Logger, store: runtimeContext.Templates}
			return h.Execute(Inputs{Name: args[0], Location: args[1], Replace: replace})
		},
	}

	addCmd.Flags().Bool(settings.Flags.Replace.Name, false, "Overwrite the alias if it already exists")

	return addCmd
}

func (h *handler) Execute(inputs Inputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}
	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := h.store.Add(inputs.Name, inputs.Location, inputs.Replace); err != nil {
		return fmt.Errorf("failed to save template alias: %w", err)
	}

	h.log.Debug().Str("alias", inputs.Name).Str("location", inputs.Location).Str("file", h.store.Path()).Msg("Template alias saved")

	ui.Line()
	ui.Success(fmt.Sprintf("Added %s -> %s", inputs.Name, inputs.Location))
	ui.Dim(fmt.Sprintf("Use it with: scaffold new %s", inputs.Name))
	ui.Line()

	return nil
}
