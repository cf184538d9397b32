package templates

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/cmd/templates/add"
	"github.com/smartcontractkit/scaffold/cmd/templates/list"
	"github.com/smartcontractkit/scaffold/cmd/templates/remove"
	"github.com/smartcontractkit/scaffold/internal/runtime"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manages template aliases",
		Long: `Manages short names for template locations, stored in ~/.scaffold/templates.yaml.

An alias can be used anywhere a template location is expected:
  scaffold new <alias>`,
	}

	templatesCmd.AddCommand(list.New(runtimeContext))
	templatesCmd.AddCommand(add.New(runtimeContext))
	templatesCmd.AddCommand(remove.New(runtimeContext))

	return templatesCmd
}
