package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/internal/runtime"
)

// Default placeholder value
var Version = "development"

// Number returns the version without any leading label, e.g. "v1.0.3" for "version v1.0.3".
func Number() string {
	fields := strings.Fields(Version)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the scaffold version",
		Long:  "This command prints the current version of scaffold",
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeContext.Logger.Debug().Str("version", Version).Msg("Printing version")
			fmt.Fprintln(cmd.OutOrStdout(), "scaffold", Version)
			return nil
		},
	}

	return versionCmd
}
