package inspect

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/internal/descriptor"
	"github.com/smartcontractkit/scaffold/internal/fetch"
	"github.com/smartcontractkit/scaffold/internal/params"
	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/settings"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect <template>",
		Short: "Show the parameters a template declares",
		Long:  `Fetches a template and prints the parameters, exclude patterns and notes declared in its .scaffold.toml.`,
		Args:  cobra.ExactArgs(1),
		Example: `  scaffold inspect ./templates/go-service
  scaffold inspect https://github.com/org/templates.git`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHandler(runtimeContext, cmd.OutOrStdout())
			return h.Execute(cmd.Context(), args[0])
		},
	}

	return inspectCmd
}

type handler struct {
	log       *zerolog.Logger
	settings  *settings.Settings
	templates *templateconfig.Store
	cloner    fetch.Cloner
	out       io.Writer
}

func newHandler(ctx *runtime.Context, out io.Writer) *handler {
	return &handler{
		log:       ctx.Logger,
		settings:  ctx.Settings,
		templates: ctx.Templates,
		out:       out,
	}
}

func (h *handler) Execute(ctx context.Context, location string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if h.templates != nil {
		resolved, err := h.templates.Resolve(location)
		if err != nil {
			return err
		}
		location = resolved
	}

	var opts []fetch.Option
	if h.settings != nil {
		opts = append(opts, fetch.WithCacheRoot(h.settings.CacheDir))
		if h.settings.SSHKeyFile != "" {
			opts = append(opts, fetch.WithSSHKeyFile(h.settings.SSHKeyFile))
		}
	}
	if h.cloner != nil {
		opts = append(opts, fetch.WithCloner(h.cloner))
	}
	fetcher := fetch.New(h.log, opts...)

	root, err := ui.WithSpinnerResult("Fetching template...", func() (string, error) {
		return fetcher.Fetch(ctx, location, false)
	})
	if err != nil {
		return err
	}

	desc, err := descriptor.Load(root)
	if err != nil {
		return err
	}
	if err := desc.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(h.out, FormatParametersTable(desc))
	fmt.Fprint(h.out, FormatTemplate(desc))
	return nil
}

// FormatParametersTable renders the declared parameters in resolution order.
func FormatParametersTable(desc *descriptor.Descriptor) string {
	parameters := desc.OrderedParameters()
	if len(parameters) == 0 {
		return "No parameters declared"
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Name", "Type", "Message", "Default", "Values", "Required"})

	for _, p := range parameters {
		defaultValue := ""
		if p.Default != nil {
			defaultValue = params.Display(p.Default)
		}
		values := make([]string, len(p.Values))
		for i, v := range p.Values {
			values[i] = params.Display(v)
		}
		t.AppendRow(table.Row{
			p.Name,
			string(p.Type),
			p.Message,
			defaultValue,
			strings.Join(values, ", "),
			p.Required,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft},
		{Number: 6, Align: text.AlignCenter},
	})

	return t.Render()
}

func FormatTemplate(desc *descriptor.Descriptor) string {
	var sb strings.Builder

	if requires := desc.Template.Requires; requires != "" {
		sb.WriteString(fmt.Sprintf("Requires: %s\n", requires))
	}

	exclude := desc.Exclude()
	if len(exclude) == 0 {
		sb.WriteString("Exclude: (none)\n")
	} else {
		sb.WriteString("Exclude:\n")
		for _, pattern := range exclude {
			sb.WriteString(fmt.Sprintf("  * %s\n", pattern))
		}
	}

	if notes := desc.Notes(); notes != "" {
		sb.WriteString("Notes:\n")
		for _, line := range strings.Split(strings.TrimRight(notes, "\n"), "\n") {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	return sb.String()
}
