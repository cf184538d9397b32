package scaffoldnew

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/scaffold/cmd/version"
	"github.com/smartcontractkit/scaffold/internal/descriptor"
	"github.com/smartcontractkit/scaffold/internal/exclude"
	"github.com/smartcontractkit/scaffold/internal/fetch"
	"github.com/smartcontractkit/scaffold/internal/materialize"
	"github.com/smartcontractkit/scaffold/internal/params"
	"github.com/smartcontractkit/scaffold/internal/render"
	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/settings"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/transformation"
	"github.com/smartcontractkit/scaffold/internal/ui"
	"github.com/smartcontractkit/scaffold/internal/validation"
)

type Inputs struct {
	Template        string            `validate:"required" cli:"template"`
	Name            string            `validate:"omitempty,project_name" cli:"--name"`
	Force           bool              `cli:"--force"`
	Append          bool              `cli:"--append"`
	TargetDirectory string            `cli:"--target-directory"`
	Passphrase      bool              `cli:"--passphrase"`
	Params          map[string]string `validate:"dive,keys,parameter_name,endkeys" cli:"--param"`
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var newCmd = &cobra.Command{
		Use:   "new <template>",
		Short: "Generate a new project from a template",
		Long: `Generate a new project from a template directory, a git repository ending in .git or a saved alias.

Every parameter declared in the template's .scaffold.toml is prompted for unless it is
preset with --param. Paths and file contents are rendered with the resolved values.`,
		Example: `  scaffold new ./templates/go-service --name billing-api
  scaffold new git@github.com:org/templates.git -p -P license=MIT -P port=8080
  scaffold new go-svc --append -d ./existing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// viper splits string slices on commas, so presets are read as a raw array
			presets, err := cmd.Flags().GetStringArray(settings.Flags.Param.Name)
			if err != nil {
				return err
			}
			runtimeContext.Viper.Set(settings.Flags.Param.Name, presets)

			handler := newHandler(runtimeContext)

			inputs, err := handler.ResolveInputs(args, runtimeContext.Viper)
			if err != nil {
				return err
			}
			err = handler.ValidateInputs(inputs)
			if err != nil {
				return err
			}
			return handler.Execute(cmd.Context(), inputs)
		},
	}

	newCmd.Flags().StringP(settings.Flags.Name.Name, settings.Flags.Name.Short, "", "Name of the generated project")
	newCmd.Flags().BoolP(settings.Flags.Force.Name, settings.Flags.Force.Short, false, "Replace the project directory if it already exists")
	newCmd.Flags().BoolP(settings.Flags.Append.Name, settings.Flags.Append.Short, false, "Write into the target directory instead of creating a project directory")
	newCmd.Flags().StringP(settings.Flags.TargetDirectory.Name, settings.Flags.TargetDirectory.Short, "", "Directory the project is created in (defaults to the current directory)")
	newCmd.Flags().BoolP(settings.Flags.Passphrase.Name, settings.Flags.Passphrase.Short, false, "Ask for the passphrase of the SSH key used to clone the template")
	newCmd.Flags().StringArrayP(settings.Flags.Param.Name, settings.Flags.Param.Short, nil, "Preset a template parameter as key=value (repeatable)")

	return newCmd
}

type handler struct {
	log       *zerolog.Logger
	settings  *settings.Settings
	templates *templateconfig.Store
	prompter  params.Prompter
	secrets   runtime.SecretPrompter
	cloner    fetch.Cloner
	validated bool
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:       ctx.Logger,
		settings:  ctx.Settings,
		templates: ctx.Templates,
		prompter:  ctx.Prompter,
		secrets:   ctx.Secrets,
		validated: false,
	}
}

func (h *handler) ResolveInputs(args []string, v *viper.Viper) (Inputs, error) {
	inputs := Inputs{
		Name:            v.GetString(settings.Flags.Name.Name),
		Force:           v.GetBool(settings.Flags.Force.Name),
		Append:          v.GetBool(settings.Flags.Append.Name),
		TargetDirectory: v.GetString(settings.Flags.TargetDirectory.Name),
		Passphrase:      v.GetBool(settings.Flags.Passphrase.Name),
		Params:          map[string]string{},
	}
	if len(args) > 0 {
		inputs.Template = args[0]
	}
	if inputs.TargetDirectory == "" && h.settings != nil {
		inputs.TargetDirectory = h.settings.TargetDirectory
	}
	targetDirectory, err := transformation.ExpandPath(inputs.TargetDirectory)
	if err != nil {
		return Inputs{}, fmt.Errorf("invalid --%s: %w", settings.Flags.TargetDirectory.Name, err)
	}
	inputs.TargetDirectory = targetDirectory

	for _, kv := range v.GetStringSlice(settings.Flags.Param.Name) {
		key, value, err := validation.SplitKeyValue(kv)
		if err != nil {
			return Inputs{}, fmt.Errorf("invalid --%s %q: %w", settings.Flags.Param.Name, kv, err)
		}
		inputs.Params[key] = value
	}

	return inputs, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if inputs.Force && inputs.Append {
		return fmt.Errorf("validation failed: --%s and --%s cannot be used together",
			settings.Flags.Force.Name, settings.Flags.Append.Name)
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(ctx context.Context, inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	location := inputs.Template
	if h.templates != nil {
		resolved, err := h.templates.Resolve(location)
		if err != nil {
			return err
		}
		location = resolved
	}

	fetcher, err := h.fetcher(ctx, location, inputs.Passphrase)
	if err != nil {
		return err
	}

	templateRoot, err := ui.WithSpinnerResult("Fetching template...", func() (string, error) {
		return fetcher.Fetch(ctx, location, inputs.Passphrase)
	})
	if err != nil {
		return err
	}

	desc, matcher, err := loadTemplate(h.log, templateRoot)
	if err != nil {
		return err
	}

	resolver := params.NewResolver(h.log, h.prompter, inputs.Params)
	builder, err := resolver.Resolve(ctx, desc.OrderedParameters(), inputs.Name)
	if err != nil {
		return err
	}

	renderer, err := render.New(render.WithBaseDir(templateRoot))
	if err != nil {
		return err
	}

	m := materialize.New(materialize.Options{
		TemplateRoot: templateRoot,
		BaseDir:      inputs.TargetDirectory,
		Append:       inputs.Append,
		Force:        inputs.Force,
		Exclude:      matcher,
		Renderer:     renderer,
		Logger:       h.log,
		OnTarget:     announceTarget,
	})

	res, err := m.Run(ctx, builder, desc)
	if err != nil {
		return err
	}

	h.log.Debug().Int("dirs", res.Dirs).Int("files", res.Files).Msg("Template materialized")

	ui.Line()
	ui.Success(fmt.Sprintf("Project generated in %s", res.TargetDir))
	if res.Notes != "" {
		ui.Line()
		ui.Box(res.Notes)
	}
	ui.Line()

	return nil
}

func announceTarget(dir string, action materialize.TargetAction) {
	switch action {
	case materialize.TargetOverwrite:
		ui.Warning(fmt.Sprintf("Overwriting existing directory %s", dir))
	case materialize.TargetAppend:
		ui.Dim(fmt.Sprintf("Appending to directory %s", dir))
	}
}

// fetcher builds the template fetcher, asking for the SSH key passphrase up front so the
// prompt never competes with the spinner.
func (h *handler) fetcher(ctx context.Context, location string, passphraseNeeded bool) (*fetch.Fetcher, error) {
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

	if passphraseNeeded && fetch.IsRemote(location) {
		if h.secrets == nil {
			return nil, fmt.Errorf("%w: no passphrase prompt available", params.ErrPrompt)
		}
		passphrase, err := h.secrets.Passphrase(ctx, "SSH key passphrase")
		if err != nil {
			return nil, err
		}
		opts = append(opts, fetch.WithPassphrase(func() (string, error) { return passphrase, nil }))
	}

	return fetch.New(h.log, opts...), nil
}

// loadTemplate reads and checks the descriptor of a fetched template and compiles its excludes.
func loadTemplate(log *zerolog.Logger, templateRoot string) (*descriptor.Descriptor, *exclude.Matcher, error) {
	desc, err := descriptor.Load(templateRoot)
	if err != nil {
		return nil, nil, err
	}
	if undecoded := desc.Undecoded(); len(undecoded) > 0 {
		log.Debug().Strs("keys", undecoded).Msg("Ignoring unknown descriptor keys")
	}
	if err := desc.Validate(); err != nil {
		return nil, nil, err
	}
	if err := desc.CheckRequires(version.Number()); err != nil {
		return nil, nil, err
	}

	matcher, err := exclude.Compile(desc.Exclude())
	if err != nil {
		return nil, nil, err
	}
	return desc, matcher, nil
}
