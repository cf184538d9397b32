package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/scaffold/cmd/inspect"
	"github.com/smartcontractkit/scaffold/cmd/scaffoldnew"
	"github.com/smartcontractkit/scaffold/cmd/templates"
	"github.com/smartcontractkit/scaffold/cmd/version"
	"github.com/smartcontractkit/scaffold/internal/constants"
	"github.com/smartcontractkit/scaffold/internal/logger"
	scaffoldruntime "github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/settings"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCommand()

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootLogger := createLogger()
	rootViper := createViper()
	runtimeContext := scaffoldruntime.NewContext(rootLogger, rootViper)

	helpRunE := func(cmd *cobra.Command, args []string) error {
		err := cmd.Help()
		if err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "scaffold",
		Short:             "Project generator",
		Long:              `A command line tool that generates projects from parameterized template directories.`,
		DisableAutoGenTag: true,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := runtimeContext.Viper

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !isLoadSettings(cmd) {
				setVerbose(runtimeContext)
				return nil
			}

			if err := runtimeContext.AttachSettings(); err != nil {
				return err
			}

			if level := runtimeContext.Settings.LogLevel; level != "" {
				newLogger := runtimeContext.Logger.Level(logger.ParseLevel(level))
				runtimeContext.Logger = &newLogger
			}
			setVerbose(runtimeContext)

			if err := runtimeContext.AttachTemplateStore(); err != nil {
				return err
			}

			return nil
		},
	}

	cobra.AddTemplateFunc("wrappedFlagUsages", func(fs *pflag.FlagSet) string {
		// 100 = wrap width
		return strings.TrimRight(fs.FlagUsagesWrapped(100), "\n")
	})

	cobra.AddTemplateFunc("hasUngrouped", func(c *cobra.Command) bool {
		for _, cmd := range c.Commands() {
			if cmd.IsAvailableCommand() && !cmd.Hidden && cmd.GroupID == "" {
				return true
			}
		}
		return false
	})

	rootCmd.SetHelpTemplate(`
{{- with (or .Long .Short)}}{{.}}{{end}}

Usage:
{{- if .Runnable}}
  {{.UseLine}}
{{- else if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]
{{- end}}

{{- /* ============================================ */}}
{{- /* Available Commands Section                 */}}
{{- /* ============================================ */}}
{{- if .HasAvailableSubCommands}}

Available Commands:
  {{- $groupsUsed := false -}}
  {{- $firstGroup := true -}}

  {{- range $grp := .Groups}}
    {{- $has := false -}}
    {{- range $.Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID $grp.ID))}}
        {{- $has = true}}
      {{- end}}
    {{- end}}
    
    {{- if $has}}
      {{- $groupsUsed = true -}}
      {{- if $firstGroup}}{{- $firstGroup = false -}}{{else}}

{{- end}}

  {{printf "%s:" $grp.Title}}
      {{- range $.Commands}}
        {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID $grp.ID))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
        {{- end}}
      {{- end}}
    {{- end}}
  {{- end}}

  {{- if $groupsUsed }}
    {{- /* Groups are in use; show ungrouped as "Other" if any */}}
    {{- if hasUngrouped .}}

  Other:
      {{- range .Commands}}
        {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID ""))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
        {{- end}}
      {{- end}}
    {{- end}}
  {{- else }}
    {{- /* No groups at this level; show a flat list with no "Other" header */}}
    {{- range .Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
      {{- end}}
    {{- end}}
  {{- end }}
{{- end }}

{{- if .HasExample}}

Examples:
{{.Example}}
{{- end }}

{{- $local := (.LocalFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $local }}

Flags:
{{$local}}
{{- end }}

{{- $inherited := (.InheritedFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $inherited }}

Global Flags:
{{$inherited}}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end }}

Tip: New here? Run:
  $ scaffold new <template>
    to generate a project from a template directory or git repository.
`)

	// Definition of global flags:
	// env file flag is present for every subcommand
	rootCmd.PersistentFlags().StringP(
		settings.Flags.CliEnvFile.Name,
		settings.Flags.CliEnvFile.Short,
		constants.DefaultEnvFileName,
		fmt.Sprintf("Path to %s file with SCAFFOLD_* settings", constants.DefaultEnvFileName),
	)

	// verbose flag is present in every subcommand
	rootCmd.PersistentFlags().BoolP(
		settings.Flags.Verbose.Name,
		settings.Flags.Verbose.Short,
		false,
		"Run command in VERBOSE mode",
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	newCmd := scaffoldnew.New(runtimeContext)
	inspectCmd := inspect.New(runtimeContext)
	templatesCmd := templates.New(runtimeContext)
	versionCmd := version.New(runtimeContext)

	templatesCmd.RunE = helpRunE

	// Define groups (order controls display order)
	rootCmd.AddGroup(&cobra.Group{ID: "generate", Title: "Generate"})
	rootCmd.AddGroup(&cobra.Group{ID: "templates", Title: "Templates"})

	newCmd.GroupID = "generate"
	inspectCmd.GroupID = "templates"
	templatesCmd.GroupID = "templates"

	rootCmd.AddCommand(
		newCmd,
		inspectCmd,
		templatesCmd,
		versionCmd,
	)

	return rootCmd
}

func setVerbose(runtimeContext *scaffoldruntime.Context) {
	if verbose := runtimeContext.Viper.GetBool(settings.Flags.Verbose.Name); verbose {
		newLogger := runtimeContext.Logger.Level(zerolog.DebugLevel)
		runtimeContext.Logger = &newLogger
	}
}

func isLoadSettings(cmd *cobra.Command) bool {
	// It is not expected to have the .env and the config file when running the following commands
	var excludedCommands = map[string]struct{}{
		"version":    {},
		"bash":       {},
		"fish":       {},
		"powershell": {},
		"zsh":        {},
		"help":       {},
		"scaffold":   {},
	}

	_, exists := excludedCommands[cmd.Name()]
	return !exists
}

func createLogger() *zerolog.Logger {
	return logger.NewConsoleLogger()
}

func createViper() *viper.Viper {
	return viper.New() //nolint:forbidigo
}
