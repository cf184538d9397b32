package runtime

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/scaffold/internal/params"
	"github.com/smartcontractkit/scaffold/internal/settings"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

// SecretPrompter asks for values that must not be echoed.
type SecretPrompter interface {
	Passphrase(ctx context.Context, title string) (string, error)
}

// Context carries the dependencies shared by every command.
type Context struct {
	Logger    *zerolog.Logger
	Viper     *viper.Viper
	Settings  *settings.Settings
	Templates *templateconfig.Store
	Prompter  params.Prompter
	Secrets   SecretPrompter
}

func NewContext(logger *zerolog.Logger, viper *viper.Viper) *Context {
	prompter := ui.NewPrompter()
	return &Context{
		Logger:   logger,
		Viper:    viper,
		Prompter: prompter,
		Secrets:  prompter,
	}
}

func (ctx *Context) AttachSettings() error {
	var err error

	ctx.Settings, err = settings.New(ctx.Logger, ctx.Viper)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	return nil
}

func (ctx *Context) AttachTemplateStore() error {
	var err error

	ctx.Templates, err = templateconfig.NewStore(ctx.Logger)
	if err != nil {
		return fmt.Errorf("failed to open template aliases: %w", err)
	}

	return nil
}
