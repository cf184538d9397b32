package templates_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/cmd/templates"
	"github.com/smartcontractkit/scaffold/internal/runtime"
	"github.com/smartcontractkit/scaffold/internal/templateconfig"
	"github.com/smartcontractkit/scaffold/internal/testutil"
	"github.com/smartcontractkit/scaffold/internal/ui"
)

func setup(t *testing.T) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	uiOut := &bytes.Buffer{}
	ui.SetOutput(uiOut, uiOut)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })

	ctx := &runtime.Context{
		Logger:    testutil.NewTestLogger(),
		Viper:     viper.New(),
		Templates: templateconfig.NewStoreWithPath(testutil.NewTestLogger(), filepath.Join(t.TempDir(), "templates.yaml")),
	}
	return ctx, uiOut
}

func execute(t *testing.T, ctx *runtime.Context, args ...string) (string, error) {
	t.Helper()

	cmd := templates.New(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTemplatesLifecycle(t *testing.T) {
	ctx, uiOut := setup(t)

	_, err := execute(t, ctx, "list")
	require.NoError(t, err)
	assert.Contains(t, uiOut.String(), "No template aliases configured")

	_, err = execute(t, ctx, "add", "go-svc", "git@github.com:org/go-svc.git")
	require.NoError(t, err)
	_, err = execute(t, ctx, "add", "basic", "./templates/basic")
	require.NoError(t, err)
	assert.Contains(t, uiOut.String(), "Added go-svc -> git@github.com:org/go-svc.git")

	out, err := execute(t, ctx, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "git@github.com:org/go-svc.git")
	assert.Contains(t, out, "./templates/basic")
	assert.Less(t, strings.Index(out, "basic"), strings.Index(out, "go-svc"))

	_, err = execute(t, ctx, "add", "basic", "./elsewhere")
	assert.ErrorIs(t, err, templateconfig.ErrAliasExists)

	_, err = execute(t, ctx, "add", "basic", "./elsewhere", "--replace")
	require.NoError(t, err)
	location, err := ctx.Templates.Resolve("basic")
	require.NoError(t, err)
	assert.Equal(t, "./elsewhere", location)

	uiOut.Reset()
	_, err = execute(t, ctx, "remove", "basic", "missing")
	require.NoError(t, err)
	assert.Contains(t, uiOut.String(), "Removed basic")
	assert.Contains(t, uiOut.String(), "Alias missing is not configured")

	cfg, err := ctx.Templates.Load()
	require.NoError(t, err)
	assert.Equal(t, []templateconfig.Alias{{Name: "go-svc", Location: "git@github.com:org/go-svc.git"}}, cfg.Templates)
}

func TestAddRejectsInvalidAlias(t *testing.T) {
	ctx, _ := setup(t)

	_, err := execute(t, ctx, "add", "has space", "./x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = execute(t, ctx, "add", "only-one-arg")
	assert.Error(t, err)
}
