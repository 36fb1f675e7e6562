package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/memelaunch/launcher/config"
	"github.com/memelaunch/launcher/internal/launcher"
)

const templatesDoc = `[
  {
    "wallet": {
      "accountAddress": "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23",
      "privateKey": "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
    },
    "name": "Test Token",
    "symbol": "TT",
    "desc": "a token for tests",
    "imagePath": "./logo.png",
    "label": "Meme"
  },
  {
    "wallet": {
      "accountAddress": "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23",
      "privateKey": "0x8f2a55949038a9610f50fb23b5883af3b4ecb3c3bb792cbcefbd1542c692be63"
    },
    "name": "Wrong Key",
    "symbol": "WK",
    "desc": "key of another account",
    "imagePath": "./logo.png",
    "label": "Meme"
  }
]`

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("templates", "", "")
	flags.String("mode", "", "")
	flags.Int("concurrency", 0, "")
	return flags
}

func TestApplyFlags(t *testing.T) {
	t.Run("changed flags override config", func(t *testing.T) {
		// given
		cfg, err := config.Load()
		require.NoError(t, err)

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--templates", "/tmp/t.yaml", "--mode", "sequential", "--concurrency", "4"}))

		// when
		err = applyFlags(cfg, flags)

		// then
		require.NoError(t, err)
		require.Equal(t, "/tmp/t.yaml", cfg.Launch.TemplatesPath)
		require.Equal(t, "sequential", cfg.Launch.Mode)
		require.Equal(t, 4, cfg.Launch.Concurrency)
	})

	t.Run("unset flags keep config", func(t *testing.T) {
		// given
		cfg, err := config.Load()
		require.NoError(t, err)
		expected := *cfg.Launch

		// when
		err = applyFlags(cfg, newFlags())

		// then
		require.NoError(t, err)
		require.Equal(t, expected, *cfg.Launch)
	})
}

func TestCountFailed(t *testing.T) {
	outcomes := []launcher.Outcome{
		{Result: &launcher.Result{}},
		{Err: errors.New("boom")},
		{},
	}

	require.Equal(t, 2, countFailed(outcomes))
}

func TestCheckCmd(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(templatesDoc), 0o600))

	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"check", "--templates", path})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	// when
	err := RootCmd.Execute()

	// then
	require.ErrorIs(t, err, ErrChecksFailed)
	require.Contains(t, out.String(), "TT")
	require.Contains(t, out.String(), "0.01")
	require.Contains(t, out.String(), "login")
	require.Contains(t, out.String(), "1 ok / 1 failed")
}

func TestVersionCmd(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	// when
	err := RootCmd.Execute()

	// then
	require.NoError(t, err)
	require.Contains(t, out.String(), "launcher dev")
}

func TestRenderOutcomes(t *testing.T) {
	outcomes := []launcher.Outcome{
		{Index: 0, Account: "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", Symbol: "TT", Err: errors.New("upload rejected")},
	}

	t.Run("plain", func(t *testing.T) {
		// given
		out := &bytes.Buffer{}

		// when
		renderOutcomes(out, outcomes, true)

		// then
		require.Equal(t, "ERROR: upload rejected\n", out.String())
	})

	t.Run("table", func(t *testing.T) {
		// given
		out := &bytes.Buffer{}

		// when
		renderOutcomes(out, outcomes, false)

		// then
		require.Contains(t, out.String(), "TT")
		require.Contains(t, out.String(), "upload rejected")
		require.NotContains(t, out.String(), "ERROR:")
	})
}
