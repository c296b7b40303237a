// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the variables ParseFlags reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "SECRET_KEY", "DEBUG", "WEB_DIR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "dev-secret-key", cfg.SecretKey)
	assert.True(t, cfg.UsingDefaultSecret())
	assert.True(t, cfg.Debug, "debug should default to on")
	assert.Empty(t, cfg.WebDir)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("DEBUG", "false")
	t.Setenv("WEB_DIR", "/srv/web")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
	assert.False(t, cfg.UsingDefaultSecret())
	assert.False(t, cfg.Debug, "DEBUG=false should disable debug")
	assert.Equal(t, "/srv/web", cfg.WebDir)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-secret-key", "from-cli", "-debug=false"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port, "CLI should override env")
	assert.Equal(t, "from-cli", cfg.SecretKey, "CLI should override env")
	assert.False(t, cfg.Debug)
}

func TestParseFlags_Debug(t *testing.T) {
	testCases := []struct {
		name string
		env  string
		args []string
		want bool
	}{
		{"default", "", nil, true},
		{"env false", "false", nil, false},
		{"env 0", "0", nil, false},
		{"bare flag", "", []string{"-debug"}, true},
		{"bare flag beats env", "false", []string{"-debug"}, true},
		{"flag false beats env", "true", []string{"-debug=false"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			if tc.env != "" {
				t.Setenv("DEBUG", tc.env)
			}

			cfg, err := ParseFlags(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Debug)
		})
	}
}

func TestParseFlags_PortValues(t *testing.T) {
	testCases := []struct {
		port    string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"5000", 5000, false},
		{"8080", 8080, false},
		{"65535", 65535, false},
		{"abc", 0, true},
		{"50.5", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"70000", 0, true},
	}

	for _, tc := range testCases {
		t.Run("PORT="+tc.port, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", tc.port)

			cfg, err := ParseFlags([]string{})
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Port)
		})
	}
}

func TestParseFlags_InvalidDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "sometimes")

	_, err := ParseFlags([]string{})
	assert.Error(t, err, "expected error for unparseable DEBUG")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseFlags_AcceptsEnvFlag(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-env", "prod.env", "-p", "8080"})
	assert.NoError(t, err)
}

func TestEnvFileFromArgs(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		want         string
		wantExplicit bool
	}{
		{"no args", nil, ".env", false},
		{"other flags", []string{"-p", "8080"}, ".env", false},
		{"separate value", []string{"-env", "prod.env"}, "prod.env", true},
		{"double dash", []string{"--env", "prod.env"}, "prod.env", true},
		{"equals", []string{"-env=local.env", "-p", "1"}, "local.env", true},
		{"double dash equals", []string{"--env=local.env"}, "local.env", true},
		{"empty disables", []string{"-env="}, "", true},
		{"double dash empty disables", []string{"--env="}, "", true},
		{"after value flag", []string{"-p", "1", "-env", "x.env"}, "x.env", true},
		{"after bool flag", []string{"-debug", "-env", "x.env"}, "x.env", true},
		{"after flag with inline value", []string{"-p=1", "-env", "x.env"}, "x.env", true},
		{"value that looks like the flag", []string{"-secret-key", "-env", "x.env"}, ".env", false},
		{"after terminator", []string{"--", "-env", "x.env"}, ".env", false},
		{"after positional", []string{"serve", "-env", "x.env"}, ".env", false},
		{"after lone dash", []string{"-", "-env", "x.env"}, ".env", false},
		{"after unknown flag", []string{"-nope", "-env", "x.env"}, ".env", false},
		{"missing value", []string{"-env"}, ".env", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, explicit := EnvFileFromArgs(tc.args)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantExplicit, explicit)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing default file is ignored", func(t *testing.T) {
		err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"), false)
		assert.NoError(t, err)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"), true)
		assert.Error(t, err)
	})

	t.Run("empty path is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile("", false))
		assert.NoError(t, LoadEnvFile("", true))
	})

	t.Run("loads values without overriding", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "7000")

		path := filepath.Join(t.TempDir(), ".env")
		content := "PORT=6000\nSECRET_KEY=from-file\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		require.NoError(t, LoadEnvFile(path, true))
		t.Cleanup(func() { os.Unsetenv("SECRET_KEY") })

		cfg, err := ParseFlags([]string{})
		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Port, "existing PORT should win over file")
		assert.Equal(t, "from-file", cfg.SecretKey)
	})

	t.Run("directory path is an error", func(t *testing.T) {
		assert.Error(t, LoadEnvFile(t.TempDir(), false))
	})
}
