package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/docker/go-units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// testBuilder returns a builder that parses args on a private flag set so
// tests never touch flag.CommandLine.
func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	b.flagSet = fs
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Same(t, flag.CommandLine, b.flagSet)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := testBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Adapter: Adapter{EndpointURL: "http://localhost:8080/"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "http://localhost:8080/", cfg.Adapter.EndpointURL)
}

// TestBuild_LaterSourceOverridesEarlier verifies that a non-zero field from a
// later source replaces the earlier value, while zero fields do not.
func TestBuild_LaterSourceOverridesEarlier(t *testing.T) {
	b := testBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Upload: Upload{Ceiling: ByteSize(5 * units.MiB)},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ByteSize(5*units.MiB), cfg.Upload.Ceiling)
	assert.Equal(t, DefaultMaxFiles, cfg.Upload.MaxFiles)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// TestBuild_RejectsNegativeLimits verifies that the merged config is validated.
func TestBuild_RejectsNegativeLimits(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{Upload: Upload{MaxFiles: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidUploadConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_AppendsDefaultConfig verifies the defaults entry.
func TestWithDefaults_AppendsDefaultConfig(t *testing.T) {
	b := testBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultCeiling, b.configs[0].Upload.Ceiling)
	assert.Equal(t, DefaultServerAddress, b.configs[0].Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := testBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("UPLOAD_CEILING", "10MB")

	b := testBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, ByteSize(10*units.MiB), b.configs[0].Upload.Ceiling)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable env value is
// recorded and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("UPLOAD_CEILING", "lots")

	b := testBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReadsArgs verifies that flags land in the appended config.
func TestWithFlags_ReadsArgs(t *testing.T) {
	b := testBuilder("-endpoint", "http://example.test/exec", "-max-files", "7")
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://example.test/exec", b.configs[0].Adapter.EndpointURL)
	assert.Equal(t, 7, b.configs[0].Upload.MaxFiles)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse errors are kept.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := testBuilder("-no-such-flag")
	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.EndpointURL = "https://script.example/exec"
	path := writeTempJSONConfig(t, payload)

	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "https://script.example/exec", b.configs[1].Adapter.EndpointURL)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_JSONOverridesFlagsOverridesEnv verifies source priority end to end.
func TestChain_JSONOverridesFlagsOverridesEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.RequestTimeout = Duration(45 * time.Second)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_ENDPOINT_URL", "http://env.test/")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "10s")
	t.Setenv("UPLOAD_MAX_FILES", "3")

	cfg, err := testBuilder("-endpoint", "http://flag.test/", "-c", path).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://flag.test/", cfg.Adapter.EndpointURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Upload.MaxFiles)
	assert.Equal(t, DefaultCeiling, cfg.Upload.Ceiling)
}
