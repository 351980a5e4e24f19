package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

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

// ── parseEnv ──────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_ADMIN_USERNAME": "root",
		"APP_ADMIN_PASSWORD": "toor",

		"SERVER_ADDRESS":             "localhost:8080",
		"SERVER_READ_HEADER_TIMEOUT": "30s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "root", cfg.App.AdminUsername)
	assert.Equal(t, "toor", cfg.App.AdminPassword)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadHeaderTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourcesWin verifies the merge order: a field set by an
// earlier source is not overwritten by a later one, while unset fields are
// filled in.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from-env"}},
		&StructuredConfig{App: App{TokenSignKey: "from-flags", TokenIssuer: "issuer-from-flags"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer-from-flags", cfg.App.TokenIssuer)
	// untouched fields come from defaults
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_DefaultsAlone verifies that the defaults by themselves produce a
// valid runnable configuration matching the original deployment constants.
func TestBuild_DefaultsAlone(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, "UserManagementApi", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "admin", cfg.App.AdminUsername)
	assert.Equal(t, "password", cfg.App.AdminPassword)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

// ── JSON source ───────────────────────────────────────────────────────────────

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_issuer":   "json-issuer",
			"token_duration": "45m",
			"admin_username": "json-admin",
			"admin_password": "json-password",
		},
		"server": map[string]any{
			"http_address":        "localhost:9999",
			"read_header_timeout": "10s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "json-admin", cfg.App.AdminUsername)
	assert.Equal(t, "json-password", cfg.App.AdminPassword)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate_TableTest(t *testing.T) {
	valid := defaultConfig()

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing admin username", mutate: func(cfg *StructuredConfig) { cfg.App.AdminUsername = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing admin password", mutate: func(cfg *StructuredConfig) { cfg.App.AdminPassword = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing http address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ── NetAddress flag value ─────────────────────────────────────────────────────

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip address", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", want: NetAddress{Host: "", Port: 8080}},
		{name: "no colon", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}
