package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandProvider_GetToken_Success(t *testing.T) {
	provider := &CommandProvider{Command: "echo '  tok_from_command  '"}
	token, err := provider.GetToken()

	require.NoError(t, err)
	assert.Equal(t, "tok_from_command", token)
}

func TestCommandProvider_GetToken_Empty(t *testing.T) {
	provider := &CommandProvider{Command: "printf ''"}
	token, err := provider.GetToken()

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "empty token")
}

func TestCommandProvider_GetToken_Fails(t *testing.T) {
	provider := &CommandProvider{Command: "exit 3"}
	_, err := provider.GetToken()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token_command failed")
}

func TestCommandProvider_GetToken_NotConfigured(t *testing.T) {
	provider := &CommandProvider{}
	_, err := provider.GetToken()

	assert.Error(t, err)
}

func TestEnvProvider_GetToken_Success(t *testing.T) {
	t.Setenv(EnvToken, "env_token_123")

	provider := &EnvProvider{}
	token, err := provider.GetToken()

	require.NoError(t, err)
	assert.Equal(t, "env_token_123", token)
}

func TestEnvProvider_GetToken_Missing(t *testing.T) {
	t.Setenv(EnvToken, "")

	provider := &EnvProvider{}
	token, err := provider.GetToken()

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), EnvToken)
}

func TestGetToken_CommandPreferred(t *testing.T) {
	t.Setenv(EnvToken, "env_token")

	token, err := GetToken("echo cmd_token")
	require.NoError(t, err)
	assert.Equal(t, "cmd_token", token)
}

func TestGetToken_FallbackToEnv(t *testing.T) {
	t.Setenv(EnvToken, "env_token")

	token, err := GetToken("exit 1")
	require.NoError(t, err)
	assert.Equal(t, "env_token", token)
}

func TestGetToken_BothFail(t *testing.T) {
	t.Setenv(EnvToken, "")

	token, err := GetToken("exit 1")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "token_command failed")
	assert.Contains(t, err.Error(), EnvToken)
}

func TestTokenProvider_Interface(t *testing.T) {
	var _ TokenProvider = &CommandProvider{}
	var _ TokenProvider = &EnvProvider{}
}
