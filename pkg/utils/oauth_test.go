package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jakechorley/duty-roster/internal/config"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	store := NewTokenStoreAt(filepath.Join(t.TempDir(), "tokens"))
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", Expiry: expiry}
	require.NoError(t, store.Save("test", token))

	info, err := os.Stat(store.path("test"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFilePerms), info.Mode().Perm())

	loaded, err := store.Load("test")
	require.NoError(t, err)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.True(t, expiry.Equal(loaded.Expiry))

	require.NoError(t, store.Delete("test"))
	loaded, err = store.Load("test")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestTokenStore_MissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewTokenStoreAt(dir)

	token, err := store.Load("prod")
	assert.NoError(t, err)
	assert.Nil(t, token)
	assert.NoError(t, store.Delete("prod"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token-prod.json"), []byte("{"), 0600))
	token, err = store.Load("prod")
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "failed to parse token file")
}

func TestMissingScopes(t *testing.T) {
	assert.Empty(t, missingScopes("openid "+ScopeSheets))
	assert.Equal(t, []string{ScopeSheets}, missingScopes("openid email"))
	assert.Equal(t, []string{ScopeSheets}, missingScopes(""))
}

func TestGetOAuthConfig(t *testing.T) {
	cfg := GetOAuthConfig(&config.OAuthClient{
		ClientID:     "client-id",
		ClientSecret: "secret",
		TokenURI:     "https://example.test/token",
	})

	assert.Equal(t, "client-id", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, []string{ScopeSheets}, cfg.Scopes)
	assert.Equal(t, "http://localhost:3000/oauth/callback", cfg.RedirectURL)
	assert.Equal(t, google.Endpoint.AuthURL, cfg.Endpoint.AuthURL)
	assert.Equal(t, "https://example.test/token", cfg.Endpoint.TokenURL)
}
