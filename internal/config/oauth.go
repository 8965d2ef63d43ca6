package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// OAuthClient holds the credentials of the Google OAuth client used to publish rosters
type OAuthClient struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	AuthURI      string `json:"auth_uri" validate:"omitempty,url"`
	TokenURI     string `json:"token_uri" validate:"omitempty,url"`
}

// clientSecretFile is the JSON downloaded from the Google Cloud console.
// Desktop clients are stored under "installed", web clients under "web".
type clientSecretFile struct {
	Installed *OAuthClient `json:"installed"`
	Web       *OAuthClient `json:"web"`
}

// LoadOAuthClient loads the OAuth client for publishing.
// oauthClientPath from the config wins; otherwise oauthClient[.env].json is searched for
// the same way as the config file.
func LoadOAuthClient(cfg *Config, env string) (*OAuthClient, error) {
	path := cfg.OAuthClientPath
	if path == "" {
		found, err := findFile(envFileName("oauthClient", env, "json"))
		if err != nil {
			return nil, fmt.Errorf("failed to find oauth client file: %w", err)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth client file: %w", err)
	}

	return ParseOAuthClient(data)
}

// ParseOAuthClient decodes and validates a client secret file
func ParseOAuthClient(data []byte) (*OAuthClient, error) {
	var file clientSecretFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse oauth client file: %w", err)
	}

	client := file.Installed
	if client == nil {
		client = file.Web
	}
	if client == nil {
		return nil, fmt.Errorf("oauth client file has neither an installed nor a web client")
	}

	if err := validate.Struct(client); err != nil {
		return nil, fmt.Errorf("oauth client validation failed: %w", err)
	}

	return client, nil
}
