package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yukifiles/go/internal/types"
)

const (
	envAPIKey  = "YUKIFILES_API_KEY"
	envBaseURL = "YUKIFILES_BASE_URL"
)

// errMissingAPIKey is shown to the user when no key was configured
var errMissingAPIKey = fmt.Errorf("no API key: set the %s environment variable or pass --api-key", envAPIKey)

// options holds the values of the persistent flags
type options struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	verbose bool
	json    bool
}

// resolveConfig builds the client configuration from flags, falling back
// to the environment.
func resolveConfig(opts *options, version string) (types.Config, error) {
	apiKey := strings.TrimSpace(opts.apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(envAPIKey))
	}
	if apiKey == "" {
		return types.Config{}, errMissingAPIKey
	}

	baseURL := strings.TrimSpace(opts.baseURL)
	if baseURL == "" {
		baseURL = strings.TrimSpace(os.Getenv(envBaseURL))
	}
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}

	if opts.timeout < 0 {
		return types.Config{}, fmt.Errorf("invalid timeout: %s", opts.timeout)
	}

	return types.Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Timeout:   opts.timeout,
		UserAgent: "yukifiles-cli/" + version,
	}, nil
}
