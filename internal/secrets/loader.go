package secrets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cwi-systems/website/internal/config"
	"github.com/cwi-systems/website/internal/metrics"
	pkgsecrets "github.com/cwi-systems/website/pkg/secrets"
	"github.com/cwi-systems/website/pkg/utils"
)

// Loader merges cloud secrets into the application settings map once, at
// startup. It is best-effort: every failure is logged and reflected in the
// returned Result, but none propagates to the caller — the host always
// starts.
type Loader struct {
	logger    *zap.Logger
	providers map[Provider]pkgsecrets.Provider
}

// NewLoader constructs a Loader with the given provider fetchers.
func NewLoader(logger *zap.Logger, aws, azure pkgsecrets.Provider) *Loader {
	return &Loader{
		logger: logger,
		providers: map[Provider]pkgsecrets.Provider{
			ProviderAWS:   aws,
			ProviderAzure: azure,
		},
	}
}

// Result reports the outcome of one load invocation. A zero Result means
// loading was skipped because no secret container is configured.
type Result struct {
	Provider Provider
	Merged   int
	Err      error
}

// Load reads the secret container name from settings, resolves the provider
// (explicit override first, environment detection second), fetches all
// secrets from the container, and merges them into settings in place.
// Entries fetched before a mid-fetch fault are still merged.
func (l *Loader) Load(ctx context.Context, settings config.Settings) Result {
	container := settings.Get(config.KeySecretName)
	if container == "" {
		l.logger.Debug("secrets.load_skipped",
			zap.String("reason", "no secret container configured"))
		return Result{}
	}

	provider := Provider(settings.Get(config.KeySecretProvider))
	if provider == "" {
		detected, err := Detect()
		if err != nil {
			l.logger.Warn("secrets.provider_undetectable", zap.Error(err))
			metrics.IncSecretLoad("unknown", "undetectable")
			return Result{Err: err}
		}
		provider = detected
	}

	fetcher, ok := l.providers[provider]
	if !ok || fetcher == nil {
		err := fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
		l.logger.Warn("secrets.unsupported_provider",
			zap.String("provider", string(provider)))
		metrics.IncSecretLoad(string(provider), "unsupported")
		return Result{Provider: provider, Err: err}
	}

	start := time.Now()
	entries, err := fetcher.FetchAll(ctx, container)
	merged := settings.Merge(entries)
	metrics.ObserveSecretLoadDuration(string(provider), start)
	metrics.AddSecretKeysMerged(merged)

	if err != nil {
		metrics.IncSecretLoad(string(provider), "error")
		l.logger.Warn("secrets.fetch_failed",
			zap.String("provider", string(provider)),
			zap.String("container", container),
			zap.Int("merged", merged),
			zap.Error(err))
		return Result{Provider: provider, Merged: merged, Err: err}
	}

	for key, value := range entries {
		l.logger.Debug("secrets.merged",
			zap.String("key", key),
			zap.String("value", utils.Redact(value)))
	}

	metrics.IncSecretLoad(string(provider), "ok")
	l.logger.Info("secrets.loaded",
		zap.String("provider", string(provider)),
		zap.String("container", container),
		zap.Int("merged", merged))
	return Result{Provider: provider, Merged: merged}
}
