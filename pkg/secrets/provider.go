package secrets

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Provider fetches every secret held in a named container and returns them
// as a flat key/value map. Concrete implementations (AWS Secrets Manager,
// Azure Key Vault) differ in container granularity: AWS stores one JSON
// bundle per container, Azure stores one value per named vault secret.
type Provider interface {
	// FetchAll retrieves all entries of the given container. On failure it
	// returns the entries fetched before the fault (possibly none) together
	// with the error, so callers can merge partial results.
	FetchAll(ctx context.Context, container string) (map[string]string, error)
}

// SecretsManagerAPI captures the subset of the AWS Secrets Manager client
// used by the AWS provider. *secretsmanager.Client satisfies this interface.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// KeyVaultAPI is the narrow vault surface used by the Azure provider.
// GetSecret returns nil when the secret exists but carries no value; such
// entries are skipped rather than merged.
type KeyVaultAPI interface {
	ListSecretNames(ctx context.Context) ([]string, error)
	GetSecret(ctx context.Context, name string) (*string, error)
}

// ClientFactory builds provider clients using ambient credential resolution
// (AWS default config chain, Azure default credential). Injecting it lets
// tests substitute fakes without network access.
type ClientFactory interface {
	SecretsManager(ctx context.Context) (SecretsManagerAPI, error)
	KeyVault(ctx context.Context, vaultURL string) (KeyVaultAPI, error)
}

var (
	// ErrClientUnavailable means the provider client could not be constructed.
	ErrClientUnavailable = errors.New("secrets client unavailable")

	// ErrFetchFailed means a network, permission, or service error occurred
	// during secret retrieval.
	ErrFetchFailed = errors.New("secret fetch failed")

	// ErrMalformedPayload means a secret payload could not be parsed as the
	// expected JSON object of string values.
	ErrMalformedPayload = errors.New("malformed secret payload")
)
