package secrets

import (
	"context"
	"fmt"
)

// AzureKeyVaultProvider implements Provider using Azure Key Vault. The
// container identifier is the vault name; each secret in the vault becomes
// one entry, fetched individually after a listing call (N+1 round trips for
// N secrets, sequential).
type AzureKeyVaultProvider struct {
	factory ClientFactory
}

// NewAzureProvider creates a Key Vault provider backed by the given client
// factory.
func NewAzureProvider(factory ClientFactory) *AzureKeyVaultProvider {
	return &AzureKeyVaultProvider{factory: factory}
}

// VaultURL builds the public endpoint for a vault name.
func VaultURL(vaultName string) string {
	return fmt.Sprintf("https://%s.vault.azure.net", vaultName)
}

// FetchAll enumerates the vault and fetches each secret's current value.
// Entries with an empty name or no value are skipped. A fault mid-loop
// returns the entries fetched so far together with the error.
func (p *AzureKeyVaultProvider) FetchAll(ctx context.Context, container string) (map[string]string, error) {
	client, err := p.factory.KeyVault(ctx, VaultURL(container))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientUnavailable, err)
	}

	names, err := client.ListSecretNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list vault [%s]: %v", ErrFetchFailed, container, err)
	}

	entries := make(map[string]string, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		value, err := client.GetSecret(ctx, name)
		if err != nil {
			return entries, fmt.Errorf("%w: vault [%s] secret [%s]: %v", ErrFetchFailed, container, name, err)
		}
		if value == nil {
			continue
		}
		entries[name] = *value
	}
	return entries, nil
}
