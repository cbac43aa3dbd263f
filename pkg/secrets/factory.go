package secrets

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// DefaultFactory builds real provider clients using ambient credential
// resolution: the AWS default config chain and the Azure default credential.
// No explicit credential material is accepted here.
type DefaultFactory struct {
	// Region applies to the AWS client only. Empty means the SDK default.
	Region string
}

// SecretsManager builds an AWS Secrets Manager client for the configured region.
func (f *DefaultFactory) SecretsManager(ctx context.Context) (SecretsManagerAPI, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if f.Region != "" {
		opts = append(opts, awsconfig.WithRegion(f.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// KeyVault builds an Azure Key Vault secrets client for the given vault URL.
func (f *DefaultFactory) KeyVault(_ context.Context, vaultURL string) (KeyVaultAPI, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Azure credential: %w", err)
	}
	client, err := azsecrets.NewClient(vaultURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Key Vault client for [%s]: %w", vaultURL, err)
	}
	return &keyVault{client: client}, nil
}

// keyVault adapts *azsecrets.Client to the KeyVaultAPI surface.
type keyVault struct {
	client *azsecrets.Client
}

// ListSecretNames pages through the vault's secret properties and returns
// every secret name.
func (v *keyVault) ListSecretNames(ctx context.Context) ([]string, error) {
	var names []string
	pager := v.client.NewListSecretPropertiesPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return names, err
		}
		for _, item := range page.Value {
			if item.ID != nil {
				names = append(names, item.ID.Name())
			}
		}
	}
	return names, nil
}

// GetSecret fetches the current version of a secret. A secret without a
// value yields nil.
func (v *keyVault) GetSecret(ctx context.Context, name string) (*string, error) {
	resp, err := v.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}
