package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// AWSSecretsManagerProvider implements Provider using AWS Secrets Manager.
// The container identifier is a secret ID or ARN whose value is expected to
// be a JSON map (e.g. {"api_key": "abc", "base_url": "https://..."}).
type AWSSecretsManagerProvider struct {
	factory ClientFactory
}

// NewAWSProvider creates a Secrets Manager provider backed by the given
// client factory.
func NewAWSProvider(factory ClientFactory) *AWSSecretsManagerProvider {
	return &AWSSecretsManagerProvider{factory: factory}
}

// FetchAll fetches the named secret bundle and decodes it into key/value
// pairs. A secret without a string payload (binary-only) yields zero entries
// and no error.
func (p *AWSSecretsManagerProvider) FetchAll(ctx context.Context, container string) (map[string]string, error) {
	client, err := p.factory.SecretsManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientUnavailable, err)
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(container),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: secret [%s]: %v", ErrFetchFailed, container, err)
	}

	if out.SecretString == nil || *out.SecretString == "" {
		return map[string]string{}, nil
	}

	var entries map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &entries); err != nil {
		return nil, fmt.Errorf("%w: secret [%s]: %v", ErrMalformedPayload, container, err)
	}
	return entries, nil
}
