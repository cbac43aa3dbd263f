package secrets

import (
	"errors"
	"os"
)

// Provider identifies the cloud secret-storage backend in use.
type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderAzure Provider = "azure"
)

// Marker variables whose mere presence identifies the hosting execution
// context. Values are irrelevant.
const (
	awsMarkerEnv   = "LAMBDA_TASK_ROOT"    // set by the Lambda runtime
	azureMarkerEnv = "WEBSITE_INSTANCE_ID" // set on App Service instances
)

var (
	// ErrUndetectable means no provider marker was found and none was
	// explicitly configured.
	ErrUndetectable = errors.New("unable to identify the cloud provider to fetch the credentials")

	// ErrUnsupportedProvider means the configured provider value is not one
	// of the known backends.
	ErrUnsupportedProvider = errors.New("unsupported secret provider")
)

// Detect infers the cloud provider from the process environment. AWS is
// checked first, so it wins if both markers are somehow present.
func Detect() (Provider, error) {
	if _, ok := os.LookupEnv(awsMarkerEnv); ok {
		return ProviderAWS, nil
	}
	if _, ok := os.LookupEnv(azureMarkerEnv); ok {
		return ProviderAzure, nil
	}
	return "", ErrUndetectable
}
