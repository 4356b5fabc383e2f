package accountinfo

import (
	"context"

	"github.com/BerryBytes/awsprofiler/internal/credentials"
	"github.com/BerryBytes/awsprofiler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type CheckerInterface interface {
	GetAccountInfo(ctx context.Context, profileName string) models.AccountInfo
}

// STSAPI is the identity-check slice of STS, plus the session-token
// slice the expiration estimator needs.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, input *sts.GetCallerIdentityInput, opts ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	credentials.SessionTokenAPI
}

type ConfigLoader interface {
	LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error)
}

type STSClientFactory interface {
	NewSTSClient(cfg aws.Config) STSAPI
}

// ExpirationEstimator provides local age and remote expiration lookups.
type ExpirationEstimator interface {
	CredentialAge(profileName string) string
	ExpirationInfo(ctx context.Context, cfg aws.Config, api credentials.SessionTokenAPI) models.ExpirationInfo
}
