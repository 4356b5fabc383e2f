package refresh

import (
	"context"

	"github.com/BerryBytes/awsprofiler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type DispatcherInterface interface {
	Refresh(ctx context.Context, profileName string, deleteOld bool) models.RefreshResult
	ListProfiles() []string
}

type RotatorInterface interface {
	RotateIAMUser(ctx context.Context, profileName string, deleteOld bool) models.RefreshResult
}

type SSORefresherInterface interface {
	RefreshSSO(ctx context.Context, profileName string) models.RefreshResult
}

// ProfileStore is the read-only slice of the profile store the refresh
// workflow needs.
type ProfileStore interface {
	ListProfiles() []string
	IsSSOProfile(name string) bool
	CurrentAccessKeyID(name string) (string, bool)
}

// STSAPI is the identity-check slice of STS.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, input *sts.GetCallerIdentityInput, opts ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IAMAPI is the access-key lifecycle slice of IAM.
type IAMAPI interface {
	ListAccessKeys(ctx context.Context, input *iam.ListAccessKeysInput, opts ...func(*iam.Options)) (*iam.ListAccessKeysOutput, error)
	CreateAccessKey(ctx context.Context, input *iam.CreateAccessKeyInput, opts ...func(*iam.Options)) (*iam.CreateAccessKeyOutput, error)
	DeleteAccessKey(ctx context.Context, input *iam.DeleteAccessKeyInput, opts ...func(*iam.Options)) (*iam.DeleteAccessKeyOutput, error)
}

type ConfigLoader interface {
	LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error)
}

type STSClientFactory interface {
	NewSTSClient(cfg aws.Config) STSAPI
}

type IAMClientFactory interface {
	NewIAMClient(cfg aws.Config) IAMAPI
}
