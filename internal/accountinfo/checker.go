package accountinfo

import (
	"context"
	"errors"
	"strings"

	"github.com/BerryBytes/awsprofiler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

const errorDetailLimit = 30

// Checker probes a profile against STS and classifies the outcome. It
// never returns an error: every failure mode collapses into the Status
// field of the returned AccountInfo.
type Checker struct {
	ConfigLoader ConfigLoader
	STSFactory   STSClientFactory
	Estimator    ExpirationEstimator
}

type RealConfigLoader struct{}

func (r *RealConfigLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

type RealSTSClientFactory struct{}

func (r *RealSTSClientFactory) NewSTSClient(cfg aws.Config) STSAPI {
	return sts.NewFromConfig(cfg)
}

func NewChecker(estimator ExpirationEstimator) *Checker {
	return &Checker{
		ConfigLoader: &RealConfigLoader{},
		STSFactory:   &RealSTSClientFactory{},
		Estimator:    estimator,
	}
}

func (c *Checker) GetAccountInfo(ctx context.Context, profileName string) models.AccountInfo {
	info := models.AccountInfo{
		Profile:        profileName,
		AccountID:      models.NotAvailable,
		UserName:       models.NotAvailable,
		CredentialType: models.NotAvailable,
		Arn:            models.NotAvailable,
		CredentialAge:  models.NotAvailable,
		ExpiresIn:      models.NotAvailable,
		ExpirationDate: models.NotAvailable,
	}

	cfg, err := c.ConfigLoader.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profileName))
	if err != nil {
		applyFailure(&info, err)
		return info
	}

	client := c.STSFactory.NewSTSClient(cfg)
	identity, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		applyFailure(&info, err)
		return info
	}

	info.Status = models.ActiveStatus()
	info.AccountID = stringOrNA(identity.Account)
	info.Arn = stringOrNA(identity.Arn)
	info.CredentialType, info.UserName = PrincipalFromArn(info.Arn)
	info.CredentialAge = c.Estimator.CredentialAge(profileName)

	expiration := c.Estimator.ExpirationInfo(ctx, cfg, client)
	info.ExpiresIn = expiration.ExpiresIn
	info.ExpirationDate = expiration.ExpirationDate

	return info
}

// PrincipalFromArn derives the principal type and display name from a
// caller-identity ARN. The final path component of an assumed-role ARN
// is the session name, not the role name.
func PrincipalFromArn(arn string) (credentialType, userName string) {
	switch {
	case strings.Contains(arn, ":assumed-role/"):
		return "Role", lastPathComponent(arn)
	case strings.Contains(arn, ":user/"):
		return "User", lastPathComponent(arn)
	default:
		return "Unknown", models.NotAvailable
	}
}

func lastPathComponent(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}

func applyFailure(info *models.AccountInfo, err error) {
	info.Status = Classify(err)
	if info.Status.Kind == models.StatusExpired {
		info.ExpiresIn = "Expired"
	}
}

// Classify maps a probe failure to a credential status. Unknown errors
// keep only the first 30 characters of the message so downstream
// rendering stays bounded.
func Classify(err error) models.CredentialStatus {
	var profileErr config.SharedConfigProfileNotExistError
	if errors.As(err, &profileErr) {
		return models.NoCredentialsStatus()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ExpiredToken", "InvalidClientTokenId":
			return models.ExpiredStatus()
		default:
			return models.ErrorStatus(apiErr.ErrorCode())
		}
	}

	if isMissingCredentials(err) {
		return models.NoCredentialsStatus()
	}

	return models.ErrorStatus(truncate(err.Error(), errorDetailLimit))
}

func isMissingCredentials(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "failed to retrieve credentials") ||
		strings.Contains(msg, "no EC2 IMDS role found") ||
		strings.Contains(msg, "static credentials are empty")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return models.NotAvailable
	}
	return *s
}
