package refresh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerryBytes/awsprofiler/internal/backup"
	"github.com/BerryBytes/awsprofiler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// AWS imposes a two-key ceiling per IAM user; rotation refuses to
// create a third.
const maxAccessKeys = 2

type RealConfigLoader struct{}

func (r *RealConfigLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

type RealSTSClientFactory struct{}

func (r *RealSTSClientFactory) NewSTSClient(cfg aws.Config) STSAPI {
	return sts.NewFromConfig(cfg)
}

type RealIAMClientFactory struct{}

func (r *RealIAMClientFactory) NewIAMClient(cfg aws.Config) IAMAPI {
	return iam.NewFromConfig(cfg)
}

// Rotator replaces an IAM user's access key pair: probe identity, guard
// the key quota, back up, create the new key, rewrite the credentials
// file, and optionally retire the old key. Every step is a hard gate
// except the final delete, which degrades to a warning because the new
// key is already live.
type Rotator struct {
	FS              afero.Fs
	CredentialsPath string
	Store           ProfileStore
	Backup          backup.WriterInterface
	ConfigLoader    ConfigLoader
	STSFactory      STSClientFactory
	IAMFactory      IAMClientFactory
}

func NewRotator(fs afero.Fs, credentialsPath string, store ProfileStore, writer backup.WriterInterface) *Rotator {
	return &Rotator{
		FS:              fs,
		CredentialsPath: credentialsPath,
		Store:           store,
		Backup:          writer,
		ConfigLoader:    &RealConfigLoader{},
		STSFactory:      &RealSTSClientFactory{},
		IAMFactory:      &RealIAMClientFactory{},
	}
}

func (r *Rotator) RotateIAMUser(ctx context.Context, profileName string, deleteOld bool) models.RefreshResult {
	if _, err := r.FS.Stat(r.CredentialsPath); err != nil {
		return models.RefreshResult{Success: false, Message: "Credentials file not found"}
	}

	cfg, err := r.ConfigLoader.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profileName))
	if err != nil {
		return resultFromError(err)
	}

	stsClient := r.STSFactory.NewSTSClient(cfg)
	identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return resultFromError(err)
	}

	userArn := aws.ToString(identity.Arn)
	if strings.Contains(userArn, "assumed-role") || !strings.Contains(userArn, ":user/") {
		return models.RefreshResult{
			Success: false,
			Message: fmt.Sprintf("Profile %q is not an IAM user. Only IAM user credentials can be refreshed.", profileName),
		}
	}

	parts := strings.Split(userArn, "/")
	username := parts[len(parts)-1]

	oldAccessKeyID, ok := r.Store.CurrentAccessKeyID(profileName)
	if !ok {
		return models.RefreshResult{
			Success: false,
			Message: fmt.Sprintf("Could not find access key ID for profile %q", profileName),
		}
	}

	iamClient := r.IAMFactory.NewIAMClient(cfg)

	keys, err := iamClient.ListAccessKeys(ctx, &iam.ListAccessKeysInput{UserName: aws.String(username)})
	if err != nil {
		return resultFromError(err)
	}
	if len(keys.AccessKeyMetadata) >= maxAccessKeys {
		return models.RefreshResult{
			Success: false,
			Message: fmt.Sprintf("User %q already has 2 access keys. Please delete one before creating a new key.", username),
		}
	}

	backupResult := r.Backup.Backup(profileName, oldAccessKeyID)
	if !backupResult.Success {
		return models.RefreshResult{Success: false, Message: backupResult.Message}
	}

	created, err := iamClient.CreateAccessKey(ctx, &iam.CreateAccessKeyInput{UserName: aws.String(username)})
	if err != nil {
		return resultFromError(err)
	}
	newAccessKeyID := aws.ToString(created.AccessKey.AccessKeyId)
	newSecretAccessKey := aws.ToString(created.AccessKey.SecretAccessKey)

	if err := r.writeCredentials(profileName, newAccessKeyID, newSecretAccessKey); err != nil {
		if errors.Is(err, errProfileSectionGone) {
			return models.RefreshResult{
				Success: false,
				Message: fmt.Sprintf("Profile %q not found in credentials file", profileName),
			}
		}
		return models.RefreshResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}

	var deleteMessage string
	switch {
	case deleteOld:
		_, err := iamClient.DeleteAccessKey(ctx, &iam.DeleteAccessKeyInput{
			UserName:    aws.String(username),
			AccessKeyId: aws.String(oldAccessKeyID),
		})
		if err != nil {
			deleteMessage = fmt.Sprintf("Warning: Could not delete old key %s: %v", oldAccessKeyID, err)
		} else {
			deleteMessage = fmt.Sprintf("Old key %s deleted from AWS.", oldAccessKeyID)
		}
	default:
		deleteMessage = fmt.Sprintf("Old key %s is still active in AWS. Use --delete to remove it.", oldAccessKeyID)
	}

	return models.RefreshResult{
		Success: true,
		Message: fmt.Sprintf("Credentials refreshed successfully for profile %q\n  New Key: %s\n  Backup: %s\n  %s",
			profileName, newAccessKeyID, backupResult.BackupFile, deleteMessage),
	}
}

var errProfileSectionGone = errors.New("profile section missing")

// writeCredentials rewrites the two credential fields of an existing
// profile section in place. The section must still exist; its absence
// means an external edit raced this rotation and a created-but-unrecorded
// key must be surfaced to the operator, not papered over.
func (r *Rotator) writeCredentials(profileName, accessKeyID, secretAccessKey string) error {
	data, err := afero.ReadFile(r.FS, r.CredentialsPath)
	if err != nil {
		return err
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return err
	}

	section, err := cfg.GetSection(profileName)
	if err != nil {
		return errProfileSectionGone
	}

	section.Key("aws_access_key_id").SetValue(accessKeyID)
	section.Key("aws_secret_access_key").SetValue(secretAccessKey)

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return err
	}
	return afero.WriteFile(r.FS, r.CredentialsPath, buf.Bytes(), 0o600)
}

func resultFromError(err error) models.RefreshResult {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return models.RefreshResult{
			Success: false,
			Message: fmt.Sprintf("AWS Error (%s): %s", apiErr.ErrorCode(), apiErr.ErrorMessage()),
		}
	}
	return models.RefreshResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
}
