package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/awsprofiler/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// Estimator derives credential age from the credentials file and
// remaining validity from STS.
type Estimator struct {
	fs              afero.Fs
	credentialsPath string
	now             func() time.Time
}

func NewEstimator(fs afero.Fs, credentialsPath string) *Estimator {
	return &Estimator{
		fs:              fs,
		credentialsPath: credentialsPath,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (e *Estimator) WithClock(now func() time.Time) *Estimator {
	e.now = now
	return e
}

// CredentialAge reports how long ago the credentials file was last
// written. The file is shared by every profile, so the age is a per-file
// approximation, not a per-key one; the credentials format carries no
// per-profile timestamp to do better with.
func (e *Estimator) CredentialAge(profileName string) string {
	data, err := afero.ReadFile(e.fs, e.credentialsPath)
	if err != nil {
		return models.NotAvailable
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return models.NotAvailable
	}
	if _, err := cfg.GetSection(profileName); err != nil {
		return models.NotAvailable
	}

	info, err := e.fs.Stat(e.credentialsPath)
	if err != nil {
		return models.NotAvailable
	}

	age := e.now().UTC().Sub(info.ModTime().UTC())
	if age < 0 {
		age = 0
	}

	days := int(age.Hours()) / 24
	hours := int(age.Hours()) % 24
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	}
}

// ExpirationInfo reports the remaining validity window for the config's
// credentials. Permanent IAM keys carry no session token and never
// expire. For temporary credentials the exact expiration comes from a
// best-effort GetSessionToken call; when STS refuses (it does for role
// sessions) the window is reported as simply "Temporary".
func (e *Estimator) ExpirationInfo(ctx context.Context, cfg aws.Config, api SessionTokenAPI) models.ExpirationInfo {
	if cfg.Credentials == nil {
		return models.ExpirationInfo{ExpiresIn: models.NotAvailable, ExpirationDate: models.NotAvailable}
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return models.ExpirationInfo{ExpiresIn: models.NotAvailable, ExpirationDate: models.NotAvailable}
	}

	if creds.SessionToken == "" {
		return models.ExpirationInfo{ExpiresIn: "Permanent", ExpirationDate: "Never"}
	}

	out, err := api.GetSessionToken(ctx, &sts.GetSessionTokenInput{})
	if err != nil || out.Credentials == nil || out.Credentials.Expiration == nil {
		return models.ExpirationInfo{ExpiresIn: "Temporary", ExpirationDate: models.NotAvailable}
	}

	expiration := out.Credentials.Expiration.UTC()
	left := expiration.Sub(e.now().UTC())

	hours := int(left.Hours())
	minutes := int(left.Minutes()) % 60

	expiresIn := fmt.Sprintf("%dm", minutes)
	if hours > 0 {
		expiresIn = fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return models.ExpirationInfo{
		ExpiresIn:      expiresIn,
		ExpirationDate: expiration.Format("2006-01-02 15:04:05 UTC"),
	}
}
