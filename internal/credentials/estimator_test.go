package credentials_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/awsprofiler/internal/credentials"
	mock_credentials "github.com/BerryBytes/awsprofiler/tests/mock/credentials"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	ststypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsPath = "/home/test/.aws/credentials"

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newEstimator(t *testing.T, age time.Duration) *credentials.Estimator {
	t.Helper()
	fs := afero.NewMemMapFs()
	content := "[dev]\naws_access_key_id = AKIADEVEXAMPLE12\naws_secret_access_key = secret\n"
	require.NoError(t, afero.WriteFile(fs, credentialsPath, []byte(content), 0o600))
	require.NoError(t, fs.Chtimes(credentialsPath, testNow.Add(-age), testNow.Add(-age)))
	return credentials.NewEstimator(fs, credentialsPath).WithClock(func() time.Time { return testNow })
}

func TestCredentialAge(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"days and hours", 3*24*time.Hour + 5*time.Hour, "3d 5h"},
		{"hours only", 8 * time.Hour, "8h"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"under a minute", 30 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := newEstimator(t, tt.age)
			assert.Equal(t, tt.want, estimator.CredentialAge("dev"))
		})
	}
}

func TestCredentialAge_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	estimator := credentials.NewEstimator(fs, credentialsPath)
	assert.Equal(t, "N/A", estimator.CredentialAge("dev"))
}

func TestCredentialAge_MissingProfile(t *testing.T) {
	estimator := newEstimator(t, time.Hour)
	assert.Equal(t, "N/A", estimator.CredentialAge("missing"))
}

func TestCredentialAge_MalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, credentialsPath, []byte("not an ini file [[["), 0o600))
	estimator := credentials.NewEstimator(fs, credentialsPath)
	assert.Equal(t, "N/A", estimator.CredentialAge("dev"))
}

func configWithCredentials(keyID, secret, token string) aws.Config {
	return aws.Config{
		Credentials: awscreds.NewStaticCredentialsProvider(keyID, secret, token),
	}
}

func TestExpirationInfo_Permanent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimator := credentials.NewEstimator(afero.NewMemMapFs(), credentialsPath)
	api := mock_credentials.NewMockSessionTokenAPI(ctrl)

	info := estimator.ExpirationInfo(context.Background(), configWithCredentials("AKIA", "secret", ""), api)

	assert.Equal(t, "Permanent", info.ExpiresIn)
	assert.Equal(t, "Never", info.ExpirationDate)
}

func TestExpirationInfo_TemporaryFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimator := credentials.NewEstimator(afero.NewMemMapFs(), credentialsPath)
	api := mock_credentials.NewMockSessionTokenAPI(ctrl)
	api.EXPECT().
		GetSessionToken(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("cannot call GetSessionToken with session credentials"))

	info := estimator.ExpirationInfo(context.Background(), configWithCredentials("ASIA", "secret", "token"), api)

	assert.Equal(t, "Temporary", info.ExpiresIn)
	assert.Equal(t, "N/A", info.ExpirationDate)
}

func TestExpirationInfo_RemainingWindow(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{"hours and minutes", 11*time.Hour + 30*time.Minute, "11h 30m"},
		{"minutes only", 30 * time.Minute, "30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			expiration := testNow.Add(tt.remaining)
			api := mock_credentials.NewMockSessionTokenAPI(ctrl)
			api.EXPECT().
				GetSessionToken(gomock.Any(), gomock.Any()).
				Return(&sts.GetSessionTokenOutput{
					Credentials: &ststypes.Credentials{Expiration: &expiration},
				}, nil)

			estimator := credentials.NewEstimator(afero.NewMemMapFs(), credentialsPath).
				WithClock(func() time.Time { return testNow })

			info := estimator.ExpirationInfo(context.Background(), configWithCredentials("ASIA", "secret", "token"), api)

			assert.Equal(t, tt.want, info.ExpiresIn)
			assert.Equal(t, expiration.Format("2006-01-02 15:04:05 UTC"), info.ExpirationDate)
		})
	}
}

func TestExpirationInfo_NoCredentialMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimator := credentials.NewEstimator(afero.NewMemMapFs(), credentialsPath)
	api := mock_credentials.NewMockSessionTokenAPI(ctrl)

	info := estimator.ExpirationInfo(context.Background(), aws.Config{}, api)

	assert.Equal(t, "N/A", info.ExpiresIn)
	assert.Equal(t, "N/A", info.ExpirationDate)
}
