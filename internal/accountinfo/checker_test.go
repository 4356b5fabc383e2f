package accountinfo_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BerryBytes/awsprofiler/internal/accountinfo"
	"github.com/BerryBytes/awsprofiler/models"
	mock_accountinfo "github.com/BerryBytes/awsprofiler/tests/mock/accountinfo"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type checkerFixture struct {
	loader    *mock_accountinfo.MockConfigLoader
	factory   *mock_accountinfo.MockSTSClientFactory
	stsClient *mock_accountinfo.MockSTSAPI
	estimator *mock_accountinfo.MockExpirationEstimator
	checker   *accountinfo.Checker
}

func newCheckerFixture(ctrl *gomock.Controller) *checkerFixture {
	f := &checkerFixture{
		loader:    mock_accountinfo.NewMockConfigLoader(ctrl),
		factory:   mock_accountinfo.NewMockSTSClientFactory(ctrl),
		stsClient: mock_accountinfo.NewMockSTSAPI(ctrl),
		estimator: mock_accountinfo.NewMockExpirationEstimator(ctrl),
	}
	f.checker = &accountinfo.Checker{
		ConfigLoader: f.loader,
		STSFactory:   f.factory,
		Estimator:    f.estimator,
	}
	return f
}

func (f *checkerFixture) expectProbe(identity *sts.GetCallerIdentityOutput, err error) {
	f.loader.EXPECT().LoadDefaultConfig(gomock.Any(), gomock.Any()).Return(aws.Config{}, nil)
	f.factory.EXPECT().NewSTSClient(gomock.Any()).Return(f.stsClient)
	f.stsClient.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Return(identity, err)
}

func TestGetAccountInfo_ActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.expectProbe(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/alice"),
	}, nil)
	f.estimator.EXPECT().CredentialAge("dev").Return("2d 1h")
	f.estimator.EXPECT().ExpirationInfo(gomock.Any(), gomock.Any(), f.stsClient).
		Return(models.ExpirationInfo{ExpiresIn: "Permanent", ExpirationDate: "Never"})

	info := f.checker.GetAccountInfo(context.Background(), "dev")

	assert.Equal(t, models.StatusActive, info.Status.Kind)
	assert.Equal(t, "123456789012", info.AccountID)
	assert.Equal(t, "User", info.CredentialType)
	assert.Equal(t, "alice", info.UserName)
	assert.Equal(t, "2d 1h", info.CredentialAge)
	assert.Equal(t, "Permanent", info.ExpiresIn)
	assert.Equal(t, "Never", info.ExpirationDate)
}

func TestGetAccountInfo_ActiveAssumedRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.expectProbe(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/admin/session-name"),
	}, nil)
	f.estimator.EXPECT().CredentialAge("role-profile").Return("N/A")
	f.estimator.EXPECT().ExpirationInfo(gomock.Any(), gomock.Any(), f.stsClient).
		Return(models.ExpirationInfo{ExpiresIn: "2h 15m", ExpirationDate: "2024-06-15 14:15:00 UTC"})

	info := f.checker.GetAccountInfo(context.Background(), "role-profile")

	assert.Equal(t, models.StatusActive, info.Status.Kind)
	assert.Equal(t, "Role", info.CredentialType)
	assert.Equal(t, "session-name", info.UserName)
	assert.Equal(t, "2h 15m", info.ExpiresIn)
}

func TestGetAccountInfo_UnknownPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.expectProbe(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:root"),
	}, nil)
	f.estimator.EXPECT().CredentialAge("root-profile").Return("N/A")
	f.estimator.EXPECT().ExpirationInfo(gomock.Any(), gomock.Any(), f.stsClient).
		Return(models.ExpirationInfo{ExpiresIn: "N/A", ExpirationDate: "N/A"})

	info := f.checker.GetAccountInfo(context.Background(), "root-profile")

	assert.Equal(t, "Unknown", info.CredentialType)
	assert.Equal(t, "N/A", info.UserName)
}

func TestGetAccountInfo_ExpiredToken(t *testing.T) {
	for _, code := range []string{"ExpiredToken", "InvalidClientTokenId"} {
		t.Run(code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCheckerFixture(ctrl)
			f.expectProbe(nil, &smithy.GenericAPIError{Code: code, Message: "token is no good"})

			info := f.checker.GetAccountInfo(context.Background(), "stale")

			assert.Equal(t, models.StatusExpired, info.Status.Kind)
			assert.Equal(t, "Expired", info.ExpiresIn)
			assert.Equal(t, "N/A", info.AccountID)
			assert.Equal(t, "N/A", info.Arn)
		})
	}
}

func TestGetAccountInfo_OtherAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.expectProbe(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "not allowed"})

	info := f.checker.GetAccountInfo(context.Background(), "denied")

	assert.Equal(t, models.StatusError, info.Status.Kind)
	assert.Equal(t, "AccessDenied", info.Status.Detail)
	assert.Equal(t, "Error: AccessDenied", info.Status.String())
	assert.Equal(t, "N/A", info.ExpiresIn)
}

func TestGetAccountInfo_UnknownProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.loader.EXPECT().LoadDefaultConfig(gomock.Any(), gomock.Any()).
		Return(aws.Config{}, config.SharedConfigProfileNotExistError{Profile: "ghost"})

	info := f.checker.GetAccountInfo(context.Background(), "ghost")

	assert.Equal(t, models.StatusNoCredentials, info.Status.Kind)
	assert.Equal(t, "No Credentials", info.Status.String())
}

func TestGetAccountInfo_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	f.expectProbe(nil, errors.New("operation error STS: GetCallerIdentity, failed to retrieve credentials"))

	info := f.checker.GetAccountInfo(context.Background(), "empty")

	assert.Equal(t, models.StatusNoCredentials, info.Status.Kind)
}

func TestGetAccountInfo_UnexpectedErrorTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckerFixture(ctrl)
	long := strings.Repeat("x", 80)
	f.expectProbe(nil, errors.New(long))

	info := f.checker.GetAccountInfo(context.Background(), "weird")

	assert.Equal(t, models.StatusError, info.Status.Kind)
	assert.Len(t, info.Status.Detail, 30)
	assert.Equal(t, strings.Repeat("x", 30), info.Status.Detail)
}

func TestPrincipalFromArn(t *testing.T) {
	tests := []struct {
		arn      string
		wantType string
		wantName string
	}{
		{"arn:aws:iam::123456789012:user/path/bob", "User", "bob"},
		{"arn:aws:sts::123456789012:assumed-role/deploy/ci-run", "Role", "ci-run"},
		{"arn:aws:iam::123456789012:root", "Unknown", "N/A"},
	}

	for _, tt := range tests {
		credType, name := accountinfo.PrincipalFromArn(tt.arn)
		assert.Equal(t, tt.wantType, credType, tt.arn)
		assert.Equal(t, tt.wantName, name, tt.arn)
	}
}
