package refresh

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/BerryBytes/awsprofiler/models"
	mock_awsprofiler "github.com/BerryBytes/awsprofiler/tests/mock"
	mock_refresh "github.com/BerryBytes/awsprofiler/tests/mock/refresh"
	promptutils "github.com/BerryBytes/awsprofiler/utils/prompt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshFixture struct {
	service  *mock_refresh.MockDispatcherInterface
	prompter *mock_awsprofiler.MockPrompter
	general  *mock_awsprofiler.MockGeneralUtilsInterface
	deps     Dependencies
}

func newRefreshFixture(ctrl *gomock.Controller) *refreshFixture {
	f := &refreshFixture{
		service:  mock_refresh.NewMockDispatcherInterface(ctrl),
		prompter: mock_awsprofiler.NewMockPrompter(ctrl),
		general:  mock_awsprofiler.NewMockGeneralUtilsInterface(ctrl),
	}
	f.deps = Dependencies{
		Service:  f.service,
		Prompter: f.prompter,
		General:  f.general,
	}
	return f
}

func (f *refreshFixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	deleteOld = false
	refreshAll = false
	assumeYes = false

	cmd := NewRefreshCmd(f.deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (f *refreshFixture) expectReady() {
	f.general.EXPECT().CheckAWSCLI().Return(nil)
	f.general.EXPECT().HandleSignals().Return(context.Background())
}

func TestRefreshCmd_CLIMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.general.EXPECT().CheckAWSCLI().Return(errors.New("AWS CLI is not installed"))

	out, err := f.run(t, "dev")
	require.Error(t, err)
	assert.Contains(t, out, "Please install AWS CLI first")
}

func TestRefreshCmd_ExplicitProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().Refresh(gomock.Any(), "dev", false).
		Return(models.RefreshResult{Success: true, Message: `Credentials refreshed successfully for profile "dev"`})

	out, err := f.run(t, "dev")
	require.NoError(t, err)
	assert.Contains(t, out, "Credentials refreshed successfully")
}

func TestRefreshCmd_PromptsWhenNoArg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().ListProfiles().Return([]string{"dev", "prod"})
	f.prompter.EXPECT().PromptForSelection("Select a profile to refresh", []string{"dev", "prod"}).
		Return("prod", nil)
	f.service.EXPECT().Refresh(gomock.Any(), "prod", false).
		Return(models.RefreshResult{Success: true, Message: "done"})

	out, err := f.run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "done")
}

func TestRefreshCmd_PromptInterrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().ListProfiles().Return([]string{"dev"})
	f.prompter.EXPECT().PromptForSelection(gomock.Any(), gomock.Any()).
		Return("", promptutils.ErrInterrupted)

	_, err := f.run(t)
	assert.NoError(t, err)
}

func TestRefreshCmd_NoProfilesFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().ListProfiles().Return(nil)

	out, err := f.run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "No AWS profiles found in ~/.aws/credentials or ~/.aws/config")
}

func TestRefreshCmd_DeleteDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.prompter.EXPECT().PromptForConfirmation(gomock.Any()).Return(false)

	out, err := f.run(t, "dev", "--delete")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
}

func TestRefreshCmd_DeleteWithYesSkipsPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().Refresh(gomock.Any(), "dev", true).
		Return(models.RefreshResult{Success: true, Message: "rotated"})

	_, err := f.run(t, "dev", "-d", "-y")
	assert.NoError(t, err)
}

func TestRefreshCmd_FailureBecomesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().Refresh(gomock.Any(), "dev", false).
		Return(models.RefreshResult{Success: false, Message: "Credentials file not found"})

	_, err := f.run(t, "dev")
	require.Error(t, err)
	assert.Equal(t, "Credentials file not found", err.Error())
}

func TestRefreshCmd_AllReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRefreshFixture(ctrl)
	f.expectReady()
	f.service.EXPECT().ListProfiles().Return([]string{"dev", "prod"})
	f.service.EXPECT().Refresh(gomock.Any(), "dev", false).
		Return(models.RefreshResult{Success: true, Message: "ok"})
	f.service.EXPECT().Refresh(gomock.Any(), "prod", false).
		Return(models.RefreshResult{Success: false, Message: "AWS Error (AccessDenied): nope"})

	out, err := f.run(t, "--all")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 profile(s) failed to refresh", err.Error())
	assert.Contains(t, out, "Refreshing dev...")
	assert.Contains(t, out, "AWS Error (AccessDenied): nope")
}
