package refresh

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/BerryBytes/awsprofiler/models"
	"github.com/BerryBytes/awsprofiler/utils/common"
)

// SSORefresher re-authenticates an SSO profile by handing the terminal
// to `aws sso login`. The call blocks until the browser flow finishes or
// the user aborts; no timeout is imposed.
type SSORefresher struct {
	Executor common.CommandExecutor
}

func NewSSORefresher(executor common.CommandExecutor) *SSORefresher {
	return &SSORefresher{Executor: executor}
}

func (s *SSORefresher) RefreshSSO(ctx context.Context, profileName string) models.RefreshResult {
	if _, err := s.Executor.LookPath("aws"); err != nil {
		return models.RefreshResult{
			Success: false,
			Message: "AWS CLI not found. Please install the AWS CLI to use SSO login.",
		}
	}

	fmt.Printf("Initiating SSO login for profile: %s\n", profileName)
	fmt.Println("Please follow the instructions in your browser...")

	err := s.Executor.RunInteractiveCommand(ctx, "aws", "sso", "login", "--profile", profileName)
	if err == nil {
		return models.RefreshResult{
			Success: true,
			Message: fmt.Sprintf("SSO login successful for profile %q", profileName),
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return models.RefreshResult{
			Success: false,
			Message: fmt.Sprintf("SSO login failed with exit code %d", exitErr.ExitCode()),
		}
	}

	return models.RefreshResult{
		Success: false,
		Message: fmt.Sprintf("Error during SSO login: %v", err),
	}
}
