package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/BerryBytes/awsprofiler/internal/refresh"
	generalutils "github.com/BerryBytes/awsprofiler/utils/general"
	promptutils "github.com/BerryBytes/awsprofiler/utils/prompt"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Service  refresh.DispatcherInterface
	Prompter promptutils.Prompter
	General  generalutils.GeneralUtilsInterface
}

var (
	deleteOld  bool
	refreshAll bool
	assumeYes  bool
)

func NewRefreshCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "refresh [profile]",
		Short:        "Refresh credentials for an AWS profile",
		Long:         `Rotates the access key pair of an IAM-user profile (backing up the old credentials first) or triggers an SSO re-login for SSO-configured profiles.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.General.CheckAWSCLI(); err != nil {
				cmd.Println("Please install AWS CLI first: https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html")
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd, args, deps)
		},
	}

	cmd.Flags().BoolVarP(&deleteOld, "delete", "d", false, "Delete the old access key from AWS after rotation")
	cmd.Flags().BoolVar(&refreshAll, "all", false, "Refresh every profile, one at a time")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runRefresh(cmd *cobra.Command, args []string, deps Dependencies) error {
	ctx := deps.General.HandleSignals()

	if refreshAll {
		return refreshAllProfiles(ctx, cmd, deps)
	}

	profileName, err := resolveProfile(args, deps)
	if err != nil {
		if errors.Is(err, promptutils.ErrInterrupted) {
			return nil
		}
		return err
	}
	if profileName == "" {
		cmd.Println("No AWS profiles found in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	if deleteOld && !assumeYes {
		if !deps.Prompter.PromptForConfirmation(fmt.Sprintf("Delete the old access key for %q after rotation", profileName)) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	result := deps.Service.Refresh(ctx, profileName, deleteOld)
	if !result.Success {
		return errors.New(result.Message)
	}

	cmd.Println(result.Message)
	return nil
}

// refreshAllProfiles iterates sequentially: rotations mutate a single
// shared credentials file and the IAM key quota is per user, so there
// is nothing to gain from parallel dispatch.
func refreshAllProfiles(ctx context.Context, cmd *cobra.Command, deps Dependencies) error {
	profiles := deps.Service.ListProfiles()
	if len(profiles) == 0 {
		cmd.Println("No AWS profiles found in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	var failures int
	for _, name := range profiles {
		cmd.Printf("Refreshing %s...\n", name)
		result := deps.Service.Refresh(ctx, name, deleteOld)
		cmd.Println(result.Message)
		if !result.Success {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d profile(s) failed to refresh", failures, len(profiles))
	}
	return nil
}

func resolveProfile(args []string, deps Dependencies) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	profiles := deps.Service.ListProfiles()
	if len(profiles) == 0 {
		return "", nil
	}

	return deps.Prompter.PromptForSelection("Select a profile to refresh", profiles)
}
