package root

import (
	"fmt"

	cmdRefresh "github.com/BerryBytes/awsprofiler/cmd/refresh"
	cmdStatus "github.com/BerryBytes/awsprofiler/cmd/status"
	"github.com/BerryBytes/awsprofiler/internal/accountinfo"
	"github.com/BerryBytes/awsprofiler/internal/credentials"
	"github.com/BerryBytes/awsprofiler/internal/profile"
	"github.com/BerryBytes/awsprofiler/internal/refresh"
	generalutils "github.com/BerryBytes/awsprofiler/utils/general"
	promptutils "github.com/BerryBytes/awsprofiler/utils/prompt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "awsprofiler",
	Short: "AWS profile status and credential refresh tool",
	Long:  `A CLI tool that checks the live status of local AWS profiles and refreshes their credentials via IAM key rotation or SSO re-login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("No subcommand provided. Showing help...")
		return cmd.Help()
	},
}

func init() {
	store, err := profile.DefaultStore()
	if err != nil {
		fmt.Printf("Error locating AWS config files: %v\n", err)
		return
	}

	fs := afero.NewOsFs()
	estimator := credentials.NewEstimator(fs, store.CredentialsPath())
	checker := accountinfo.NewChecker(estimator)
	dispatcher := refresh.NewDispatcher(fs, store)

	RootCmd.AddCommand(cmdStatus.NewStatusCmd(cmdStatus.Dependencies{
		Store:   store,
		Checker: checker,
	}))
	RootCmd.AddCommand(cmdRefresh.NewRefreshCmd(cmdRefresh.Dependencies{
		Service:  dispatcher,
		Prompter: promptutils.NewPrompt(),
		General:  generalutils.NewGeneralUtilsManager(),
	}))
}
