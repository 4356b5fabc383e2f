package status

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/BerryBytes/awsprofiler/internal/accountinfo"
	"github.com/BerryBytes/awsprofiler/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ProfileLister interface {
	ListProfiles() []string
}

type Dependencies struct {
	Store   ProfileLister
	Checker accountinfo.CheckerInterface
}

var outputFormat string

func NewStatusCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "status",
		Short:        "Show the credential status of every AWS profile",
		Long:         `Probes each profile found in ~/.aws/credentials and ~/.aws/config against AWS STS and reports account, principal, credential age, and expiration.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), cmd, deps)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, or yaml")

	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, deps Dependencies) error {
	if ctx == nil {
		ctx = context.Background()
	}

	profiles := deps.Store.ListProfiles()
	if len(profiles) == 0 {
		cmd.Println("No AWS profiles found in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	progress := outputFormat == "table"
	if progress {
		cmd.Printf("Found %d profile(s)\n\n", len(profiles))
	}

	results := make([]models.AccountInfo, 0, len(profiles))
	for _, name := range profiles {
		if progress {
			cmd.Printf("Checking %s... ", name)
		}
		info := deps.Checker.GetAccountInfo(ctx, name)
		results = append(results, info)
		if progress {
			cmd.Printf("[%s]\n", statusSymbol(info.Status))
		}
	}
	if progress {
		cmd.Println()
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
		cmd.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to render YAML: %w", err)
		}
		cmd.Print(string(data))
	default:
		renderTable(cmd, results)
		printSummary(cmd, results)
	}

	return nil
}

func renderTable(cmd *cobra.Command, results []models.AccountInfo) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tACCOUNT ID\tUSER/ROLE\tTYPE\tSTATUS\tAGE\tEXPIRES IN")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Profile, r.AccountID, r.UserName, r.CredentialType, r.Status, r.CredentialAge, r.ExpiresIn)
	}
	w.Flush()
}

func printSummary(cmd *cobra.Command, results []models.AccountInfo) {
	var active, expired int
	for _, r := range results {
		switch r.Status.Kind {
		case models.StatusActive:
			active++
		case models.StatusExpired:
			expired++
		}
	}
	other := len(results) - active - expired

	cmd.Printf("\nSummary: %s  |  %s  |  %s\n",
		color.GreenString("%d active", active),
		color.RedString("%d expired", expired),
		color.YellowString("%d error/no credentials", other))
}

func statusSymbol(status models.CredentialStatus) string {
	switch status.Kind {
	case models.StatusActive:
		return color.GreenString("Active")
	case models.StatusExpired:
		return color.RedString("Expired")
	case models.StatusNoCredentials:
		return color.YellowString("No Creds")
	default:
		return color.RedString("Invalid")
	}
}
