package refresh

import (
	"context"

	"github.com/BerryBytes/awsprofiler/internal/backup"
	"github.com/BerryBytes/awsprofiler/internal/profile"
	"github.com/BerryBytes/awsprofiler/models"
	"github.com/BerryBytes/awsprofiler/utils/common"
	"github.com/spf13/afero"
)

// Dispatcher routes a refresh request to the SSO login flow or the IAM
// key rotation engine based on how the profile is configured. The
// delete flag is meaningless for SSO and is not forwarded there.
type Dispatcher struct {
	Store   ProfileStore
	SSO     SSORefresherInterface
	Rotator RotatorInterface
}

func NewDispatcher(fs afero.Fs, store *profile.Store) *Dispatcher {
	credentialsPath := store.CredentialsPath()
	writer := backup.NewWriter(fs, credentialsPath)
	return &Dispatcher{
		Store:   store,
		SSO:     NewSSORefresher(&common.RealCommandExecutor{}),
		Rotator: NewRotator(fs, credentialsPath, store, writer),
	}
}

func (d *Dispatcher) Refresh(ctx context.Context, profileName string, deleteOld bool) models.RefreshResult {
	if d.Store.IsSSOProfile(profileName) {
		return d.SSO.RefreshSSO(ctx, profileName)
	}
	return d.Rotator.RotateIAMUser(ctx, profileName, deleteOld)
}

func (d *Dispatcher) ListProfiles() []string {
	return d.Store.ListProfiles()
}
