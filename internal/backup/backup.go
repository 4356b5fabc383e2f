package backup

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BerryBytes/awsprofiler/models"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	backupDirName  = "backups"
	backupFileMode = 0o600
)

type WriterInterface interface {
	Backup(profileName, accessKeyID string) models.BackupResult
}

// Writer snapshots a single profile's credentials section to a
// timestamped file before any rotation touches it. Backup files are
// never mutated or cleaned up afterwards.
type Writer struct {
	fs              afero.Fs
	credentialsPath string
	now             func() time.Time
}

func NewWriter(fs afero.Fs, credentialsPath string) *Writer {
	return &Writer{
		fs:              fs,
		credentialsPath: credentialsPath,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Backup writes a one-section copy of the live credentials file under
// backups/, restricted to owner read/write. A second backup of the same
// profile and key within one wall-clock second reuses the filename; each
// write completes fully, so the later one simply wins.
func (w *Writer) Backup(profileName, accessKeyID string) models.BackupResult {
	backupDir := filepath.Join(filepath.Dir(w.credentialsPath), backupDirName)
	if err := w.fs.MkdirAll(backupDir, 0o700); err != nil {
		return failure(err)
	}

	data, err := afero.ReadFile(w.fs, w.credentialsPath)
	if err != nil {
		return failure(err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return failure(err)
	}

	section, err := cfg.GetSection(profileName)
	if err != nil {
		return models.BackupResult{
			Success: false,
			Message: fmt.Sprintf("Profile %q not found in credentials file", profileName),
		}
	}

	timestamp := w.now().Format("20060102_150405")
	filename := fmt.Sprintf("credentials_backup_%s_%s_%s", profileName, keySuffix(accessKeyID), timestamp)
	backupPath := filepath.Join(backupDir, filename)

	snapshot := ini.Empty()
	target, err := snapshot.NewSection(profileName)
	if err != nil {
		return failure(err)
	}
	for _, key := range section.Keys() {
		if _, err := target.NewKey(key.Name(), key.Value()); err != nil {
			return failure(err)
		}
	}

	var buf bytes.Buffer
	if _, err := snapshot.WriteTo(&buf); err != nil {
		return failure(err)
	}

	if err := afero.WriteFile(w.fs, backupPath, buf.Bytes(), backupFileMode); err != nil {
		return failure(err)
	}
	if err := w.fs.Chmod(backupPath, backupFileMode); err != nil {
		return failure(err)
	}

	return models.BackupResult{Success: true, BackupFile: backupPath}
}

func keySuffix(accessKeyID string) string {
	if len(accessKeyID) <= 8 {
		return accessKeyID
	}
	return accessKeyID[len(accessKeyID)-8:]
}

func failure(err error) models.BackupResult {
	return models.BackupResult{
		Success: false,
		Message: fmt.Sprintf("Failed to create backup: %v", err),
	}
}
