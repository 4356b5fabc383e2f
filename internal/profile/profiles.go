package profile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const profileSectionPrefix = "profile "

// Store reads profile names and credential fields from the two AWS
// dotfiles. It never mutates either file; the rotation engine is the
// sole writer of the credentials file.
type Store struct {
	fs              afero.Fs
	credentialsPath string
	configPath      string
}

func NewStore(fs afero.Fs, credentialsPath, configPath string) *Store {
	return &Store{
		fs:              fs,
		credentialsPath: credentialsPath,
		configPath:      configPath,
	}
}

// DefaultStore reads ~/.aws/credentials and ~/.aws/config on the host
// filesystem.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	awsDir := filepath.Join(home, ".aws")
	return NewStore(afero.NewOsFs(), filepath.Join(awsDir, "credentials"), filepath.Join(awsDir, "config")), nil
}

func (s *Store) CredentialsPath() string { return s.credentialsPath }

func (s *Store) loadFile(path string) (*ini.File, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	return ini.Load(data)
}

// ListProfiles returns the union of profile names across both files,
// sorted and deduplicated. Config sections named "profile <name>" are
// folded to "<name>". Files that are missing or unparseable contribute
// no names; a read problem is indistinguishable from an empty file here.
func (s *Store) ListProfiles() []string {
	names := make(map[string]struct{})

	if cfg, err := s.loadFile(s.credentialsPath); err == nil {
		for _, section := range cfg.Sections() {
			if section.Name() == ini.DefaultSection {
				continue
			}
			names[section.Name()] = struct{}{}
		}
	}

	if cfg, err := s.loadFile(s.configPath); err == nil {
		for _, section := range cfg.Sections() {
			name := section.Name()
			if name == ini.DefaultSection {
				continue
			}
			names[strings.TrimPrefix(name, profileSectionPrefix)] = struct{}{}
		}
	}

	profiles := make([]string, 0, len(names))
	for name := range names {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// IsSSOProfile reports whether the config file marks the profile for SSO
// authentication. Any failure to read or parse the config file means
// "not SSO"; rotation then treats the profile as an IAM user, which
// fails safely downstream if it is not.
func (s *Store) IsSSOProfile(name string) bool {
	cfg, err := s.loadFile(s.configPath)
	if err != nil {
		return false
	}

	section, err := cfg.GetSection(profileSectionPrefix + name)
	if err != nil {
		section, err = cfg.GetSection(name)
		if err != nil {
			return false
		}
	}

	return section.HasKey("sso_start_url") || section.HasKey("sso_session")
}

// CurrentAccessKeyID returns the access key id stored for the profile in
// the credentials file, or false if the file, section, or key is absent.
func (s *Store) CurrentAccessKeyID(name string) (string, bool) {
	cfg, err := s.loadFile(s.credentialsPath)
	if err != nil {
		return "", false
	}

	section, err := cfg.GetSection(name)
	if err != nil || !section.HasKey("aws_access_key_id") {
		return "", false
	}

	keyID := section.Key("aws_access_key_id").String()
	if keyID == "" {
		return "", false
	}
	return keyID, true
}
