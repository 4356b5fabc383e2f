package models

import "encoding/json"

// NotAvailable marks a field that could not be determined.
const NotAvailable = "N/A"

type StatusKind int

const (
	StatusActive StatusKind = iota
	StatusExpired
	StatusNoCredentials
	StatusError
)

// CredentialStatus is the classified outcome of an identity probe.
// Detail carries the AWS error code or a truncated message for StatusError.
type CredentialStatus struct {
	Kind   StatusKind
	Detail string
}

func ActiveStatus() CredentialStatus        { return CredentialStatus{Kind: StatusActive} }
func ExpiredStatus() CredentialStatus       { return CredentialStatus{Kind: StatusExpired} }
func NoCredentialsStatus() CredentialStatus { return CredentialStatus{Kind: StatusNoCredentials} }
func ErrorStatus(detail string) CredentialStatus {
	return CredentialStatus{Kind: StatusError, Detail: detail}
}

func (s CredentialStatus) String() string {
	switch s.Kind {
	case StatusActive:
		return "Active"
	case StatusExpired:
		return "Expired"
	case StatusNoCredentials:
		return "No Credentials"
	default:
		return "Error: " + s.Detail
	}
}

func (s CredentialStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s CredentialStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// AccountInfo holds the result of a status query for one profile. It is
// recomputed on every query and never persisted.
type AccountInfo struct {
	Profile        string           `json:"profile" yaml:"profile"`
	AccountID      string           `json:"accountId" yaml:"accountId"`
	UserName       string           `json:"userName" yaml:"userName"`
	CredentialType string           `json:"credentialType" yaml:"credentialType"`
	Arn            string           `json:"arn" yaml:"arn"`
	Status         CredentialStatus `json:"status" yaml:"status"`
	CredentialAge  string           `json:"credentialAge" yaml:"credentialAge"`
	ExpiresIn      string           `json:"expiresIn" yaml:"expiresIn"`
	ExpirationDate string           `json:"expirationDate" yaml:"expirationDate"`
}

// ExpirationInfo describes how long a profile's credentials remain valid.
type ExpirationInfo struct {
	ExpiresIn      string
	ExpirationDate string
}

// BackupResult reports the outcome of a credentials backup.
type BackupResult struct {
	Success    bool
	BackupFile string
	Message    string
}

// RefreshResult reports the outcome of a credential refresh (IAM rotation
// or SSO re-login). Failures are carried in Message, never raised.
type RefreshResult struct {
	Success bool
	Message string
}
