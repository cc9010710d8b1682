package config

import "errors"

var (
	// ErrCredentialsFileNotFound indicates the credential file path does not exist.
	ErrCredentialsFileNotFound = errors.New("credentials file not found")

	// ErrCredentialsMalformed indicates the credential file did not have
	// at least two newline-separated lines.
	ErrCredentialsMalformed = errors.New("credentials file must contain dev_id and dev_key on separate lines")

	// ErrPoolConfigFormat indicates a pool config file did not parse in the
	// format chosen by its extension (YAML for .yaml/.yml, JSON otherwise).
	ErrPoolConfigFormat = errors.New("invalid pool configuration file format")
)
