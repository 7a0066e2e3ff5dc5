// Package types defines the entity types, configuration, and standard
// errors shared by the mealweek store and its callers.
package types

import "errors"

// DefaultDBFileName is the SQLite file created inside the data directory.
// Existing databases written by earlier versions of the tool use this name,
// so it must not change silently.
const DefaultDBFileName = "marmita_data.db"

// Config holds store location parameters for Store.Open.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
	DBFile  string `json:"db_file" yaml:"db_file"`

	// BcryptCredentials selects bcrypt digests for newly created accounts.
	// Existing sha256 rows (including the seeded admin) stay verifiable
	// either way.
	BcryptCredentials bool `json:"bcrypt_credentials" yaml:"bcrypt_credentials"`
}

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)

// Validate checks that the Config is well-formed and fills defaults.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.DBFile == "" {
		c.DBFile = DefaultDBFileName
	}
	return nil
}
