package types

import "errors"

// Descriptor holds the configuration needed to open a database connection.
// It is immutable by convention: callers build one and pass it to Open.
type Descriptor struct {
	Driver   string            `json:"driver" yaml:"driver"`
	Host     string            `json:"host" yaml:"host"`
	Port     int               `json:"port" yaml:"port"`
	Database string            `json:"database" yaml:"database"`
	User     string            `json:"user" yaml:"user"`
	Password string            `json:"password" yaml:"password"`
	Params   map[string]string `json:"params" yaml:"params"`
}

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Descriptor validation errors.
var (
	ErrDriverEmpty   = errors.New("driver must not be empty")
	ErrDriverUnknown = errors.New("unknown driver")
	ErrDatabaseEmpty = errors.New("database must not be empty")
)

// knownDrivers lists the drivers that Validate accepts.
var knownDrivers = map[string]bool{
	DriverSQLite:   true,
	DriverPostgres: true,
}

// Validate checks that the Descriptor is well-formed. It returns a sentinel
// error from this package on failure.
func (d Descriptor) Validate() error {
	if d.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[d.Driver] {
		return ErrDriverUnknown
	}
	if d.Database == "" {
		return ErrDatabaseEmpty
	}
	return nil
}
