package gotds

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when hostname is given without a port.
	DefaultPort = 1433
	// DefaultCharset is the client character set for single-byte text columns.
	DefaultCharset = "ISO-8859-1"
	// DefaultMaxColumnLength caps the buffer allocated for a single column value.
	DefaultMaxColumnLength = 100000
)

const isWindows = runtime.GOOS == "windows"

// defaultIgnoredCodes are server notices that are never treated as errors:
// 5701 changed database context, 5703 changed language setting and
// 20018 the generic "general SQL Server error: check messages" notice.
var defaultIgnoredCodes = []int32{5701, 5703, 20018}

// Config is the set of parameters used to open a Connection.
type Config struct {
	Hostname   string // host to connect to, requires Port
	Port       int    // TCP port, defaults to 1433 when Hostname is set
	Servername string // server entry resolved by the transport, alternative to Hostname
	Username   string // login name (required)
	Password   string // password, may be empty
	Database   string // initial database (optional)
	AppName    string // application name reported at login (optional)
	Charset    string // client charset for char/varchar/text columns

	// MaxColumnLength caps the per-column buffer. Longer values are truncated.
	MaxColumnLength int
	// TruncationPolicy decides what happens when a value exceeds MaxColumnLength.
	TruncationPolicy TruncationPolicy
	// IgnoredCodes are server diagnostic codes dropped instead of recorded as
	// errors, in addition to the built in benign notices.
	IgnoredCodes []int32
	// CredentialStore looks the password up in the OS credential store when
	// Password is empty.
	CredentialStore bool
}

// server returns the name used in logs and error messages.
func (c *Config) server() string {
	if c.Servername != "" {
		return c.Servername
	}
	return fmt.Sprintf("%v:%v", c.Hostname, c.Port)
}

func (c *Config) ignoredCodes() []int32 {
	codes := make([]int32, 0, len(defaultIgnoredCodes)+len(c.IgnoredCodes))
	codes = append(codes, defaultIgnoredCodes...)
	return append(codes, c.IgnoredCodes...)
}

// fillMissingConfigParameters applies defaults and validates the result.
func fillMissingConfigParameters(cfg *Config) error {
	if cfg.Hostname != "" && cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if strings.TrimSpace(cfg.Charset) == "" {
		cfg.Charset = DefaultCharset
	}
	if cfg.MaxColumnLength <= 0 {
		cfg.MaxColumnLength = DefaultMaxColumnLength
	}
	return cfg.Validate()
}

// Validate checks the parameters without applying defaults. It never
// touches the network.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Servername) == "" && strings.TrimSpace(c.Hostname) == "" {
		return ErrEmptyServer
	}
	if c.Hostname != "" && c.Port == 0 {
		return ErrEmptyPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return &Error{
			Number:      ErrCodeFailedToParsePort,
			Message:     errMsgFailedToParsePort,
			MessageArgs: []interface{}{c.Port},
		}
	}
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if c.Charset != "" {
		if _, err := lookupCharset(c.Charset); err != nil {
			return err
		}
	}
	return nil
}

// parseConfigMap fills cfg from loosely typed options, as given to
// Driver.Connect or read from connections.toml. Unknown keys are ignored.
func parseConfigMap(cfg *Config, options map[string]interface{}) error {
	var parsingErr error
	for key, value := range options {
		switch strings.ToLower(key) {
		case "hostname", "host":
			cfg.Hostname, parsingErr = parseString(value)
		case "port":
			cfg.Port, parsingErr = parseInt(value)
			if parsingErr != nil {
				return &Error{
					Number:      ErrCodeFailedToParsePort,
					Message:     errMsgFailedToParsePort,
					MessageArgs: []interface{}{value},
					Err:         parsingErr,
				}
			}
		case "username", "user":
			cfg.Username, parsingErr = parseString(value)
		case "password":
			cfg.Password, parsingErr = parseString(value)
		case "servername", "dataserver":
			cfg.Servername, parsingErr = parseString(value)
		case "database":
			cfg.Database, parsingErr = parseString(value)
		case "appname":
			cfg.AppName, parsingErr = parseString(value)
		case "charset":
			cfg.Charset, parsingErr = parseString(value)
		case "maxcolumnlength":
			cfg.MaxColumnLength, parsingErr = parseInt(value)
		case "truncationpolicy":
			var v string
			if v, parsingErr = parseString(value); parsingErr == nil {
				cfg.TruncationPolicy, parsingErr = parseTruncationPolicy(v)
			}
		case "credentialstore":
			cfg.CredentialStore, parsingErr = parseBool(value)
		case "ignoredcodes":
			cfg.IgnoredCodes, parsingErr = parseCodes(value)
		default:
			logger.Debugf("ignoring unknown option %v", key)
		}
		if parsingErr != nil {
			return &Error{
				Number:      ErrCodeInvalidOption,
				Message:     errMsgInvalidOption,
				MessageArgs: []interface{}{key, value},
				Err:         parsingErr,
			}
		}
	}
	return nil
}

func parseString(i interface{}) (string, error) {
	v, ok := i.(string)
	if !ok {
		return "", errors.New("failed to convert the value to string")
	}
	return v, nil
}

func parseInt(i interface{}) (int, error) {
	switch v := i.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, errors.New("failed to parse the value to integer")
	}
}

func parseBool(i interface{}) (bool, error) {
	switch v := i.(type) {
	case bool:
		return v, nil
	case string:
		vv, err := strconv.ParseBool(v)
		if err != nil {
			return false, errors.New("failed to parse the value to boolean")
		}
		return vv, nil
	default:
		return false, errors.New("failed to parse the value to boolean")
	}
}

// parseCodes accepts a list of integers or a comma separated string.
func parseCodes(i interface{}) ([]int32, error) {
	var items []interface{}
	switch v := i.(type) {
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
	case []interface{}:
		items = v
	case []int:
		for _, n := range v {
			items = append(items, n)
		}
	case []int32:
		return append([]int32(nil), v...), nil
	default:
		return nil, errors.New("failed to parse the value to a list of codes")
	}
	codes := make([]int32, 0, len(items))
	for _, item := range items {
		n, err := parseInt(item)
		if err != nil {
			return nil, err
		}
		codes = append(codes, int32(n))
	}
	return codes, nil
}
