package gotds

import (
	"errors"
	"os"
	path "path/filepath"

	toml "github.com/BurntSushi/toml"
)

const (
	gotdsHome                 = "GOTDS_HOME"
	gotdsConnectionName       = "GOTDS_DEFAULT_CONNECTION_NAME"
	connectionsFileName       = "connections.toml"
	defaultConnectionName     = "default"
	defaultConfigDirectoryRel = ".gotds"
)

// LoadConnectionConfig returns the connection config loaded from connections.toml.
// The file is looked up in GOTDS_HOME (default ~/.gotds) and the entry is
// selected by GOTDS_DEFAULT_CONNECTION_NAME (default "default").
func LoadConnectionConfig() (*Config, error) {
	return loadConnectionConfig(os.Getenv(gotdsHome), os.Getenv(gotdsConnectionName))
}

func loadConnectionConfig(home, name string) (*Config, error) {
	cfg := &Config{}
	dsn := getConnectionDSN(name)
	configDir, err := getTomlFilePath(home)
	if err != nil {
		return nil, err
	}
	tomlFilePath := path.Join(configDir, connectionsFileName)
	if err = validateFilePermission(tomlFilePath); err != nil {
		return nil, err
	}
	tomlInfo := make(map[string]interface{})
	if _, err = toml.DecodeFile(tomlFilePath, &tomlInfo); err != nil {
		return nil, &Error{
			Number:      ErrCodeTomlFileParsingFailed,
			Message:     errMsgFailedToParseTomlFile,
			MessageArgs: []interface{}{tomlFilePath, "<file>"},
			Err:         err,
		}
	}
	connection, exist := tomlInfo[dsn]
	if !exist {
		return nil, &Error{
			Number:      ErrCodeFailedToFindDSNInToml,
			Message:     errMsgFailedToFindDSNInToml,
			MessageArgs: []interface{}{dsn},
		}
	}
	connectionConfig, ok := connection.(map[string]interface{})
	if !ok {
		return nil, &Error{
			Number:      ErrCodeTomlFileParsingFailed,
			Message:     errMsgFailedToParseTomlFile,
			MessageArgs: []interface{}{dsn, connection},
		}
	}
	if err = parseConfigMap(cfg, connectionConfig); err != nil {
		var driverErr *Error
		if errors.As(err, &driverErr) && driverErr.Number == ErrCodeInvalidOption {
			driverErr.Number = ErrCodeTomlFileParsingFailed
			driverErr.Message = errMsgFailedToParseTomlFile
		}
		return nil, err
	}
	logger.Debugf("loaded connection %v from %v", dsn, tomlFilePath)
	return cfg, nil
}

func getTomlFilePath(filePath string) (string, error) {
	if len(filePath) != 0 {
		if path.IsAbs(filePath) {
			return filePath, nil
		}
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		filePath = path.Join(homeDir, defaultConfigDirectoryRel)
	}
	return path.Abs(filePath)
}

func getConnectionDSN(dsn string) string {
	if len(dsn) != 0 {
		return dsn
	}
	return defaultConnectionName
}

func validateFilePermission(filePath string) error {
	if isWindows {
		return nil
	}
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if permission := fileInfo.Mode().Perm(); permission&0077 != 0 {
		return &Error{
			Number:      ErrCodeInvalidFilePermission,
			Message:     errMsgInvalidFilePermission,
			MessageArgs: []interface{}{filePath, permission},
		}
	}
	return nil
}
