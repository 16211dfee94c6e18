package gotds

import (
	"context"
)

// Driver opens connections from loosely typed options through a Connector.
type Driver struct {
	Connector Connector
}

// Connect opens a connection. Recognized options are hostname, port,
// username, password, servername and charset, plus database, appname,
// maxcolumnlength, truncationpolicy, credentialstore and ignoredcodes.
func (d Driver) Connect(ctx context.Context, options map[string]any) (*Connection, error) {
	cfg := &Config{}
	if err := parseConfigMap(cfg, options); err != nil {
		return nil, err
	}
	return Open(ctx, cfg, d.Connector)
}

// ConnectWithConnectionConfig opens the connection described by connections.toml.
func (d Driver) ConnectWithConnectionConfig(ctx context.Context) (*Connection, error) {
	cfg, err := LoadConnectionConfig()
	if err != nil {
		return nil, err
	}
	return Open(ctx, cfg, d.Connector)
}
