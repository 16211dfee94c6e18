/*
Package gotds materializes results of a tabular data stream (TDS) database
session and attributes server diagnostics to the statement that raised them.

The wire protocol itself is provided by a Connector; gotds drives command
execution, decodes column formats and rows into typed values and collects
messages and errors per statement.

# Connecting

	conn, err := gotds.Open(ctx, &gotds.Config{
		Hostname: "db1",
		Username: "u",
		Password: "p",
	}, connector)

Options can also be given as a map through Driver.Connect, or read from
$GOTDS_HOME/connections.toml with LoadConnectionConfig. The file must not be
readable by group or others:

	[default]
	hostname = "db1"
	port = 1433
	username = "u"
	password = "p"
	charset = "UTF-8"

# Executing

	res, err := conn.Execute(ctx, "SELECT 1 AS x")

Rows are maps from column name to bool, int64, float64, string, []byte,
DateTime or nil for NULL. Money and decimal values are float64, so very
large values lose precision.

Server messages (code 0) are collected in Messages, other codes in Errors,
except the benign notices 5701, 5703 and 20018. When Errors is not empty,
Execute returns an *Error with ErrCodeCommandFailed carrying the first one,
together with the rows decoded so far. Diagnostics arriving outside an
execution go to Connection.Messages and Connection.Errors.

The arrowbatches package converts result sets to Apache Arrow records with
arrowbatches.ResultSetToRecord and arrowbatches.GetArrowBatches.

# Logging

The driver logs through a slog based logger with secret masking. Replace it
with SetLogger or change the level:

	_ = gotds.GetLogger().SetLogLevel("debug")
*/
package gotds
