package gotds

import (
	"context"
	"errors"
	"io"
)

// execute submits text on c and drives the result stream to completion.
// The returned result is non-nil whenever the command was submitted, also
// when err is set, so partial rows and diagnostics stay available.
func (c *Connection) execute(ctx context.Context, statementID, text string) (*StatementResult, error) {
	if c.IsClosed() {
		return nil, ErrClosedConnection
	}
	ctx = context.WithValue(ctx, ConnectionIDKey, c.id)
	ctx = context.WithValue(ctx, StatementIDKey, statementID)

	result := newStatementResult()
	dec, err := newResultSetDecoder(ctx, c.transport, c.cfg, result)
	if err != nil {
		return nil, err
	}

	c.sink.activate(result.diag)
	defer c.sink.deactivate()

	logger.WithContext(ctx).Infof("Exec: %#v", text)
	if err = c.transport.Submit(ctx, text); err != nil {
		logger.WithContext(ctx).Errorf("submit failed: %v", err)
		result.err = &Error{Number: ErrCodeSubmitFailed, Message: errMsgSubmitFailed, Err: err}
		return result, result.err
	}

	if err = c.readResults(ctx, dec, result); err != nil {
		logger.WithContext(ctx).Infof("error: %v", err)
		result.err = err
		return result, err
	}

	if first, ok := result.diag.firstError(); ok {
		result.err = commandFailedError(first)
		logger.WithContext(ctx).Infof("command completed with %d error(s), first: %v", len(result.Errors()), first.Message)
		return result, result.err
	}
	logger.WithContext(ctx).Debugf("command completed. rows: %d, result sets: %d", len(result.rows), len(result.resultSets))
	return result, nil
}

func (c *Connection) readResults(ctx context.Context, dec *resultSetDecoder, result *StatementResult) error {
	for {
		token, err := c.transport.NextResult(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &Error{Number: ErrCodeFetchFailed, Message: errMsgFetchFailed, Err: err}
		}
		logger.WithContext(ctx).Tracef("token: %v", token.Kind)

		switch token.Kind {
		case TokenRowFormat:
			err = dec.onFormat()
		case TokenRow:
			err = dec.onRow()
		case TokenStatus:
			status := token.Status
			result.status = &status
		case TokenCommandSucceeded, TokenCommandDone:
			dec.endResultSet()
		case TokenCommandFailed:
			first, ok := result.diag.firstError()
			if !ok {
				return ErrCommandFailed
			}
			return commandFailedError(first)
		default:
			logger.WithContext(ctx).Warnf("unexpected result token %v, ignoring", token.Kind)
			result.diag.addMessage(clientMessage("unexpected result token %v", token.Kind))
		}
		if err != nil {
			return err
		}
	}
}

func commandFailedError(first Diagnostic) *Error {
	return &Error{
		Number:     ErrCodeCommandFailed,
		Message:    first.Message,
		Diagnostic: &first,
	}
}
