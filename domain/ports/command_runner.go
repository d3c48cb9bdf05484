package ports

import (
	"fmt"

	"github.com/carlosrabelo/capi/domain/entities"
)

// CommandRunner defines the port for submitting a command batch to a
// Command API device in one round trip. The batch is ordered; the device
// returns one result per batch element, in the same order.
type CommandRunner interface {
	RunCmds(version int, batch []any) ([]entities.CommandResult, error)

	// Endpoint returns the endpoint address with credentials redacted,
	// suitable for error messages.
	Endpoint() string
}

// ProtocolError reports that the device rejected one or more commands in a
// batch. The message identifies the offending command's position and the
// remote error text; Data carries any per-command detail the device returned.
type ProtocolError struct {
	Code    int
	Message string
	Data    any
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error %d: %s", e.Code, e.Message)
}
