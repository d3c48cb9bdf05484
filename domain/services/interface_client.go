package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlosrabelo/capi/domain/entities"
	"github.com/carlosrabelo/capi/domain/ports"
)

// InterfaceClient configures and inspects one named interface through a
// shared CommandAPIClient
type InterfaceClient struct {
	name   string
	client *CommandAPIClient
}

// NewInterfaceClient creates an InterfaceClient for the named interface.
// The name is trimmed and validated against the device by entering
// interface-config mode with no commands; a *ports.ProtocolError there
// means the device does not recognize the name and is reported as
// *InvalidInterfaceError.
func NewInterfaceClient(name string, client *CommandAPIClient) (*InterfaceClient, error) {
	ic := &InterfaceClient{
		name:   strings.TrimSpace(name),
		client: client,
	}
	if _, err := client.RunIntfConfigCmds(ic.name, nil); err != nil {
		var protoErr *ports.ProtocolError
		if errors.As(err, &protoErr) {
			return nil, &InvalidInterfaceError{Name: ic.name}
		}
		return nil, err
	}
	return ic, nil
}

// Name returns the trimmed interface name
func (ic *InterfaceClient) Name() string {
	return ic.name
}

// RunConfigCmds runs commands in interface-config mode for this interface
func (ic *InterfaceClient) RunConfigCmds(cmds []string) ([]entities.CommandResult, error) {
	return ic.client.RunIntfConfigCmds(ic.name, cmds)
}

// Status returns the device status records keyed by interface name. The
// name may match a range, so the full mapping is returned rather than a
// single record.
func (ic *InterfaceClient) Status() (map[string]entities.CommandResult, error) {
	results, err := ic.client.RunEnableCmds([]string{"show interfaces " + ic.name + " status"})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty status response for interface %s", ic.name)
	}
	raw, ok := results[0]["interfaceStatuses"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected status response for interface %s", ic.name)
	}
	statuses := make(map[string]entities.CommandResult, len(raw))
	for name, value := range raw {
		record, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected status record for interface %s", name)
		}
		statuses[name] = entities.CommandResult(record)
	}
	return statuses, nil
}
