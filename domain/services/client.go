package services

import (
	"errors"
	"fmt"

	"github.com/carlosrabelo/capi/domain/entities"
	"github.com/carlosrabelo/capi/domain/ports"
)

// Command API protocol version sent as the first runCmds parameter
const protocolVersion = 1

// Mode entry commands understood by the device CLI
const (
	configureCmd = "configure"
	mlagCmd      = "mlag configuration"
)

// CommandAPIClient runs CLI commands on a Command API device. Every Run*
// method issues exactly one round trip and returns one result per input
// command, in input order; mode entry commands are injected and their
// results stripped before returning.
type CommandAPIClient struct {
	config entities.DeviceConfig
	runner ports.CommandRunner
}

// NewCommandAPIClient creates a client bound to the given runner and probes
// the device with an empty enable-mode batch. A transport failure during the
// probe is reported as *ConnectionError; a *ports.ProtocolError (bad
// credentials, enable secret rejected) propagates unmodified. The returned
// client is fully usable or nil.
func NewCommandAPIClient(cfg entities.DeviceConfig, runner ports.CommandRunner) (*CommandAPIClient, error) {
	client := &CommandAPIClient{
		config: cfg,
		runner: runner,
	}
	if _, err := client.RunEnableCmds(nil); err != nil {
		var protoErr *ports.ProtocolError
		if errors.As(err, &protoErr) {
			return nil, err
		}
		return nil, &ConnectionError{Endpoint: runner.Endpoint(), Err: err}
	}
	return client, nil
}

// RunEnableCmds runs commands in enable mode and returns one result per
// command. The privileged-mode entry element is prepended to the batch and
// its result stripped.
func (c *CommandAPIClient) RunEnableCmds(cmds []string) ([]entities.CommandResult, error) {
	batch := make([]any, 0, len(cmds)+1)
	batch = append(batch, entities.EnableEntry{Cmd: "enable", Input: c.config.EnablePassword})
	for _, cmd := range cmds {
		batch = append(batch, cmd)
	}
	if c.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Sending %d commands to %s\n", len(batch), c.runner.Endpoint())
	}
	results, err := c.runner.RunCmds(protocolVersion, batch)
	if err != nil {
		return nil, err
	}
	return stripWrapped(results, 1)
}

// RunConfigCmds runs commands in config mode
func (c *CommandAPIClient) RunConfigCmds(cmds []string) ([]entities.CommandResult, error) {
	results, err := c.RunEnableCmds(prepend(configureCmd, cmds))
	if err != nil {
		return nil, err
	}
	return stripWrapped(results, 1)
}

// RunIntfConfigCmds runs commands in interface-config mode for intf
func (c *CommandAPIClient) RunIntfConfigCmds(intf string, cmds []string) ([]entities.CommandResult, error) {
	results, err := c.RunConfigCmds(prepend("interface "+intf, cmds))
	if err != nil {
		return nil, err
	}
	return stripWrapped(results, 1)
}

// RunVlanConfigCmds runs commands in vlan-config mode for the vlan number
func (c *CommandAPIClient) RunVlanConfigCmds(vlan int, cmds []string) ([]entities.CommandResult, error) {
	results, err := c.RunConfigCmds(prepend(fmt.Sprintf("vlan %d", vlan), cmds))
	if err != nil {
		return nil, err
	}
	return stripWrapped(results, 1)
}

// RunMlagConfigCmds runs commands in mlag-config mode
func (c *CommandAPIClient) RunMlagConfigCmds(cmds []string) ([]entities.CommandResult, error) {
	results, err := c.RunConfigCmds(prepend(mlagCmd, cmds))
	if err != nil {
		return nil, err
	}
	return stripWrapped(results, 1)
}

// Interface returns an InterfaceClient for the named interface
func (c *CommandAPIClient) Interface(name string) (*InterfaceClient, error) {
	return NewInterfaceClient(name, c)
}

// Vlan returns a VlanClient for the vlan number
func (c *CommandAPIClient) Vlan(vlan int) (*VlanClient, error) {
	return NewVlanClient(vlan, c)
}

// prepend returns a new slice with cmd ahead of cmds, leaving cmds untouched
func prepend(cmd string, cmds []string) []string {
	out := make([]string, 0, len(cmds)+1)
	out = append(out, cmd)
	return append(out, cmds...)
}

// stripWrapped drops the results of the n injected mode entry commands,
// which always sit at the front of the response.
func stripWrapped(results []entities.CommandResult, n int) ([]entities.CommandResult, error) {
	if len(results) < n {
		return nil, fmt.Errorf("device returned %d results, expected at least %d", len(results), n)
	}
	return results[n:], nil
}
