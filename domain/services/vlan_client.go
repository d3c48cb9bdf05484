package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/carlosrabelo/capi/domain/entities"
	"github.com/carlosrabelo/capi/domain/ports"
)

// VlanClient configures and inspects one vlan through a shared
// CommandAPIClient
type VlanClient struct {
	vlan   int
	client *CommandAPIClient
}

// NewVlanClient creates a VlanClient for the vlan number, validated against
// the device by entering vlan-config mode with no commands. A
// *ports.ProtocolError there means the device rejected the vlan and is
// reported as *InvalidVlanError.
func NewVlanClient(vlan int, client *CommandAPIClient) (*VlanClient, error) {
	vc := &VlanClient{
		vlan:   vlan,
		client: client,
	}
	if _, err := client.RunVlanConfigCmds(vlan, nil); err != nil {
		var protoErr *ports.ProtocolError
		if errors.As(err, &protoErr) {
			return nil, &InvalidVlanError{Vlan: vlan}
		}
		return nil, err
	}
	return vc, nil
}

// Vlan returns the vlan number
func (vc *VlanClient) Vlan() int {
	return vc.vlan
}

// RunConfigCmds runs commands in vlan-config mode for this vlan
func (vc *VlanClient) RunConfigCmds(cmds []string) ([]entities.CommandResult, error) {
	return vc.client.RunVlanConfigCmds(vc.vlan, cmds)
}

// Status returns the device status record for this vlan
func (vc *VlanClient) Status() (entities.CommandResult, error) {
	results, err := vc.client.RunEnableCmds([]string{fmt.Sprintf("show vlan %d", vc.vlan)})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty status response for vlan %d", vc.vlan)
	}
	vlans, ok := results[0]["vlans"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected status response for vlan %d", vc.vlan)
	}
	record, ok := vlans[strconv.Itoa(vc.vlan)].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("vlan %d missing from status response", vc.vlan)
	}
	return entities.CommandResult(record), nil
}
