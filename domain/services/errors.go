package services

import "fmt"

// ConnectionError reports that a session to a Command API endpoint could not
// be established. Endpoint is the credential-redacted address; the attempted
// URL with embedded credentials is never included in the message.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// InvalidInterfaceError reports that an InterfaceClient was requested for an
// interface name the device does not recognize
type InvalidInterfaceError struct {
	Name string
}

func (e *InvalidInterfaceError) Error() string {
	return fmt.Sprintf("invalid interface: %s", e.Name)
}

// InvalidVlanError reports that a VlanClient was requested for a vlan the
// device rejected
type InvalidVlanError struct {
	Vlan int
}

func (e *InvalidVlanError) Error() string {
	return fmt.Sprintf("invalid vlan: %d", e.Vlan)
}
