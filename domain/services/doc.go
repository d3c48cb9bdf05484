// Package services implements the Command API client objects.
//
// A CommandAPIClient runs CLI commands on one device through a
// ports.CommandRunner and is created once per device:
//
//	runner := transport.NewJSONRPCRunner(cfg)
//	client, err := services.NewCommandAPIClient(cfg, runner)
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := client.RunEnableCmds([]string{"show version"})
//
// Interface and vlan helpers scope config commands to one target:
//
//	et1, err := client.Interface("Ethernet1")
//	_, err = et1.RunConfigCmds([]string{"description uplink"})
//	status, err := et1.Status()
package services
