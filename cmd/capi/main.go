package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carlosrabelo/capi/domain/services"
	"github.com/carlosrabelo/capi/infrastructure/config"
	"github.com/carlosrabelo/capi/infrastructure/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage of %s [flags] [command ...]:\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  --config string     YAML device inventory (default \"config.yaml\")\n")
	fmt.Fprintf(os.Stderr, "  --target string     Device host (must match a host in YAML, required)\n")
	fmt.Fprintf(os.Stderr, "  --mode string       Command mode: enable or config (default \"enable\")\n")
	fmt.Fprintf(os.Stderr, "  --interface string  Run commands in interface-config mode for this interface\n")
	fmt.Fprintf(os.Stderr, "  --vlan int          Run commands in vlan-config mode for this vlan\n")
	fmt.Fprintf(os.Stderr, "  --status            Print the status of the selected interface or vlan\n")
	fmt.Fprintf(os.Stderr, "  --verbose int       Verbosity level: 0=none, 1=debug logs, 2=raw results, 3=both\n")
}

func main() {
	flag.Usage = printUsage
	yamlFile := flag.String("config", "config.yaml", "YAML device inventory")
	target := flag.String("target", "", "Device host (must match a host in YAML, required)")
	mode := flag.String("mode", "enable", "Command mode: enable or config")
	intf := flag.String("interface", "", "Run commands in interface-config mode for this interface")
	vlan := flag.Int("vlan", 0, "Run commands in vlan-config mode for this vlan")
	status := flag.Bool("status", false, "Print the status of the selected interface or vlan")
	verbosity := flag.Int("verbose", 0, "Verbosity level: 0=none, 1=debug logs, 2=raw results, 3=both")
	flag.Parse()

	fmt.Printf("Capi %s (built %s)\n", version, buildTime)

	if *verbosity < 0 || *verbosity > 3 {
		fmt.Fprintf(os.Stderr, "Error: --verbose must be 0, 1, 2, or 3\n")
		flag.Usage()
		os.Exit(1)
	}
	if *target == "" {
		fmt.Fprintf(os.Stderr, "Error: the --target parameter is required. Specify the device host with --target <host>\n")
		flag.Usage()
		os.Exit(1)
	}
	if *mode != "enable" && *mode != "config" {
		fmt.Fprintf(os.Stderr, "Error: --mode must be 'enable' or 'config'\n")
		flag.Usage()
		os.Exit(1)
	}
	if *intf != "" && *vlan != 0 {
		fmt.Fprintf(os.Stderr, "Error: --interface and --vlan are mutually exclusive\n")
		os.Exit(1)
	}

	cfg, err := config.Load(*yamlFile, *target, *verbosity)
	if err != nil {
		log.Fatal(err)
	}
	device, found := cfg.FindDevice(*target)
	if !found {
		fmt.Fprintf(os.Stderr, "Error: target %s not registered in the YAML configuration\n", *target)
		os.Exit(1)
	}

	runner := transport.NewJSONRPCRunner(device)
	client, err := services.NewCommandAPIClient(device, runner)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", *target, err)
	}

	cmds := flag.Args()
	results, err := run(client, *mode, *intf, *vlan, *status, cmds)
	if err != nil {
		log.Fatalf("Error running commands on %s: %v", *target, err)
	}
	printJSON(results)
}

func run(client *services.CommandAPIClient, mode, intf string, vlan int, status bool, cmds []string) (any, error) {
	switch {
	case intf != "":
		ic, err := client.Interface(intf)
		if err != nil {
			return nil, err
		}
		if status {
			return ic.Status()
		}
		return ic.RunConfigCmds(cmds)
	case vlan != 0:
		vc, err := client.Vlan(vlan)
		if err != nil {
			return nil, err
		}
		if status {
			return vc.Status()
		}
		return vc.RunConfigCmds(cmds)
	case mode == "config":
		return client.RunConfigCmds(cmds)
	default:
		return client.RunEnableCmds(cmds)
	}
}

func printJSON(results any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		log.Fatalf("Failed to encode results: %v", err)
	}
}
