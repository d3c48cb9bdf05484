package main

import (
	"os"
	"strings"
	"testing"

	"github.com/carlosrabelo/capi/domain/entities"
	"github.com/carlosrabelo/capi/domain/services"
)

type fakeRunner struct {
	batches   [][]any
	responses map[string]entities.CommandResult
}

func (f *fakeRunner) RunCmds(version int, batch []any) ([]entities.CommandResult, error) {
	f.batches = append(f.batches, batch)
	results := make([]entities.CommandResult, 0, len(batch))
	for _, element := range batch {
		if cmd, ok := element.(string); ok {
			if resp, found := f.responses[cmd]; found {
				results = append(results, resp)
				continue
			}
		}
		results = append(results, entities.CommandResult{})
	}
	return results, nil
}

func (f *fakeRunner) Endpoint() string {
	return "https://sw1.example.com/command-api"
}

func newFakeClient(t *testing.T, runner *fakeRunner) *services.CommandAPIClient {
	t.Helper()
	cfg := entities.DeviceConfig{Host: "sw1.example.com", Username: "admin", Password: "secret"}
	client, err := services.NewCommandAPIClient(cfg, runner)
	if err != nil {
		t.Fatalf("NewCommandAPIClient() failed: %v", err)
	}
	return client
}

func TestPrintUsage(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	printUsage()

	w.Close()
	os.Stderr = oldStderr

	buf := make([]byte, 2048)
	n, _ := r.Read(buf)
	output := string(buf[:n])

	expectedStrings := []string{
		"Usage of",
		"--config string",
		"--target string",
		"--mode string",
		"--interface string",
		"--vlan int",
		"--status",
		"--verbose int",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected usage to contain '%s', got: %s", expected, output)
		}
	}
}

func TestRun_EnableMode(t *testing.T) {
	runner := &fakeRunner{}
	client := newFakeClient(t, runner)

	results, err := run(client, "enable", "", 0, false, []string{"show version"})
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	out, ok := results.([]entities.CommandResult)
	if !ok || len(out) != 1 {
		t.Errorf("Unexpected results: %v", results)
	}
}

func TestRun_ConfigMode(t *testing.T) {
	runner := &fakeRunner{}
	client := newFakeClient(t, runner)

	_, err := run(client, "config", "", 0, false, []string{"hostname sw1"})
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	batch := runner.batches[len(runner.batches)-1]
	if len(batch) != 3 || batch[1] != "configure" || batch[2] != "hostname sw1" {
		t.Errorf("Unexpected batch: %v", batch)
	}
}

func TestRun_InterfaceStatus(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]entities.CommandResult{
			"show interfaces Ethernet1 status": {
				"interfaceStatuses": map[string]any{
					"Ethernet1": map[string]any{"linkStatus": "connected"},
				},
			},
		},
	}
	client := newFakeClient(t, runner)

	results, err := run(client, "enable", "Ethernet1", 0, true, nil)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	statuses, ok := results.(map[string]entities.CommandResult)
	if !ok || statuses["Ethernet1"]["linkStatus"] != "connected" {
		t.Errorf("Unexpected results: %v", results)
	}
}

func TestRun_VlanConfig(t *testing.T) {
	runner := &fakeRunner{}
	client := newFakeClient(t, runner)

	_, err := run(client, "enable", "", 20, false, []string{"name lab"})
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	batch := runner.batches[len(runner.batches)-1]
	if len(batch) != 4 || batch[2] != "vlan 20" || batch[3] != "name lab" {
		t.Errorf("Unexpected batch: %v", batch)
	}
}
