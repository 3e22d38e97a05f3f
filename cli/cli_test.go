package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/jsonify/inventory"
	"github.com/ardnew/jsonify/log"
	"github.com/ardnew/jsonify/pkg"
)

const inventoryText = "1 node1 x 10.0.0.1 v1\n" +
	"2 node1-a x 10.0.0.2 v1\n" +
	"3 node2 x 10.0.0.5 v2\n"

// setup isolates the configuration directory, restores the default logger
// after the test, and returns the path of a scenario inventory.
func setup(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	path := filepath.Join(dir, "inventory.txt")
	if err := os.WriteFile(path, []byte(inventoryText), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// writeConfig writes content to the configuration file of the isolated
// configuration directory.
func writeConfig(t *testing.T, content string) {
	t.Helper()

	if err := os.MkdirAll(pkg.ConfigDir(), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(pkg.ConfigFile(), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	exit := func(code int) { t.Logf("exit(%d)", code) }

	err = run(context.Background(), exit, &out, &errOut, args...)

	return out.String(), errOut.String(), err
}

func TestRunEmit(t *testing.T) {
	path := setup(t)

	out, _, err := runArgs(t, "-p", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	dec := json.NewDecoder(strings.NewReader(out))

	var names []string

	for dec.More() {
		var rec inventory.Record
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode: %v\n%s", err, out)
		}

		names = append(names, rec.Name)
	}

	want := []string{"node1.garmin.com", "node2.garmin.com"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("records = %v, want %v", names, want)
	}

	if !strings.Contains(out, "\n    \"alternateNames\": [") {
		t.Errorf("default output should be indented by 4 spaces:\n%s", out)
	}
}

func TestRunEmitExplicitCommand(t *testing.T) {
	path := setup(t)

	out, _, err := runArgs(t, "emit", "-p", path, "-q", "node2", "--indent=0")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := `{"name":"node2.garmin.com","alternateNames":["10.0.0.5"],` +
		`"clientAuthEnabled":false,"requestedBy":"staticuser"}` + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunQueryMiss(t *testing.T) {
	path := setup(t)

	out, _, err := runArgs(t, "-p", path, "-q", "node3")
	if err != nil {
		t.Fatalf("query miss should succeed: %v", err)
	}

	if !strings.Contains(out, "entry [node3] was not found!") {
		t.Errorf("output = %q", out)
	}
}

func TestRunErrors(t *testing.T) {
	path := setup(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no_path", nil, inventory.ErrInvalidPath},
		{"missing_file", []string{"-p", path + ".missing"}, inventory.ErrInvalidPath},
		{"bad_filter", []string{"-p", path, "--filter", "len("}, inventory.ErrFilterCompile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runArgs(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunUnknownFlag(t *testing.T) {
	setup(t)

	_, _, err := runArgs(t, "--no-such-flag")
	if err == nil {
		t.Fatal("run() should reject unknown flags")
	}
}

func TestRunConfigFile(t *testing.T) {
	path := setup(t)
	writeConfig(t, "domain: example.net\nformat: yaml\nqualify_members: true\n")

	out, _, err := runArgs(t, "-p", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, want := range []string{"name: node1.example.net\n", "node1-a.example.net", "---\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	path := setup(t)
	writeConfig(t, "domain: example.net\n")

	out, _, err := runArgs(t, "-p", path, "--domain", "corp.local")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out, "node1.corp.local") || strings.Contains(out, "example.net") {
		t.Errorf("flag should override config:\n%s", out)
	}
}

func TestRunInvalidConfigIgnored(t *testing.T) {
	path := setup(t)
	writeConfig(t, "- just\n- a list\n")

	out, _, err := runArgs(t, "-p", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out, "node1.garmin.com") {
		t.Errorf("defaults should apply:\n%s", out)
	}
}

func TestRunInit(t *testing.T) {
	path := setup(t)

	_, _, err := runArgs(t, "--domain", "example.net", "--aggregate", "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}

	content, err := os.ReadFile(pkg.ConfigFile())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"domain: example.net", "aggregate: true", "log-level: warn"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("config missing %q:\n%s", want, content)
		}
	}

	_, _, err = runArgs(t, "init")
	if err == nil {
		t.Error("second init without --force should fail")
	}

	// The saved configuration now drives a plain run.
	out, _, err := runArgs(t, "-p", path)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]inventory.Record
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("expected aggregate output: %v\n%s", err, out)
	}

	if got["node1"].Name != "node1.example.net" {
		t.Errorf("node1 = %+v", got["node1"])
	}
}

func TestRunInitSkipsPerRunFlags(t *testing.T) {
	path := setup(t)

	_, _, err := runArgs(t, "-p", path, "-q", "node1", "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}

	content, err := os.ReadFile(pkg.ConfigFile())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"path:", "query:"} {
		if strings.Contains(string(content), key) {
			t.Errorf("config should not contain %q:\n%s", key, content)
		}
	}

	// A later run without --query emits every record.
	out, _, err := runArgs(t, "-p", path)
	if err != nil {
		t.Fatal(err)
	}

	dec := json.NewDecoder(strings.NewReader(out))

	var count int

	for dec.More() {
		var rec inventory.Record
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode: %v\n%s", err, out)
		}

		count++
	}

	if count != 2 {
		t.Errorf("got %d records after init, want 2\n%s", count, out)
	}
}

func TestRunLogFile(t *testing.T) {
	path := setup(t)
	logPath := filepath.Join(t.TempDir(), "jsonify.log")

	if err := os.WriteFile(logPath, []byte("stale\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runArgs(t,
		"-p", path,
		"--log-level=debug", "--log-format=json", "--log-file", logPath,
	)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(data), "stale") {
		t.Error("log file should be truncated")
	}

	if !strings.Contains(string(data), `"msg":"read inventory"`) {
		t.Errorf("log file missing records:\n%s", data)
	}

	if strings.Contains(stderr, "read inventory") {
		t.Errorf("records should not reach stderr:\n%s", stderr)
	}

	if !strings.Contains(string(data), `"msg":"logger initialized","level":"debug","format":"json"`) {
		t.Errorf("log file missing effective logger settings:\n%s", data)
	}
}

func TestRunLogStderr(t *testing.T) {
	path := setup(t)

	_, stderr, err := runArgs(t, "-p", path, "--log-level=info", "--no-log-pretty")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stderr, "read inventory") {
		t.Errorf("stderr missing log record:\n%s", stderr)
	}
}
