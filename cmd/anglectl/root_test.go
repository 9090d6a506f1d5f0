package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tigerbot-team/angle/pkg/config"
)

// run executes anglectl with args against a config file that does not
// exist, so the defaults apply unless the test passes its own --config.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func expectOutput(t *testing.T, args []string, want ...string) {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("anglectl %v: %v", args, err)
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("anglectl %v output %q does not contain %q", args, out, w)
		}
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"convert", "180"}, "180.0000", "3.1416")
	expectOutput(t, []string{"--unit", "radians", "convert", "1"}, "57.2958", "1.0000")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"normalize", "--", "-450"}, "270.0000°")
	expectOutput(t, []string{"normalize", "1122.3"}, "42.3000°")
	expectOutput(t, []string{"normalize", "--delta", "270"}, "-90.0000°")
	expectOutput(t, []string{"normalize", "--delta", "540"}, "180.0000°")
}

func TestTrigAndAbs(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"trig", "90"}, "1.0000")
	expectOutput(t, []string{"abs", "--", "-42"}, "42.0000°")
}

func TestClose(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"close", "1", "359", "--threshold", "5"}, "true")
	expectOutput(t, []string{"close", "1", "359", "--threshold", "1"}, "false")
	// Default threshold is 1°.
	expectOutput(t, []string{"close", "10", "10.5"}, "true")

	_, err := run(t, "close", "1", "2", "--threshold", "-1")
	if !errors.Is(err, errNegativeThreshold) {
		t.Errorf("expected errNegativeThreshold, got %v", err)
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"between", "45", "0", "90"}, "true")
	expectOutput(t, []string{"between", "45", "90", "0"}, "false")
	expectOutput(t, []string{"between", "10", "10", "10"}, "true")
}

func TestBadArguments(t *testing.T) {
	t.Parallel()

	if _, err := run(t, "normalize", "ninety"); err == nil || !strings.Contains(err.Error(), "invalid number") {
		t.Errorf("expected an invalid number error, got %v", err)
	}
	if _, err := run(t, "between", "1", "2"); err == nil {
		t.Error("between with two arguments should fail")
	}
	if _, err := run(t, "--unit", "grads", "convert", "1"); err == nil {
		t.Error("unknown unit should fail")
	}
}

func TestDial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dial.png")
	if _, err := run(t, "dial", "30", "--start", "0", "--end", "90", "--size", "64", "--out", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("dial width = %d, expected 64", img.Bounds().Dx())
	}

	if _, err := run(t, "dial", "30", "--start", "0", "--out", path); err == nil {
		t.Error("--start without --end should fail")
	}
}

func TestDialSizeBounds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dial.png")
	for _, size := range []string{"100000", "8", "0", "-5"} {
		_, err := run(t, "dial", "0", "--size", size, "--out", path)
		if !errors.Is(err, config.ErrInvalidDialSize) {
			t.Errorf("--size %s: expected ErrInvalidDialSize, got %v", size, err)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("no dial should be written for a rejected size, stat: %v", err)
	}
}

func TestDialToStdout(t *testing.T) {
	t.Parallel()

	out, err := run(t, "dial", "30", "--out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(strings.NewReader(out)); err != nil {
		t.Errorf("stdout should hold a PNG: %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "anglectl.yaml")
	if err := os.WriteFile(cfgPath, []byte("unit: radians\nprecision: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "normalize", "--", "-1"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "5.28 rad") {
		t.Errorf("output %q should use radians with 2 decimals", out.String())
	}

	written := filepath.Join(dir, "in-use.yaml")
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--unit", "degrees", "config", "write", written})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "unit: degrees") || !strings.Contains(string(data), "precision: 2") {
		t.Errorf("written config %q should merge the file and the flags", data)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	expectOutput(t, []string{"config", "show"}, "unit: degrees", "close_to_threshold: 1", "size: 128")
}
