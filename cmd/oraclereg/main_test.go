package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"bogus"}, &out, &errOut); code != 2 {
		t.Fatalf("exit code: got %d want 2", code)
	}
	if !strings.Contains(errOut.String(), "unknown command") {
		t.Fatalf("stderr: %q", errOut.String())
	}
}

func TestRunRegisterMem(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{
		"--store", "mem",
		"--identity", "0x00112233445566778899aabbccddeeff00112233",
		"--title", "acme-oracle",
		"--public-key", "12345",
	}
	if code := run(append([]string{"register"}, args...), &out, &errOut); code != 0 {
		t.Fatalf("exit code: got %d, stderr %q", code, errOut.String())
	}
	if !strings.Contains(out.String(), "acme-oracle") {
		t.Fatalf("stdout: %q", out.String())
	}
}

func TestRunRegisterMissingIdentity(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"register", "--title", "x"}, &out, &errOut); code != 1 {
		t.Fatalf("exit code: got %d", code)
	}
	if !strings.Contains(errOut.String(), "identity") {
		t.Fatalf("stderr: %q", errOut.String())
	}
}

func TestRunCurveInvalid(t *testing.T) {
	// Unregistered caller: the mem store is empty for each invocation.
	var out, errOut bytes.Buffer
	args := []string{
		"curve",
		"--identity", "0x00112233445566778899aabbccddeeff00112233",
		"--endpoint", "spot",
		"--curve", "1,5,10",
	}
	if code := run(args, &out, &errOut); code != 1 {
		t.Fatalf("exit code: got %d", code)
	}
	if !strings.Contains(errOut.String(), "NOT_REGISTERED") {
		t.Fatalf("stderr: %q", errOut.String())
	}
}

func TestRunListStores(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"providers", "--list-stores"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code: got %d, stderr %q", code, errOut.String())
	}
	for _, name := range []string{"mem", "redis", "grpc"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("backend %q missing from list: %q", name, out.String())
		}
	}
}
