package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "memcheck version") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestUsageErrorExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--words", "-1"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected a parse error on stderr")
	}
}

func TestHelpExitsZero(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"-h"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage of memcheck") {
		t.Fatalf("usage text missing: %q", out.String())
	}
}

func TestCleanRunPasses(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--words", "1024", "-w", "4", "-n", "2"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "pass") {
		t.Fatalf("report does not say pass: %q", out.String())
	}
}

func TestUnevenWordsWarnsAndTrims(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--words", "1023", "-w", "4"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "trimming window") {
		t.Fatalf("expected a trim warning, stderr %q", errBuf.String())
	}
	if !strings.Contains(out.String(), "\t1020\t") {
		t.Fatalf("report should carry the trimmed word count, got %q", out.String())
	}
}

func TestQuietSuppressesWarnings(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--words", "1023", "-w", "4", "-q"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if errBuf.Len() != 0 {
		t.Fatalf("quiet run wrote to stderr: %q", errBuf.String())
	}
}

func TestBitSerialEngineSelected(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--words", "64", "-w", "2", "--bit-serial"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "bit-serial") {
		t.Fatalf("engine column should say bit-serial: %q", out.String())
	}
}

func TestWindowTooSmallForWorkers(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--words", "2", "-w", "8"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
