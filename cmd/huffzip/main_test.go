package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := []byte("hello\x00world\nhello\x00huffman\n")
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	if code := run([]string{"-v", "-c", path}, &stderr); code != exitOK {
		t.Fatalf("compress exited %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "[INFO]") {
		t.Errorf("expected verbose log line, got %q", stderr.String())
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	stderr.Reset()
	if code := run([]string{"--decompress", path + compressedSuffix}, &stderr); code != exitOK {
		t.Fatalf("decompress exited %d: %s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no output without -v, got %q", stderr.String())
	}

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(original, actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", original, actual)
	}
}

func TestRun_Output(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("aaaabbbcc"), 0o644); err != nil {
		t.Fatal(err)
	}

	packed := filepath.Join(dir, "packed")
	unpacked := filepath.Join(dir, "unpacked")

	var stderr bytes.Buffer
	if code := run([]string{"-c", path, "-o", packed}, &stderr); code != exitOK {
		t.Fatalf("compress exited %d: %s", code, stderr.String())
	}
	if code := run([]string{"-d", packed}, &stderr); code != exitUsage {
		t.Errorf("decompress without suffix or -o: expected exit %d, got %d", exitUsage, code)
	}
	if code := run([]string{"-d", packed, "-o", unpacked}, &stderr); code != exitOK {
		t.Fatalf("decompress exited %d: %s", code, stderr.String())
	}

	actual, err := os.ReadFile(unpacked)
	if err != nil {
		t.Fatal(err)
	}
	if string(actual) != "aaaabbbcc" {
		t.Errorf("wrong output: %q", actual)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	wide := filepath.Join(dir, "wide.bin")
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if err := os.WriteFile(wide, all, 0o644); err != nil {
		t.Fatal(err)
	}

	garbage := filepath.Join(dir, "garbage.cmp")
	if err := os.WriteFile(garbage, []byte("definitely not a container"), 0o644); err != nil {
		t.Fatal(err)
	}

	type testRow struct {
		name   string
		args   []string
		code   int
		stderr string
	}

	testData := [...]testRow{
		{name: "help", args: []string{"--help"}, code: exitOK, stderr: "usage: huffzip"},
		{name: "no-action", args: nil, code: exitUsage, stderr: "exactly one of -c or -d"},
		{name: "both", args: []string{"-c", "a", "-d", "b.cmp"}, code: exitUsage, stderr: "exactly one of -c or -d"},
		{name: "bad-flag", args: []string{"-x"}, code: exitUsage, stderr: "flag provided but not defined"},
		{name: "missing", args: []string{"-c", filepath.Join(dir, "missing")}, code: exitError, stderr: "error reading file"},
		{name: "capacity", args: []string{"-c", wide}, code: exitError, stderr: "too many distinct symbols"},
		{name: "malformed", args: []string{"-d", garbage}, code: exitError, stderr: "malformed container"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(row.args, &stderr); code != row.code {
				t.Errorf("expected exit %d, got %d: %s", row.code, code, stderr.String())
			}
			if !strings.Contains(stderr.String(), row.stderr) {
				t.Errorf("expected stderr to contain %q, got %q", row.stderr, stderr.String())
			}
		})
	}

	if _, err := os.Stat(wide + compressedSuffix); !os.IsNotExist(err) {
		t.Errorf("expected no output for failed compression, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "garbage")); !os.IsNotExist(err) {
		t.Errorf("expected no output for failed decompression, got %v", err)
	}
}
