// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeTimbukFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUnionCmdPrintsTimbuk(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTimbukFile(t, dir, "a1.tim", "Ops a:0\n\nAutomaton A1\n\nStates q\n\nFinal States q\n\nTransitions\na -> q\n")
	f2 := writeTimbukFile(t, dir, "a2.tim", "Ops b:0\n\nAutomaton A2\n\nStates r\n\nFinal States r\n\nTransitions\nb -> r\n")

	alphabetWidth = 4
	bottomUp = false
	verbose = false

	cmd := newUnionCmd()
	out, err := runCmd(t, cmd, f1, f2)
	if err != nil {
		t.Fatalf("union: %v", err)
	}
	if !strings.Contains(out, "Automaton Union") {
		t.Fatalf("expected Timbuk output for the union, got %q", out)
	}
}

func TestInclCmdExitsCleanlyOnTrue(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTimbukFile(t, dir, "small.tim", "Ops a:0\n\nAutomaton Small\n\nStates p\n\nFinal States p\n\nTransitions\na -> p\n")
	f2 := writeTimbukFile(t, dir, "big.tim", "Ops a:0 b:0\n\nAutomaton Big\n\nStates r\n\nFinal States r\n\nTransitions\na -> r\nb -> r\n")

	alphabetWidth = 4
	bottomUp = false
	verbose = false

	cmd := newInclCmd()
	_, err := runCmd(t, cmd, f1, f2)
	if err != nil {
		t.Fatalf("incl: %v", err)
	}
}

func TestInclCmdReportsFailureAsError(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTimbukFile(t, dir, "big.tim", "Ops a:0 b:0\n\nAutomaton Big\n\nStates p\n\nFinal States p\n\nTransitions\na -> p\nb -> p\n")
	f2 := writeTimbukFile(t, dir, "small.tim", "Ops a:0\n\nAutomaton Small\n\nStates r\n\nFinal States r\n\nTransitions\na -> r\n")

	alphabetWidth = 4
	bottomUp = false
	verbose = false

	cmd := newInclCmd()
	_, err := runCmd(t, cmd, f1, f2)
	if err == nil || !strings.Contains(err.Error(), "inclusion does not hold") {
		t.Fatalf("expected errNotIncluded, got %v", err)
	}
}

func TestUnionCmdReportsParseError(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTimbukFile(t, dir, "bad.tim", "not a timbuk file")
	f2 := writeTimbukFile(t, dir, "a2.tim", "Ops b:0\n\nAutomaton A2\n\nStates r\n\nFinal States r\n\nTransitions\nb -> r\n")

	alphabetWidth = 4
	bottomUp = false
	verbose = false

	cmd := newUnionCmd()
	_, err := runCmd(t, cmd, f1, f2)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}
