package main

import (
	"bytes"
	"testing"
)

func TestRunBenchSmallDataset(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--samples", "100", "--sites", "10", "--seed", "7"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Len() == 0 {
		t.Errorf("expected benchmark output, got none")
	}
}

func TestRunBenchRejectsBadFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--sites", "1"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() error = nil, want error for sites < 2")
	}
}
