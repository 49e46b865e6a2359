package main

import "testing"

func TestVersionString(t *testing.T) {
	originalVersion, originalCommit := buildVersion, buildCommitID
	t.Cleanup(func() {
		buildVersion, buildCommitID = originalVersion, originalCommit
	})

	buildVersion = "1.2.3"
	buildCommitID = "abc123"

	if got := versionString(); got != "butler 1.2.3\ncommit_id abc123" {
		t.Fatalf("unexpected version string %q", got)
	}
}
