package cli

import "testing"

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := Run([]string{"frobnicate"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestRunRejectsNoCommand(t *testing.T) {
	if err := Run(nil); err == nil {
		t.Fatalf("expected error when no command is given")
	}
}

func TestRunVersionSucceeds(t *testing.T) {
	if err := Run([]string{"version"}); err != nil {
		t.Fatalf("Run(version): %v", err)
	}
}

func TestRunBlendRejectsMissingArgs(t *testing.T) {
	if err := Run([]string{"blend", "only-one-arg"}); err == nil {
		t.Fatalf("expected error for missing outdir argument")
	}
}

func TestRunBlendRejectsMissingManifest(t *testing.T) {
	if err := Run([]string{"blend", "does-not-exist.json", t.TempDir()}); err == nil {
		t.Fatalf("expected error for missing manifest file")
	}
}
