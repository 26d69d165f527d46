package version

import (
	"strings"
	"testing"
)

func TestGetDefaultsToDev(t *testing.T) {
	info := Get()
	if info.BuildDate != "dev" || info.Commit != "dev" || info.Branch != "dev" {
		t.Errorf("expected dev placeholders, got %+v", info)
	}
}

func TestStringContainsServerName(t *testing.T) {
	if !strings.Contains(String(), "pirate-server") {
		t.Errorf("unexpected version string: %s", String())
	}
}
