package buildinfo

import (
	"strings"
	"testing"
)

func TestVersionStrings(t *testing.T) {
	if got := VersionStringShort(); !strings.HasPrefix(got, "v"+Version+" (") {
		t.Errorf("unexpected short version %q", got)
	}
	if got := UserAgent(); !strings.HasPrefix(got, AppName+"/"+Version) {
		t.Errorf("unexpected user agent %q", got)
	}
}
