package color_test

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"whitespace/pkg/color"
)

func TestDisabled(t *testing.T) {
	color.SetProfile(termenv.Ascii)

	if color.IsColorEnabled() {
		t.Fatalf("color enabled with the ascii profile")
	}
	if got := color.GreenText("ok"); got != "ok" {
		t.Errorf("GreenText() = %q, expected plain text", got)
	}
}

func TestEnabled(t *testing.T) {
	color.SetProfile(termenv.ANSI256)
	defer color.SetProfile(termenv.Ascii)

	got := color.CyanText("12")
	if got == "12" || !strings.Contains(got, "12") {
		t.Errorf("CyanText() = %q, expected escaped text", got)
	}
	if !strings.HasPrefix(got, "\x1b[") {
		t.Errorf("CyanText() = %q, expected an escape sequence", got)
	}

	color.EnableColor(false)
	if got := color.CyanText("12"); got != "12" {
		t.Errorf("CyanText() = %q after EnableColor(false)", got)
	}
}
