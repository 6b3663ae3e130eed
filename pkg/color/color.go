package color

import (
	"github.com/muesli/termenv"
)

var (
	Green  = termenv.ANSIGreen
	Yellow = termenv.ANSIYellow
	Blue   = termenv.ANSIBlue
	Cyan   = termenv.ANSICyan
	Gray   = termenv.ANSIBrightBlack
)

// profile honours NO_COLOR, CLICOLOR_FORCE and whether stdout is a terminal
var profile = termenv.EnvColorProfile()

var colorEnabled = profile != termenv.Ascii

// SetProfile overrides the detected color profile
func SetProfile(p termenv.Profile) {
	profile = p
	colorEnabled = p != termenv.Ascii
}

func EnableColor(enable bool) {
	colorEnabled = enable
	if enable && profile == termenv.Ascii {
		profile = termenv.ANSI
	}
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color termenv.Color, text string) string {
	if !colorEnabled {
		return text
	}
	return profile.String(text).Foreground(profile.Convert(color)).String()
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}
