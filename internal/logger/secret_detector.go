package logger

import (
	"regexp"
	"strings"
)

const (
	passwordPattern    = `(?i)(password|passwd|pwd)([\'\"\s:=]+)([a-z0-9!\"#\$%&\\\'\(\)\*\+\,-\./:;<=>\?\@\[\]\^_\{\|\}~]{6,})`
	dsnPasswordPattern = `([^/:\s]+):([^@/:\s]{3,})@` // user:password@host
	tokenPattern       = `(?i)(token|secret)([\'\"\s:=]+)([a-z0-9=/_\-\+]{8,})`
	connStrPattern     = `(?i)(password|pwd)=([^;&\s]+)`
)

var (
	passwordRegexp    = regexp.MustCompile(passwordPattern)
	dsnPasswordRegexp = regexp.MustCompile(dsnPasswordPattern)
	tokenRegexp       = regexp.MustCompile(tokenPattern)
	connStrRegexp     = regexp.MustCompile(connStrPattern)
)

type secretmasker string

func (s secretmasker) maskConnectionString() secretmasker {
	return secretmasker(connStrRegexp.ReplaceAllString(s.String(), "$1=****"))
}

func (s secretmasker) maskPassword() secretmasker {
	return secretmasker(passwordRegexp.ReplaceAllStringFunc(s.String(), func(m string) string {
		sub := passwordRegexp.FindStringSubmatch(m)
		if strings.HasPrefix(sub[3], "****") {
			return m
		}
		return sub[1] + sub[2] + "****"
	}))
}

func (s secretmasker) maskDsnPassword() secretmasker {
	return secretmasker(dsnPasswordRegexp.ReplaceAllString(s.String(), "$1:****@"))
}

func (s secretmasker) maskToken() secretmasker {
	return secretmasker(tokenRegexp.ReplaceAllString(s.String(), "$1${2}****"))
}

func (s secretmasker) String() string {
	return string(s)
}

// MaskSecrets masks passwords and tokens in text.
func MaskSecrets(text string) string {
	return secretmasker(text).
		maskConnectionString().
		maskPassword().
		maskDsnPassword().
		maskToken().
		String()
}
