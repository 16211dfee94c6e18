package gotds

import "testing"

func TestValidate(t *testing.T) {
	testcases := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"no server", Config{Username: "u"}, ErrEmptyServer},
		{"blank server", Config{Servername: "  ", Username: "u"}, ErrEmptyServer},
		{"hostname without port", Config{Hostname: "db1", Username: "u"}, ErrEmptyPort},
		{"bad port", Config{Hostname: "db1", Port: 70000, Username: "u"}, &Error{Number: ErrCodeFailedToParsePort}},
		{"no username", Config{Servername: "SALES"}, ErrEmptyUsername},
		{"bad charset", Config{Servername: "SALES", Username: "u", Charset: "klingon"}, &Error{Number: ErrCodeUnsupportedCharset}},
		{"servername", Config{Servername: "SALES", Username: "u"}, nil},
		{"hostname", Config{Hostname: "db1", Port: 1433, Username: "u"}, nil},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.err == nil {
				assertNilE(t, err)
				return
			}
			assertErrIsE(t, err, tc.err)
			assertTrueE(t, IsConfigError(err))
		})
	}
}

func TestFillMissingConfigParameters(t *testing.T) {
	cfg := &Config{Hostname: "db1", Username: "u", Charset: " "}
	assertNilF(t, fillMissingConfigParameters(cfg))
	assertEqualE(t, cfg.Port, DefaultPort)
	assertEqualE(t, cfg.Charset, DefaultCharset)
	assertEqualE(t, cfg.MaxColumnLength, DefaultMaxColumnLength)

	cfg = &Config{Servername: "SALES", Username: "u", MaxColumnLength: 10}
	assertNilF(t, fillMissingConfigParameters(cfg))
	assertEqualE(t, cfg.Port, 0)
	assertEqualE(t, cfg.MaxColumnLength, 10)
}

func TestParseConfigMap(t *testing.T) {
	cfg := &Config{}
	err := parseConfigMap(cfg, map[string]interface{}{
		"Host":            "db1",
		"port":            int64(2433),
		"user":            "u",
		"password":        "p",
		"database":        "sales",
		"appname":         "report",
		"credentialstore": "true",
		"ignoredcodes":    []interface{}{int64(8153), "3621"},
		"unknown":         42,
	})
	assertNilF(t, err)
	assertEqualE(t, cfg.Hostname, "db1")
	assertEqualE(t, cfg.Port, 2433)
	assertEqualE(t, cfg.Username, "u")
	assertEqualE(t, cfg.Password, "p")
	assertEqualE(t, cfg.Database, "sales")
	assertEqualE(t, cfg.AppName, "report")
	assertTrueE(t, cfg.CredentialStore)
	assertDeepEqualE(t, cfg.IgnoredCodes, []int32{8153, 3621})
}

func TestParseConfigMapErrors(t *testing.T) {
	testcases := map[string]interface{}{
		"username":         42,
		"maxcolumnlength":  "lots",
		"truncationpolicy": "drop",
		"credentialstore":  "maybe",
		"ignoredcodes":     3.5,
	}
	for key, value := range testcases {
		t.Run(key, func(t *testing.T) {
			err := parseConfigMap(&Config{}, map[string]interface{}{key: value})
			var driverErr *Error
			assertErrorsAsF(t, err, &driverErr)
			assertEqualE(t, driverErr.Number, ErrCodeInvalidOption)
		})
	}
}

func TestIgnoredCodesIncludeDefaults(t *testing.T) {
	cfg := &Config{IgnoredCodes: []int32{42}}
	assertDeepEqualE(t, cfg.ignoredCodes(), []int32{5701, 5703, 20018, 42})
}
