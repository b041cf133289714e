package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// redactedFields are attribute keys whose values never reach a log sink.
// The quote API has no auth of its own, but proxies in front of it may
// forward these headers and they can end up in request logs.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"apiKey", "apikey", "api_key",
	"accessToken", "access_token",
	"refreshToken", "refresh_token",
	"credential", "credentials",
	"authorization", "auth", "bearer",
	"cookie", "set-cookie", "session",
	"privateKey", "private_key",
	"secretKey", "secret_key",
}

var redactedPrefixes = []string{"secret", "private"}

// Value patterns redacted whatever the attribute is called.
var redactedValues = []*regexp.Regexp{
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`), // JWT
	regexp.MustCompile(`(?i)^bearer\s+.+$`),
	regexp.MustCompile(`(?i)^basic\s+.+$`),
}

// DefaultRedactOptions returns the masq options every handler built by New
// applies.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+len(redactedPrefixes)+len(redactedValues))

	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}

	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return opts
}

// NewReplaceAttr returns a slog ReplaceAttr that applies the default
// redaction plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
