package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/logging"
)

// RedactHeaders renders headers as log attributes sorted by name. Values of
// credential-bearing headers are replaced; multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = logging.RedactedValue
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
