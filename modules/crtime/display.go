package crtime

import (
	"time"
)

// Display format preferences, mirroring the date-format choices of file
// manager hosts. Anything else is treated as a Go time layout.
const (
	FormatLocale = "locale"
	FormatISO    = "iso"
)

const isoLayout = "2006-01-02 15:04:05"

// FormatInstant renders a creation instant per the caller's format
// preference. Instants are rendered in UTC; the core carries no timezone
// information.
func FormatInstant(t time.Time, format string) string {
	if format == "" {
		format = defaultFormat()
	}

	switch format {
	case FormatLocale:
		return t.UTC().Format(time.ANSIC)
	case FormatISO:
		return t.UTC().Format(isoLayout)
	default:
		return t.UTC().Format(format)
	}
}

// DisplayAttribute produces the formatted creation-time attribute for an
// embedding caller, e.g. a file manager column. Extraction failures and
// unsupported filesystems both yield ok=false: the embedder logs nothing
// extra and simply omits the attribute. Only the typed errors the core
// defines are handled here; anything else would be a programming error and
// is allowed to propagate.
func DisplayAttribute(path string, format string) (string, bool) {
	fs, res, errx := Get(path)
	if errx != nil {
		logger.Warn("No creation time attribute for %s (%s): %v", path, fs, errx)
		return "", false
	}
	if res.Unsupported {
		logger.Debug("No creation time strategy for %s (%s)", path, fs)
		return "", false
	}

	return FormatInstant(res.Time, format), true
}
