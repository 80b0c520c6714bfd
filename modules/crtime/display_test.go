package crtime

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstant(t *testing.T) {
	// 2020-01-01T00:00:00Z
	instant := time.Unix(1_577_836_800, 0)

	assert.Equal(t, "Wed Jan  1 00:00:00 2020", FormatInstant(instant, FormatLocale))
	assert.Equal(t, "2020-01-01 00:00:00", FormatInstant(instant, FormatISO))

	// Free-form Go layouts pass through
	assert.Equal(t, "2020-01-01", FormatInstant(instant, "2006-01-02"))
	assert.Equal(t, "01 Jan 20 00:00 UTC", FormatInstant(instant, time.RFC822))
}

func TestFormatInstantDefault(t *testing.T) {
	instant := time.Unix(1_577_836_800, 0)

	// An empty preference falls back to the configured default (locale)
	assert.Equal(t, FormatInstant(instant, FormatLocale), FormatInstant(instant, ""))
}

func TestFormatInstantUsesUTC(t *testing.T) {
	loc := time.FixedZone("TEST", 3*3600)
	instant := time.Unix(1_577_836_800, 0).In(loc)

	// The rendered value must not depend on the instant's location
	assert.Equal(t, "2020-01-01 00:00:00", FormatInstant(instant, FormatISO))
}

func TestDisplayAttributeOnLocalFilesystem(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "display.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	// On an ordinary CI filesystem the attribute is either present (the
	// rare case of a supported mount) or cleanly omitted; never a panic
	attr, ok := DisplayAttribute(testFile, FormatISO)
	if ok {
		assert.NotEmpty(t, attr)
	} else {
		assert.Empty(t, attr)
	}
}

func TestDisplayAttributeErrorsAreOmitted(t *testing.T) {
	// Classification failure on a nonexistent path is logged and swallowed,
	// the attribute is simply absent
	attr, ok := DisplayAttribute(filepath.Join(t.TempDir(), "gone"), FormatISO)
	assert.False(t, ok)
	assert.Empty(t, attr)
}
