package logger

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	return NewLogger(&buf), &buf
}

func TestDebugEventsGatedByFlag(t *testing.T) {
	l, buf := newTestLogger(t)

	assert.Nil(t, l.Debug())
	l.Debug().Component("fmhurl").Metadata("k", "v").Msgf("hidden")
	assert.Empty(t, buf.String())

	l.EnableDebug()
	require.NotNil(t, l.Debug())
	l.Debug().Msgf("visible %d", 1)
	assert.Contains(t, buf.String(), "visible 1")
	assert.Contains(t, buf.String(), "TRACE")

	buf.Reset()
	l.DisableDebug()
	l.Debug().Msgf("hidden again")
	assert.Empty(t, buf.String())
}

func TestVerboseGatedByFlag(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Verbose().Msgf("quiet")
	assert.Empty(t, buf.String())

	l.EnableVerbose()
	l.Verbose().Msgf("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestMetadataKeepsInsertionOrder(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info().Component("revert").
		Metadata("zeta", "1").
		Metadata("alpha", "2").
		Metadata("mid", "3").
		Msgf("reverted")

	out := buf.String()
	assert.Contains(t, out, "[revert] reverted")
	z := strings.Index(out, "zeta=1")
	a := strings.Index(out, "alpha=2")
	m := strings.Index(out, "mid=3")
	require.True(t, z >= 0 && a >= 0 && m >= 0, out)
	assert.Less(t, z, a)
	assert.Less(t, a, m)
}

func TestSetOutputRedirects(t *testing.T) {
	l, first := newTestLogger(t)

	var second bytes.Buffer
	l.SetOutput(&second)
	l.Warning().Msgf("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestSafeWriterTerminatesLines(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSafeWriter(&buf)

	n, err := sw.Write([]byte("no newline"))
	require.NoError(t, err)
	assert.Equal(t, len("no newline"), n)

	_, err = sw.Write([]byte("has newline\n"))
	require.NoError(t, err)

	assert.Equal(t, "no newline\nhas newline\n", buf.String())
}

func TestSafeWriterConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSafeWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sw.Write([]byte("line"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, strings.Count(buf.String(), "line\n"))
}

func TestSetOutputWhileLogging(t *testing.T) {
	l, _ := newTestLogger(t)
	l.EnableDebug()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.SetOutput(io.Discard)
		}()
		go func(i int) {
			defer wg.Done()
			l.Info().Msgf("info %d", i)
			l.Debug().Metadata("i", "x").Msgf("trace %d", i)
		}(i)
	}
	wg.Wait()

	var last bytes.Buffer
	l.SetOutput(&last)
	l.Info().Msgf("after")
	assert.Contains(t, last.String(), "after")
}
