package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach_Levels(t *testing.T) {
	var buf bytes.Buffer

	Attach(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Str("op", "CreateAgendaItem").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "op=CreateAgendaItem")

	buf.Reset()
	Attach(&buf, true)
	log.Debug().Msg("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestSetup_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "agendactl.log")

	closer, err := Setup(path, false)
	require.NoError(t, err)
	log.Info().Msg("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
