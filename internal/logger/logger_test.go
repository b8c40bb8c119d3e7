// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", LogFormatJsonValue)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("node", "AA").Msg("visible")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["message"])
	assert.Equal(t, "AA", rec["node"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", LogFormatJsonValue)
	require.NoError(t, err)
	l.Debug().Msg("x")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, "caller")
	assert.Contains(t, rec, "pid")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", LogFormatTextValue)
	require.NoError(t, err)
	l.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "WRN")
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", LogFormatJsonValue)
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
