package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "nivel %q", in)
	}
}

func TestNew_AplicaNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNewNop_NoEmite(t *testing.T) {
	l := NewNop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
	l.Info().Msg("descartado")
}

func TestNew_CampoService(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info", Service: "irelec-api"})
	l.Info().Str("invoice_number", "FACT-20240315-0001").Msg("factura registrada")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "irelec-api", ev["service"])
	assert.Equal(t, "FACT-20240315-0001", ev["invoice_number"])

	buf.Reset()
	newWithWriter(&buf, Config{Level: "info"}).Info().Msg("sin servicio")
	assert.NotContains(t, buf.String(), `"service"`)
}
