package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/infrastructure/export"
)

// ── CSV Windows-1252 ──────────────────────────────────────────────────────────

func TestCSVEncoder_SeparadorYCabecera(t *testing.T) {
	enc := export.NewCSVEncoder()

	out, err := enc.Encode([]entity.Subscriber{
		{UserID: "u1", Name: "Ana", Email: "ana@asociacion.test"},
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id;nombre;email", strings.TrimSpace(lines[0]))
	assert.Equal(t, "u1;Ana;ana@asociacion.test", strings.TrimSpace(lines[1]))
}

// TestCSVEncoder_AcentosEnWindows1252 verifica que los caracteres no ASCII
// salen en la codificación legada, no en UTF-8: "é" es el byte 0xE9.
func TestCSVEncoder_AcentosEnWindows1252(t *testing.T) {
	enc := export.NewCSVEncoder()

	out, err := enc.Encode([]entity.Subscriber{
		{UserID: "u1", Name: "José", Email: "jose@asociacion.test"},
	})

	require.NoError(t, err)
	assert.Contains(t, string(out), "Jos\xe9", "la é debe ser el byte 0xE9 de Windows-1252")
	assert.NotContains(t, string(out), "Jos\xc3\xa9", "no debe quedar UTF-8 en la salida")
}

func TestCSVEncoder_SinInscritos(t *testing.T) {
	enc := export.NewCSVEncoder()

	out, err := enc.Encode(nil)

	require.NoError(t, err)
	assert.Equal(t, "id;nombre;email", strings.TrimSpace(string(out)),
		"sin inscritos el CSV solo lleva la cabecera")
}

// ── Feed Atom ─────────────────────────────────────────────────────────────────

func TestAtomFeedBuilder_EstructuraBasica(t *testing.T) {
	b := export.NewAtomFeedBuilder()
	fecha := time.Date(2025, 9, 15, 18, 0, 0, 0, time.UTC)

	out, err := b.Build("https://portal.asociacion.test", []*entity.Event{
		{ID: "e1", Title: "Asamblea general", Description: "Orden del día", Date: &fecha},
		{ID: "e2", Title: "Torneo"},
	})

	require.NoError(t, err)
	xml := string(out)
	assert.Contains(t, xml, `<feed xmlns="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, xml, "<title>Próximos eventos</title>")
	assert.Contains(t, xml, "https://portal.asociacion.test/events/e1")
	assert.Contains(t, xml, "<title>Asamblea general</title>")
	assert.Contains(t, xml, "<summary>Orden del día</summary>")
	assert.Contains(t, xml, "2025-09-15T18:00:00Z")
	assert.Contains(t, xml, "<title>Torneo</title>")
}

func TestAtomFeedBuilder_SinEventos(t *testing.T) {
	b := export.NewAtomFeedBuilder()

	out, err := b.Build("https://portal.asociacion.test", nil)

	require.NoError(t, err)
	assert.Contains(t, string(out), "<feed")
	assert.NotContains(t, string(out), "<entry>")
}
