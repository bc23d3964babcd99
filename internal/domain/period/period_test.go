package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/portal-socios/internal/domain/period"
)

// ──────────────────────────────────────────────────────────────────────────────
// El motor de períodos solo depende del reloj inyectado y de la duración de
// semestre. Los tests fijan ambos para obtener aritmética determinista.
// ──────────────────────────────────────────────────────────────────────────────

var ahora = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func motorFijo() *period.Engine {
	return period.NewEngine(func() time.Time { return ahora }, 0)
}

func fecha(t time.Time) *time.Time { return &t }

func TestNext_SinPeriodoActivo(t *testing.T) {
	e := motorFijo()

	p := e.Next(period.Period{})

	require.NotNil(t, p.Start)
	require.NotNil(t, p.Stop)
	assert.Equal(t, ahora, *p.Start, "sin período previo el start es el instante de evaluación")
	assert.Equal(t, ahora.Add(period.DefaultSemester), *p.Stop)
}

func TestNext_PeriodoVencido(t *testing.T) {
	e := motorFijo()
	vencido := period.Period{
		Start: fecha(ahora.Add(-400 * 24 * time.Hour)),
		Stop:  fecha(ahora.Add(-30 * 24 * time.Hour)),
	}

	p := e.Next(vencido)

	assert.Equal(t, ahora, *p.Start, "un período vencido no extiende: se arranca desde hoy")
	assert.Equal(t, ahora.Add(period.DefaultSemester), *p.Stop)
}

func TestNext_PeriodoActivoExtiende(t *testing.T) {
	e := motorFijo()
	stopActual := ahora.Add(40 * 24 * time.Hour)
	activo := period.Period{
		Start: fecha(ahora.Add(-100 * 24 * time.Hour)),
		Stop:  fecha(stopActual),
	}

	p := e.Next(activo)

	assert.Equal(t, stopActual, *p.Start, "un período activo se extiende desde su stop, sin perder días pagados")
	assert.Equal(t, stopActual.Add(period.DefaultSemester), *p.Stop)
}

// TestNext_StopExactamenteAhora fija el borde: un stop igual al instante de
// evaluación cuenta como vencido (After es estricto).
func TestNext_StopExactamenteAhora(t *testing.T) {
	e := motorFijo()

	p := e.Next(period.Period{Stop: fecha(ahora)})

	assert.Equal(t, ahora, *p.Start)
}

// ── AddSemesters ──────────────────────────────────────────────────────────────

// TestAddSemesters_EquivaleANLlamadas verifica que aplicar n semestres de una
// vez produce el mismo resultado que n incrementos discretos.
func TestAddSemesters_EquivaleANLlamadas(t *testing.T) {
	e := motorFijo()
	inicial := period.Period{}

	deUnaVez := e.AddSemesters(inicial, 3)

	paso := inicial
	for i := 0; i < 3; i++ {
		paso = e.Next(paso)
	}

	assert.Equal(t, *paso.Start, *deUnaVez.Start)
	assert.Equal(t, *paso.Stop, *deUnaVez.Stop)
	assert.Equal(t, ahora.Add(3*period.DefaultSemester), *deUnaVez.Stop,
		"tres semestres encadenados son contiguos desde hoy")
}

func TestAddSemesters_CeroONegativoNoToca(t *testing.T) {
	e := motorFijo()
	original := period.Period{Start: fecha(ahora), Stop: fecha(ahora.Add(24 * time.Hour))}

	assert.Equal(t, original, e.AddSemesters(original, 0))
	assert.Equal(t, original, e.AddSemesters(original, -2))
}

func TestNewEngine_SemestrePersonalizado(t *testing.T) {
	corto := 30 * 24 * time.Hour
	e := period.NewEngine(func() time.Time { return ahora }, corto)

	p := e.Next(period.Period{})

	assert.Equal(t, ahora.Add(corto), *p.Stop)
}
