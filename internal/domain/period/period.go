package period

import "time"

// DefaultSemester es la duración fija de un semestre de membresía.
// Es una constante de calendario configurable, no un cálculo sobre meses de
// largo variable: así stop siempre es función determinista de start.
const DefaultSemester = 182 * 24 * time.Hour

// Period representa un rango contiguo de membresía pagada. Ambos extremos
// pueden ser nil: un usuario sin período activo no tiene fechas guardadas.
type Period struct {
	Start *time.Time
	Stop  *time.Time
}

// IsZero informa si el período no tiene fechas.
func (p Period) IsZero() bool {
	return p.Start == nil && p.Stop == nil
}

// Engine calcula períodos de membresía. Depende solo de un reloj inyectable
// (los tests fijan now) y de la duración de semestre configurada.
type Engine struct {
	now      func() time.Time
	semester time.Duration
}

// NewEngine construye el motor. now o semester en cero activan los defaults
// (time.Now, DefaultSemester).
func NewEngine(now func() time.Time, semester time.Duration) *Engine {
	if now == nil {
		now = time.Now
	}
	if semester <= 0 {
		semester = DefaultSemester
	}
	return &Engine{now: now, semester: semester}
}

// Next calcula el período siguiente: start' = stop actual, o el instante de
// evaluación si no hay período activo (stop ausente o ya vencido);
// stop' = start' + un semestre.
func (e *Engine) Next(p Period) Period {
	start := e.now()
	if p.Stop != nil && p.Stop.After(start) {
		start = *p.Stop
	}
	stop := start.Add(e.semester)
	return Period{Start: &start, Stop: &stop}
}

// AddSemesters aplica Next n veces en secuencia. Debe ser observablemente
// equivalente a n llamadas discretas (cada incremento puede tener efectos
// propios en quien lo invoque), así que no hay forma cerrada. n <= 0 devuelve
// el período sin tocar.
func (e *Engine) AddSemesters(p Period, n int) Period {
	for i := 0; i < n; i++ {
		p = e.Next(p)
	}
	return p
}
