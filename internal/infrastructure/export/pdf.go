// Package export implementa los exports del portal: hoja de asistencia PDF,
// CSV de inscritos para hojas de cálculo legadas y feed Atom de eventos.
package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/portal-socios/internal/application/ports"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.AttendancePDFGenerator = (*MarotoAttendanceGenerator)(nil)

// MarotoAttendanceGenerator genera la hoja de asistencia de un evento con
// Maroto v2: título, fecha y una fila por inscrito con casilla de firma.
type MarotoAttendanceGenerator struct{}

// NewMarotoAttendanceGenerator construye el generador.
func NewMarotoAttendanceGenerator() *MarotoAttendanceGenerator { return &MarotoAttendanceGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoAttendanceGenerator) Generate(event *entity.Event, subscribers []entity.Subscriber) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de asistencia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(event))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for i, s := range subscribers {
		m.AddRows(subscriberRow(i+1, s))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(event *entity.Event) core.Row {
	date := ""
	if event.Date != nil {
		date = event.Date.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(event.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(event.Category, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(date, props.Text{Size: 10, Top: 4, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("#", header)),
		col.New(4).Add(text.New("Nombre", header)),
		col.New(4).Add(text.New("Email", header)),
		col.New(3).Add(text.New("Firma", header)),
	)
}

func subscriberRow(n int, s entity.Subscriber) core.Row {
	cell := props.Text{Size: 9, Top: 2}
	return row.New(9).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", n), cell)),
		col.New(4).Add(text.New(s.Name, cell)),
		col.New(4).Add(text.New(s.Email, cell)),
		col.New(3).Add(text.New("", cell)),
	)
}
