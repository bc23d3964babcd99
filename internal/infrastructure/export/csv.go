package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tu-usuario/portal-socios/internal/application/ports"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
)

var _ ports.SubscriberCSVEncoder = (*CSVEncoder)(nil)

// CSVEncoder serializa inscritos a CSV con separador punto y coma en
// Windows-1252: el formato que las hojas de cálculo legadas del comité abren
// sin estropear los acentos.
type CSVEncoder struct{}

// NewCSVEncoder construye el encoder.
func NewCSVEncoder() *CSVEncoder { return &CSVEncoder{} }

// Encode devuelve los bytes del CSV codificados en Windows-1252.
func (e *CSVEncoder) Encode(subscribers []entity.Subscriber) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(transform.NewWriter(&buf, charmap.Windows1252.NewEncoder()))
	w.Comma = ';'

	if err := w.Write([]string{"id", "nombre", "email"}); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, s := range subscribers {
		if err := w.Write([]string{s.UserID, s.Name, s.Email}); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
