package entity

import "github.com/shopspring/decimal"

// Book es una entrada del catálogo de préstamo. ItemOrder es el rango denso
// mantenido por el resequenciador: dentro del catálogo los valores son
// exactamente {0..n-1}.
type Book struct {
	ID        string
	Title     string
	Caution   decimal.Decimal // depósito exigido al prestar
	Status    string          // available, lent, lost
	ItemOrder int
}
