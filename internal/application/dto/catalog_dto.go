package dto

import "github.com/shopspring/decimal"

// CreateBookRequest alta de libro en el catálogo.
type CreateBookRequest struct {
	Title   string          `json:"title"`
	Caution decimal.Decimal `json:"caution"`
	Status  string          `json:"status"`
}

// BookResponse libro con su rango denso actual.
type BookResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Caution   decimal.Decimal `json:"caution"`
	Status    string          `json:"status"`
	ItemOrder int             `json:"item_order"`
}

// CreateCommitteeEntryRequest alta de ficha en la página del comité.
type CreateCommitteeEntryRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Name     string `json:"name"`
	ImageID  string `json:"image_id"`
}

// CommitteeEntryResponse ficha con su rango denso actual.
type CommitteeEntryResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Name      string `json:"name"`
	ImageID   string `json:"image_id"`
	ItemOrder int    `json:"item_order"`
}
