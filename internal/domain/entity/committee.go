package entity

// CommitteeEntry es una ficha de la página del comité. El rango denso
// ItemOrder se mantiene por categoría: cada categoría es una partición
// independiente con valores {0..n-1}.
type CommitteeEntry struct {
	ID        string
	Category  string
	Title     string
	Name      string
	ImageID   string
	ItemOrder int
}

// MembershipCode es un código de un solo uso que otorga semestres de
// membresía. Se borra al canjearse: un segundo canje del mismo token no
// encuentra el registro.
type MembershipCode struct {
	Token   string
	Periods int
}
