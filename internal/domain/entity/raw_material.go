package entity

// RawMaterial materia prima de referencia. Inmutable salvo el borrado lógico.
type RawMaterial struct {
	ID        int64
	Name      string
	Category  string
	Metric    string // unidad canónica del material (kg, liter, unidad propia)
	IsDeleted bool
}
