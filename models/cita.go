package models

// SinCategoria is the placeholder meaning "no category chosen yet".
const SinCategoria = "-"

// Cita represents a quote row of the "Citas" table. The surrogate id is never read.
type Cita struct {
	Texto     string `json:"cita" db:"cita" validate:"required,max=2000"`
	Categoria string `json:"categoria" db:"categoria" validate:"required,ne=-,max=100"`
}

// Categorias returns the distinct categories in first-seen order.
func Categorias(citas []Cita) []string {
	vistas := make(map[string]struct{}, len(citas))
	categorias := []string{}
	for _, c := range citas {
		if _, ok := vistas[c.Categoria]; ok {
			continue
		}
		vistas[c.Categoria] = struct{}{}
		categorias = append(categorias, c.Categoria)
	}
	return categorias
}

// FiltrarPorCategoria keeps only the quotes of the given category, preserving order.
func FiltrarPorCategoria(citas []Cita, categoria string) []Cita {
	filtradas := []Cita{}
	for _, c := range citas {
		if c.Categoria == categoria {
			filtradas = append(filtradas, c)
		}
	}
	return filtradas
}
