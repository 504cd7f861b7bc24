package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var citasDePrueba = []Cita{
	{Texto: "La vida es sueño", Categoria: "filosofia"},
	{Texto: "Vísteme despacio que tengo prisa", Categoria: "refranes"},
	{Texto: "Pienso, luego existo", Categoria: "filosofia"},
	{Texto: "El que madruga, Dios lo ayuda", Categoria: "refranes"},
	{Texto: "Hasta el infinito", Categoria: "cine"},
}

func TestCategorias_FirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"filosofia", "refranes", "cine"}, Categorias(citasDePrueba))
}

func TestCategorias_Empty(t *testing.T) {
	got := Categorias(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFiltrarPorCategoria(t *testing.T) {
	got := FiltrarPorCategoria(citasDePrueba, "filosofia")
	assert.Equal(t, []Cita{
		{Texto: "La vida es sueño", Categoria: "filosofia"},
		{Texto: "Pienso, luego existo", Categoria: "filosofia"},
	}, got)

	assert.Empty(t, FiltrarPorCategoria(citasDePrueba, "poesia"))
}
