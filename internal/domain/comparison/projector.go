// Package comparison: proyección de la matriz capacidades × selección de
// planes. La selección es propiedad del llamador (largo arbitrario, nombres
// repetidos permitidos); el motor nunca la muta en sitio — toda operación
// devuelve una selección nueva y cada proyección es función pura de sus
// entradas.
package comparison

import (
	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// Selection secuencia ordenada e inmutable de nombres de plan elegida por el
// llamador. Su largo es independiente del tamaño del catálogo.
type Selection []string

// Clone copia defensiva de la selección.
func (s Selection) Clone() Selection {
	return append(Selection(nil), s...)
}

// Column columna de la matriz: un plan de la selección con sus celdas en el
// orden de capacidades del catálogo.
type Column struct {
	PlanName string
	Cells    []entity.GrantLevel
}

// Grid matriz capacidades (filas, orden del catálogo) × selección (columnas,
// orden del llamador). Dos columnas con el mismo plan son independientes e
// idénticas.
type Grid struct {
	Capabilities []string
	Columns      []Column
}

// BuildGrid proyecta la matriz para la selección dada.
// domain.ErrUnknownPlan si alguna entrada de la selección no está en el
// catálogo (se propaga, nunca se rellena con un plan por defecto).
func BuildGrid(cat *catalog.Catalog, sel Selection) (Grid, error) {
	caps := cat.Capabilities()
	grid := Grid{
		Capabilities: caps,
		Columns:      make([]Column, 0, len(sel)),
	}
	for _, name := range sel {
		plan, err := cat.GetPlan(name)
		if err != nil {
			return Grid{}, err
		}
		cells := make([]entity.GrantLevel, len(caps))
		for i, capability := range caps {
			cells[i] = plan.GrantFor(capability)
		}
		grid.Columns = append(grid.Columns, Column{PlanName: plan.Name, Cells: cells})
	}
	return grid, nil
}

// ReplaceColumn devuelve una selección idéntica a la de entrada salvo en
// index, que pasa a newPlanName. Nunca muta la selección recibida.
// domain.ErrUnknownPlan si newPlanName no está en el catálogo;
// domain.ErrInvalidInput si index está fuera de rango.
func ReplaceColumn(cat *catalog.Catalog, sel Selection, index int, newPlanName string) (Selection, error) {
	if _, err := cat.GetPlan(newPlanName); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sel) {
		return nil, domain.ErrInvalidInput
	}
	out := sel.Clone()
	out[index] = newPlanName
	return out, nil
}
