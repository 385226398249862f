package usecase

import (
	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/comparison"
)

// ComparisonUseCase proyecta la matriz de comparación de planes para una
// selección del llamador y aplica reemplazos de columna copy-on-write.
type ComparisonUseCase struct {
	cat *catalog.Catalog
}

// NewComparisonUseCase construye el caso de uso sobre el catálogo.
func NewComparisonUseCase(cat *catalog.Catalog) *ComparisonUseCase {
	return &ComparisonUseCase{cat: cat}
}

// BuildGrid proyecta la matriz capacidades × selección.
// Propaga domain.ErrUnknownPlan si la selección referencia un plan inexistente.
func (uc *ComparisonUseCase) BuildGrid(selection []string) (*dto.ComparisonGridResponse, error) {
	grid, err := comparison.BuildGrid(uc.cat, comparison.Selection(selection))
	if err != nil {
		return nil, err
	}
	out := gridToResponse(grid)
	return &out, nil
}

// ReplaceColumn devuelve la selección con la columna index reemplazada por
// plan, junto con su matriz ya proyectada. Nunca muta la selección recibida.
func (uc *ComparisonUseCase) ReplaceColumn(selection []string, index int, plan string) (*dto.ComparisonSelectionResponse, error) {
	next, err := comparison.ReplaceColumn(uc.cat, comparison.Selection(selection), index, plan)
	if err != nil {
		return nil, err
	}
	grid, err := comparison.BuildGrid(uc.cat, next)
	if err != nil {
		return nil, err
	}
	return &dto.ComparisonSelectionResponse{
		Selection: []string(next),
		Grid:      gridToResponse(grid),
	}, nil
}

// gridToResponse transpone la proyección (columnas con celdas) a la forma de
// respuesta (filas por capacidad), que es como la pinta la tabla comparativa.
func gridToResponse(g comparison.Grid) dto.ComparisonGridResponse {
	columns := make([]string, 0, len(g.Columns))
	for _, col := range g.Columns {
		columns = append(columns, col.PlanName)
	}
	rows := make([]dto.GridRowResponse, 0, len(g.Capabilities))
	for i, capability := range g.Capabilities {
		cells := make([]string, 0, len(g.Columns))
		for _, col := range g.Columns {
			cells = append(cells, string(col.Cells[i]))
		}
		rows = append(rows, dto.GridRowResponse{Capability: capability, Cells: cells})
	}
	return dto.ComparisonGridResponse{Columns: columns, Rows: rows}
}
