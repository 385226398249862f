package dto

// ComparisonGridRequest selección de planes a comparar (columnas, en orden
// del llamador; nombres repetidos permitidos).
type ComparisonGridRequest struct {
	Selection []string `json:"selection" validate:"required,min=1"`
}

// ReplaceColumnRequest reemplazo de una columna de la selección.
type ReplaceColumnRequest struct {
	Selection []string `json:"selection" validate:"required,min=1"`
	Index     int      `json:"index" validate:"min=0"`
	Plan      string   `json:"plan" validate:"required"`
}

// GridRowResponse fila de la matriz: una capacidad con una celda por columna.
type GridRowResponse struct {
	Capability string   `json:"capability"`
	Cells      []string `json:"cells"` // none | partial | full
}

// ComparisonGridResponse matriz capacidades × selección.
type ComparisonGridResponse struct {
	Columns []string          `json:"columns"`
	Rows    []GridRowResponse `json:"rows"`
}

// ComparisonSelectionResponse selección resultante de un reemplazo, con su
// matriz ya proyectada.
type ComparisonSelectionResponse struct {
	Selection []string               `json:"selection"`
	Grid      ComparisonGridResponse `json:"grid"`
}
