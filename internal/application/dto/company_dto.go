package dto

// SeatSummaryResponse asientos advisor activos/inactivos.
type SeatSummaryResponse struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// CompanyResponse salida de una cuenta del directorio.
type CompanyResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	BusinessPlan    string               `json:"business_plan"`
	Seats           int                  `json:"seats"`
	AdvisorTier     string               `json:"advisor_tier"` // none | basic | premium
	Licenses        *SeatSummaryResponse `json:"licenses,omitempty"`
	LinkedCompanyID string               `json:"linked_company_id,omitempty"`
}

// CompanyRefResponse referencia mínima a otra cuenta (destino de un vínculo).
type CompanyRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LinkedCompanyResponse cuenta vinculada junto con su destino resuelto.
// LinkedTo es nil si la referencia está colgante (error de integridad del
// proveedor del directorio, se expone tal cual para diagnóstico).
type LinkedCompanyResponse struct {
	CompanyResponse
	LinkedTo *CompanyRefResponse `json:"linked_to,omitempty"`
}

// CompanyListResponse directorio agrupado como lo pinta el selector de la
// página: primero las cuentas independientes, luego las vinculadas.
type CompanyListResponse struct {
	Standalone []CompanyResponse       `json:"standalone"`
	Linked     []LinkedCompanyResponse `json:"linked"`
}
