package dto

// DiscountResponse descuento advisor aplicado a un plan Business.
type DiscountResponse struct {
	OriginalPrice   int64 `json:"original_price"`
	DiscountedPrice int64 `json:"discounted_price"`
	DiscountPercent int   `json:"discount_percent"`
}

// PlanResponse un plan del catálogo, sin contexto de cuenta.
type PlanResponse struct {
	Name       string            `json:"name"`
	Track      string            `json:"track"` // business | advisor
	Tier       int               `json:"tier"`
	PriceLabel string            `json:"price_label"`
	PriceUnit  string            `json:"price_unit"` // business | seat
	ListPrice  int64             `json:"list_price,omitempty"`
	Blurb      string            `json:"blurb,omitempty"`
	Features   map[string]string `json:"features"` // capacidad -> none|partial|full
}

// PlanListResponse catálogo completo en orden de declaración.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
}

// PlanCardResponse tarjeta de un plan dentro de la vista de precios de una
// cuenta concreta.
type PlanCardResponse struct {
	PlanResponse
	IsCurrent     bool                 `json:"is_current"`
	IsRecommended bool                 `json:"is_recommended"`
	CTA           string               `json:"cta"` // current | upgrade | switch | hidden | purchase | manage
	CTALabel      string               `json:"cta_label,omitempty"`
	Discount      *DiscountResponse    `json:"discount,omitempty"`
	Seats         *SeatSummaryResponse `json:"seats,omitempty"`
}

// AccountViewResponse resultado de resolveAccountView para una cuenta.
// Selected=false indica que no había cuenta con ese nombre y se devolvió la
// vista por defecto (tier Free base): la selección la maneja el usuario y es
// transitoria, así que no es un error.
type AccountViewResponse struct {
	Company             string             `json:"company"`
	Selected            bool               `json:"selected"`
	CurrentPlan         string             `json:"current_plan"`
	AdvisorTier         string             `json:"advisor_tier"`
	Scenario            string             `json:"scenario"`
	ScenarioDescription string             `json:"scenario_description"`
	Cards               []PlanCardResponse `json:"cards"`
}

// ScenarioReportResponse fila del reporte de diagnóstico de escenarios.
type ScenarioReportResponse struct {
	CompanyID   string `json:"company_id"`
	Company     string `json:"company"`
	Plan        string `json:"plan"`
	AdvisorTier string `json:"advisor_tier"`
	Linked      bool   `json:"linked"`
	Scenario    string `json:"scenario"`
	Description string `json:"description"`
}
