package usecase

import (
	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entitlement"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/repository"
)

// PricingUseCase arma la vista de precios de una cuenta: tarjetas por plan,
// flags de plan actual/recomendado, descuentos advisor y escenario de
// diagnóstico. Todo se recalcula en cada llamada (nada se cachea entre
// mutaciones del directorio).
type PricingUseCase struct {
	cat *catalog.Catalog
	dir repository.CompanyDirectory
	res *entitlement.Resolver
}

// NewPricingUseCase construye el caso de uso sobre el catálogo y el directorio.
func NewPricingUseCase(cat *catalog.Catalog, dir repository.CompanyDirectory) *PricingUseCase {
	return &PricingUseCase{cat: cat, dir: dir, res: entitlement.NewResolver(cat)}
}

// ListPlans devuelve el catálogo completo con sus etiquetas de precio.
func (uc *PricingUseCase) ListPlans() (*dto.PlanListResponse, error) {
	plans := uc.cat.ListPlans()
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		item, err := uc.planToResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &dto.PlanListResponse{Items: items}, nil
}

// ResolveAccountView resuelve la vista de precios para la cuenta con ese
// nombre. Si la cuenta no existe devuelve la vista por defecto sobre el tier
// Free base con Selected=false (la selección es transitoria y dirigida por el
// usuario: no debe tumbar la página). Propaga domain.ErrUnknownPlan si el
// plan almacenado de la cuenta no está en el catálogo.
func (uc *PricingUseCase) ResolveAccountView(companyName string) (*dto.AccountViewResponse, error) {
	found, err := uc.dir.FindByName(companyName)
	if err != nil {
		return nil, err
	}

	company := entity.Company{Name: companyName, BusinessPlan: catalog.PlanBusinessFree}
	if found != nil {
		company = *found
	}

	current, err := uc.res.CurrentPlan(company)
	if err != nil {
		return nil, err
	}

	plans := uc.cat.ListPlans()
	cards := make([]dto.PlanCardResponse, 0, len(plans))
	for _, p := range plans {
		card, err := uc.buildCard(company, current, p)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	scenario := uc.res.ClassifyScenario(company)
	return &dto.AccountViewResponse{
		Company:             company.Name,
		Selected:            found != nil,
		CurrentPlan:         current.Name,
		AdvisorTier:         string(company.AdvisorTier()),
		Scenario:            string(scenario),
		ScenarioDescription: scenario.Description(),
		Cards:               cards,
	}, nil
}

// ScenarioReport clasifica cada cuenta del directorio (el panel de debug de
// la página, convertido en reporte de operador).
func (uc *PricingUseCase) ScenarioReport() ([]dto.ScenarioReportResponse, error) {
	companies, err := uc.dir.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScenarioReportResponse, 0, len(companies))
	for _, c := range companies {
		scenario := uc.res.ClassifyScenario(*c)
		out = append(out, dto.ScenarioReportResponse{
			CompanyID:   c.ID,
			Company:     c.Name,
			Plan:        c.BusinessPlan,
			AdvisorTier: string(c.AdvisorTier()),
			Linked:      c.IsLinked(),
			Scenario:    string(scenario),
			Description: scenario.Description(),
		})
	}
	return out, nil
}

func (uc *PricingUseCase) planToResponse(p entity.Plan) (dto.PlanResponse, error) {
	label, err := uc.cat.PriceLabel(p.Name)
	if err != nil {
		return dto.PlanResponse{}, err
	}
	unit := "business"
	if p.Track == entity.TrackAdvisor {
		unit = "seat" // los planes advisor se cobran por asiento
	}
	features := make(map[string]string, len(p.FeatureGrants))
	for capability, grant := range p.FeatureGrants {
		features[capability] = string(grant)
	}
	return dto.PlanResponse{
		Name:       p.Name,
		Track:      string(p.Track),
		Tier:       p.Tier,
		PriceLabel: label,
		PriceUnit:  unit,
		ListPrice:  p.ListPrice,
		Blurb:      p.Blurb,
		Features:   features,
	}, nil
}

// buildCard arma la tarjeta de un plan para la cuenta dada. Reglas de CTA
// observadas en la página:
//   - plan Business vigente -> "current" (botón deshabilitado);
//   - tarjeta Business Free con la cuenta en un plan pago -> "hidden"
//     (el CTA de bajada a Free se suprime);
//   - resto del track Business -> upgrade/switch según el ordinal de tier;
//   - track Advisor: "manage" si la cuenta ya tiene ese tier (con resumen de
//     asientos), "purchase" si no.
func (uc *PricingUseCase) buildCard(c entity.Company, current entity.Plan, p entity.Plan) (dto.PlanCardResponse, error) {
	base, err := uc.planToResponse(p)
	if err != nil {
		return dto.PlanCardResponse{}, err
	}

	card := dto.PlanCardResponse{
		PlanResponse:  base,
		IsRecommended: entitlement.IsRecommended(p.Name),
	}

	switch p.Track {
	case entity.TrackBusiness:
		card.IsCurrent = uc.res.IsCurrentPlan(c, p.Name)
		switch {
		case card.IsCurrent:
			card.CTA = "current"
			card.CTALabel = "Current Plan"
		case p.Name == catalog.PlanBusinessFree && current.Tier > 0:
			card.CTA = "hidden"
		default:
			label, err := uc.res.UpgradeLabel(c, p.Name)
			if err != nil {
				return dto.PlanCardResponse{}, err
			}
			card.CTA = label
			if label == entitlement.LabelUpgrade {
				card.CTALabel = "Upgrade to " + p.Name
			} else {
				card.CTALabel = "Switch to " + p.Name
			}
		}

		discount, err := uc.res.AdvisorDiscount(c, p.Name)
		if err != nil {
			return dto.PlanCardResponse{}, err
		}
		if discount != nil {
			card.Discount = &dto.DiscountResponse{
				OriginalPrice:   discount.OriginalPrice,
				DiscountedPrice: discount.DiscountedPrice,
				DiscountPercent: discount.DiscountPercent,
			}
		}

	case entity.TrackAdvisor:
		owned := ownsAdvisorPlan(c, p.Name)
		card.IsCurrent = owned
		if owned {
			card.CTA = "manage"
			card.CTALabel = "Manage seats"
			pool := c.AdvisorLicenses()
			card.Seats = &dto.SeatSummaryResponse{Active: pool.Active, Inactive: pool.Inactive}
		} else {
			card.CTA = "purchase"
			card.CTALabel = "Purchase"
		}
	}

	return card, nil
}

// ownsAdvisorPlan informa si la cuenta tiene contratado el plan advisor dado.
func ownsAdvisorPlan(c entity.Company, planName string) bool {
	switch c.AdvisorTier() {
	case entity.AdvisorBasic:
		return planName == catalog.PlanAdvisorBasic
	case entity.AdvisorPremium:
		return planName == catalog.PlanAdvisorPremium
	default:
		return false
	}
}
