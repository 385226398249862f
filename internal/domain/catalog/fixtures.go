package catalog

import "github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"

// Nombres canónicos de los planes del producto.
const (
	PlanBusinessFree   = "Business Free"
	PlanBusinessMini   = "Business Mini"
	PlanBusinessMax    = "Business Max"
	PlanAdvisorBasic   = "Advisor Basic"
	PlanAdvisorPremium = "Advisor Premium"
)

// Capacidades declaradas del producto. El orden define las filas de la
// matriz de comparación.
const (
	CapDayZeroGuide       = "day_zero_guide"
	CapAhaPlanner         = "aha_planner"
	CapTeamCollaboration  = "team_collaboration"
	CapValuationSnapshot  = "valuation_snapshot"
	CapMarketComps        = "market_comps"
	CapFinancialModeling  = "financial_modeling"
	CapMultiClientAccess  = "multi_client_access"
	CapReferralDiscounts  = "referral_discounts"
	CapClientAccounts     = "client_accounts"
	CapAPIAccess          = "api_access"
	CapPrioritySupport    = "priority_support"
)

func declaredCapabilities() []string {
	return []string{
		CapDayZeroGuide,
		CapAhaPlanner,
		CapTeamCollaboration,
		CapValuationSnapshot,
		CapMarketComps,
		CapFinancialModeling,
		CapMultiClientAccess,
		CapReferralDiscounts,
		CapClientAccounts,
		CapAPIAccess,
		CapPrioritySupport,
	}
}

// defaultPlans definición de los cinco planes comerciales. El orden de
// declaración es el orden de render de la página de precios.
func defaultPlans() []entity.Plan {
	return []entity.Plan{
		{
			Name:      PlanBusinessFree,
			Track:     entity.TrackBusiness,
			Tier:      0,
			BasePrice: 0,
			Blurb:     "Get a personalized roadmap of your exit options—at no cost.",
			FeatureGrants: map[string]entity.GrantLevel{
				CapDayZeroGuide:      entity.GrantFull,
				CapTeamCollaboration: entity.GrantFull,
				CapValuationSnapshot: entity.GrantPartial,
			},
		},
		{
			Name:      PlanBusinessMini,
			Track:     entity.TrackBusiness,
			Tier:      1,
			BasePrice: 100,
			Blurb:     "See what your business might be worth and how that impacts your path.",
			FeatureGrants: map[string]entity.GrantLevel{
				CapDayZeroGuide:      entity.GrantFull,
				CapAhaPlanner:        entity.GrantPartial, // DIY, sin acompañamiento
				CapTeamCollaboration: entity.GrantFull,
				CapValuationSnapshot: entity.GrantFull,
				CapFinancialModeling: entity.GrantPartial,
			},
		},
		{
			Name:      PlanBusinessMax,
			Track:     entity.TrackBusiness,
			Tier:      2,
			BasePrice: 1000,
			Blurb:     "A full planning toolkit to prepare your business for transition.",
			FeatureGrants: map[string]entity.GrantLevel{
				CapDayZeroGuide:      entity.GrantFull,
				CapAhaPlanner:        entity.GrantFull, // guiado y con reportes completos
				CapTeamCollaboration: entity.GrantFull,
				CapValuationSnapshot: entity.GrantFull,
				CapMarketComps:       entity.GrantFull,
				CapFinancialModeling: entity.GrantFull,
				CapPrioritySupport:   entity.GrantFull,
			},
		},
		{
			Name:      PlanAdvisorBasic,
			Track:     entity.TrackAdvisor,
			Tier:      0,
			BasePrice: 350,
			ListPrice: 480,
			Blurb:     "Help clients explore succession options—faster and with less overhead",
			FeatureGrants: map[string]entity.GrantLevel{
				CapTeamCollaboration: entity.GrantFull,
				CapMultiClientAccess: entity.GrantFull,
				CapReferralDiscounts: entity.GrantPartial, // hasta 15% en Business Max
			},
		},
		{
			Name:      PlanAdvisorPremium,
			Track:     entity.TrackAdvisor,
			Tier:      1,
			BasePrice: 3000,
			Blurb:     "Grow your practice with unlimited clients and powerful tracking tools",
			FeatureGrants: map[string]entity.GrantLevel{
				CapTeamCollaboration: entity.GrantFull,
				CapMultiClientAccess: entity.GrantFull,
				CapReferralDiscounts: entity.GrantFull, // hasta 30% en Business Max
				CapClientAccounts:    entity.GrantFull, // clientes ilimitados en Business Mini
				CapAPIAccess:         entity.GrantFull,
				CapPrioritySupport:   entity.GrantFull,
			},
		},
	}
}

// Default construye el catálogo comercial. Un error aquí es un bug en las
// definiciones de arriba, no una condición de ejecución.
func Default() *Catalog {
	c, err := New(defaultPlans(), declaredCapabilities())
	if err != nil {
		panic("catalog: fixture inválido: " + err.Error())
	}
	return c
}
