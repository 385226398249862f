package entitlement

import (
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// Scenario clasificación de diagnóstico de una cuenta. No afecta precios ni
// entitlements: existe para que un operador verifique qué rama del conjunto
// de reglas ejercita una cuenta.
type Scenario string

const (
	ScenarioPremiumAdvisorWithMini      Scenario = "premium_advisor_with_mini"
	ScenarioBasicAdvisorOnly            Scenario = "basic_advisor_only"
	ScenarioPremiumAdvisorViewingLinked Scenario = "premium_advisor_viewing_linked"
	ScenarioFreeTierOnly                Scenario = "free_tier_only"
	ScenarioOnBusinessMini              Scenario = "on_business_mini"
	ScenarioOnBusinessMax               Scenario = "on_business_max"
	ScenarioUnclassified                Scenario = "unclassified"
)

// Description etiqueta legible para el panel de diagnóstico.
func (s Scenario) Description() string {
	switch s {
	case ScenarioPremiumAdvisorWithMini:
		return "Advisor premium + Business mini"
	case ScenarioBasicAdvisorOnly:
		return "Advisor basic only"
	case ScenarioPremiumAdvisorViewingLinked:
		return "Advisor premium viewing linked company"
	case ScenarioFreeTierOnly:
		return "Only on free plan"
	case ScenarioOnBusinessMini:
		return "On Business Mini plan"
	case ScenarioOnBusinessMax:
		return "On Business Max plan"
	default:
		return "Unknown scenario"
	}
}

// scenarioRule par (predicado, resultado) de la tabla de clasificación.
type scenarioRule struct {
	result  Scenario
	matches func(entity.Company) bool
}

// scenarioRules tabla ordenada de reglas: se evalúa en secuencia y gana la
// PRIMERA coincidencia. El orden es semántico — no reordenar: una cuenta
// premium con Business Mini debe clasificar por la regla 1 aunque también
// cumpla la 3 o la 5.
var scenarioRules = []scenarioRule{
	{ScenarioPremiumAdvisorWithMini, func(c entity.Company) bool {
		return c.AdvisorTier() == entity.AdvisorPremium && c.BusinessPlan == catalog.PlanBusinessMini
	}},
	{ScenarioBasicAdvisorOnly, func(c entity.Company) bool {
		return c.AdvisorTier() == entity.AdvisorBasic && c.BusinessPlan == catalog.PlanBusinessFree
	}},
	{ScenarioPremiumAdvisorViewingLinked, func(c entity.Company) bool {
		return c.AdvisorTier() == entity.AdvisorPremium && c.IsLinked()
	}},
	{ScenarioFreeTierOnly, func(c entity.Company) bool {
		return c.BusinessPlan == catalog.PlanBusinessFree
	}},
	{ScenarioOnBusinessMini, func(c entity.Company) bool {
		return c.BusinessPlan == catalog.PlanBusinessMini
	}},
	{ScenarioOnBusinessMax, func(c entity.Company) bool {
		return c.BusinessPlan == catalog.PlanBusinessMax
	}},
}

// ClassifyScenario clasifica la cuenta contra la tabla ordenada de reglas.
// Total: toda combinación alcanzable cae exactamente en uno de los 7 escenarios.
func (r *Resolver) ClassifyScenario(c entity.Company) Scenario {
	for _, rule := range scenarioRules {
		if rule.matches(c) {
			return rule.result
		}
	}
	return ScenarioUnclassified
}
