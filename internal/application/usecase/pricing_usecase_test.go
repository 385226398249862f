package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
	"github.com/tu-usuario/exitplanner-pricing/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newPricingUC(t *testing.T, companies ...*entity.Company) *usecase.PricingUseCase {
	t.Helper()
	if companies == nil {
		companies = memory.SeedCompanies()
	}
	return usecase.NewPricingUseCase(catalog.Default(), memory.NewCompanyDirectory(companies))
}

// cardFor busca la tarjeta del plan dado dentro de la vista.
func cardFor(t *testing.T, view *dto.AccountViewResponse, plan string) dto.PlanCardResponse {
	t.Helper()
	for _, card := range view.Cards {
		if card.Name == plan {
			return card
		}
	}
	t.Fatalf("la vista no contiene tarjeta para %q", plan)
	return dto.PlanCardResponse{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestListPlans(t *testing.T) {
	uc := newPricingUC(t)

	out, err := uc.ListPlans()
	require.NoError(t, err)
	require.Len(t, out.Items, 5)

	max := out.Items[2]
	assert.Equal(t, catalog.PlanBusinessMax, max.Name)
	assert.Equal(t, "$1,000/year", max.PriceLabel)
	assert.Equal(t, "business", max.PriceUnit)

	basic := out.Items[3]
	assert.Equal(t, catalog.PlanAdvisorBasic, basic.Name)
	assert.Equal(t, "seat", basic.PriceUnit, "los planes advisor se cobran por asiento")
	assert.Equal(t, int64(480), basic.ListPrice, "Advisor Basic muestra el precio de lista tachado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de precios por cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveAccountView_CuentaSinAdvisor(t *testing.T) {
	uc := newPricingUC(t)

	view, err := uc.ResolveAccountView("Acme Corp")
	require.NoError(t, err)

	assert.True(t, view.Selected)
	assert.Equal(t, catalog.PlanBusinessMini, view.CurrentPlan)
	assert.Equal(t, "none", view.AdvisorTier)
	assert.Equal(t, "on_business_mini", view.Scenario)
	require.Len(t, view.Cards, 5)

	mini := cardFor(t, view, catalog.PlanBusinessMini)
	assert.True(t, mini.IsCurrent)
	assert.Equal(t, "current", mini.CTA)
	assert.Equal(t, "Current Plan", mini.CTALabel)
	assert.Nil(t, mini.Discount, "sin tier premium no hay descuentos")

	free := cardFor(t, view, catalog.PlanBusinessFree)
	assert.Equal(t, "hidden", free.CTA, "en un plan pago se suprime el CTA de bajada a Free")

	max := cardFor(t, view, catalog.PlanBusinessMax)
	assert.Equal(t, "upgrade", max.CTA)
	assert.Equal(t, "Upgrade to Business Max", max.CTALabel)
	assert.True(t, max.IsRecommended)

	premium := cardFor(t, view, catalog.PlanAdvisorPremium)
	assert.Equal(t, "purchase", premium.CTA)
	assert.False(t, premium.IsCurrent)
}

func TestResolveAccountView_AdvisorPremiumConDescuentos(t *testing.T) {
	uc := newPricingUC(t)

	view, err := uc.ResolveAccountView("Innovate Labs")
	require.NoError(t, err)

	assert.Equal(t, "premium", view.AdvisorTier)
	assert.Equal(t, "premium_advisor_with_mini", view.Scenario)
	assert.Equal(t, "Advisor premium + Business mini", view.ScenarioDescription)

	mini := cardFor(t, view, catalog.PlanBusinessMini)
	require.NotNil(t, mini.Discount)
	assert.Equal(t, int64(0), mini.Discount.DiscountedPrice)
	assert.Equal(t, 100, mini.Discount.DiscountPercent)

	max := cardFor(t, view, catalog.PlanBusinessMax)
	require.NotNil(t, max.Discount)
	assert.Equal(t, int64(700), max.Discount.DiscountedPrice)
	assert.Equal(t, 30, max.Discount.DiscountPercent)

	free := cardFor(t, view, catalog.PlanBusinessFree)
	assert.Nil(t, free.Discount, "Business Free nunca recibe descuento")

	// Tarjeta advisor contratada: gestionar asientos en lugar de comprar.
	premium := cardFor(t, view, catalog.PlanAdvisorPremium)
	assert.True(t, premium.IsCurrent)
	assert.Equal(t, "manage", premium.CTA)
	require.NotNil(t, premium.Seats)
	assert.Equal(t, 2, premium.Seats.Active)
	assert.Equal(t, 1, premium.Seats.Inactive)

	basic := cardFor(t, view, catalog.PlanAdvisorBasic)
	assert.Equal(t, "purchase", basic.CTA, "el tier basic no está contratado por una cuenta premium")
}

func TestResolveAccountView_CuentaEnPlanGratuito(t *testing.T) {
	uc := newPricingUC(t)

	view, err := uc.ResolveAccountView("TechStart Inc")
	require.NoError(t, err)

	assert.Equal(t, "free_tier_only", view.Scenario)

	free := cardFor(t, view, catalog.PlanBusinessFree)
	assert.True(t, free.IsCurrent)
	assert.Equal(t, "current", free.CTA)

	mini := cardFor(t, view, catalog.PlanBusinessMini)
	assert.Equal(t, "upgrade", mini.CTA)
	assert.Equal(t, "Upgrade to Business Mini", mini.CTALabel)
}

func TestResolveAccountView_CuentaInexistente(t *testing.T) {
	uc := newPricingUC(t)

	view, err := uc.ResolveAccountView("No Existe SA")
	require.NoError(t, err, "una cuenta ausente no es un error: la selección es transitoria")

	assert.False(t, view.Selected, "selected=false señala la vista por defecto")
	assert.Equal(t, "No Existe SA", view.Company)
	assert.Equal(t, catalog.PlanBusinessFree, view.CurrentPlan)
	assert.Equal(t, "none", view.AdvisorTier)
	assert.Equal(t, "free_tier_only", view.Scenario)
	require.Len(t, view.Cards, 5, "la vista por defecto pinta el catálogo completo")
}

func TestResolveAccountView_PlanColgante(t *testing.T) {
	uc := newPricingUC(t, &entity.Company{
		ID: "rota", Name: "Rota SA", BusinessPlan: "Business Ultra",
	})

	_, err := uc.ResolveAccountView("Rota SA")
	assert.ErrorIs(t, err, domain.ErrUnknownPlan,
		"un plan almacenado fuera del catálogo es fallo de integridad y se propaga")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de escenarios
// ──────────────────────────────────────────────────────────────────────────────

func TestScenarioReport_DirectorioCompleto(t *testing.T) {
	uc := newPricingUC(t)

	report, err := uc.ScenarioReport()
	require.NoError(t, err)
	require.Len(t, report, 5, "una fila por cuenta del directorio")

	porID := make(map[string]string, len(report))
	for _, row := range report {
		porID[row.CompanyID] = row.Scenario
	}
	assert.Equal(t, "on_business_mini", porID["acme"])
	assert.Equal(t, "free_tier_only", porID["techstart"])
	assert.Equal(t, "on_business_max", porID["globaltech"])
	assert.Equal(t, "premium_advisor_with_mini", porID["innovate"])
	assert.Equal(t, "basic_advisor_only", porID["advisorpro"])
}
