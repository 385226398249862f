// Package entitlement: lógica pura de resolución de entitlements de una
// cuenta contra el catálogo de planes. Todas las operaciones son totales y
// sin efectos colaterales sobre (empresa, catálogo); se recalculan en cada
// llamada y nunca se cachean entre mutaciones del directorio.
package entitlement

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// Etiquetas de call-to-action para cambios de plan. Solo gobiernan el texto
// del botón; no tienen otra semántica.
const (
	LabelUpgrade = "upgrade"
	LabelSwitch  = "switch"
)

// DiscountOffer descuento advisor derivado para un plan Business. Se produce
// en el momento de la presentación y nunca se persiste.
type DiscountOffer struct {
	OriginalPrice   int64
	DiscountedPrice int64
	DiscountPercent int
}

// advisorDiscountPercent tabla fija de descuentos que el tier Advisor Premium
// otorga sobre planes Business. Un plan fuera de la tabla no recibe descuento
// aunque la condición premium se cumpla.
var advisorDiscountPercent = map[string]int{
	catalog.PlanBusinessMini: 100,
	catalog.PlanBusinessMax:  30,
}

// Resolver resuelve plan actual, descuentos y clasificación de escenario
// para una cuenta. Sin estado propio más allá del catálogo inmutable.
type Resolver struct {
	cat *catalog.Catalog
}

// NewResolver construye el resolver sobre un catálogo ya validado.
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// CurrentPlan devuelve el plan Business vigente de la empresa.
// domain.ErrUnknownPlan si el nombre almacenado no está en el catálogo
// (fallo de integridad de datos: se propaga, no se suaviza).
func (r *Resolver) CurrentPlan(c entity.Company) (entity.Plan, error) {
	return r.cat.GetPlan(c.BusinessPlan)
}

// IsCurrentPlan informa si planName es el plan vigente de la empresa.
// El nombre es la identidad del plan, así que basta la comparación directa;
// un BusinessPlan colgante se detecta en CurrentPlan.
func (r *Resolver) IsCurrentPlan(c entity.Company, planName string) bool {
	return c.BusinessPlan == planName
}

// IsRecommended predicado estático: solo los dos planes tope de cada track
// se marcan como recomendados, sin importar el estado de la cuenta.
func IsRecommended(planName string) bool {
	return planName == catalog.PlanBusinessMax || planName == catalog.PlanAdvisorPremium
}

// AdvisorTier proyección del tier advisor de la cuenta.
func (r *Resolver) AdvisorTier(c entity.Company) entity.AdvisorTier {
	return c.AdvisorTier()
}

// AdvisorDiscount calcula el descuento advisor para un plan Business.
// Devuelve nil (sin error) salvo que el tier de la cuenta sea Premium, el
// plan sea del track Business distinto de Business Free y esté en la tabla
// fija de descuentos. domain.ErrUnknownPlan si planName no existe en el
// catálogo.
//
// TODO(product): la fuente aplica el descuento según el tier advisor de la
// cuenta seleccionada, sin distinguir si la receptora es la cuenta vinculada
// (gestionada) o la advisor misma. Ambigüedad preservada tal cual, pendiente
// de definición de producto.
func (r *Resolver) AdvisorDiscount(c entity.Company, planName string) (*DiscountOffer, error) {
	plan, err := r.cat.GetPlan(planName)
	if err != nil {
		return nil, err
	}
	if c.AdvisorTier() != entity.AdvisorPremium {
		return nil, nil
	}
	if plan.Track != entity.TrackBusiness || plan.Name == catalog.PlanBusinessFree {
		return nil, nil
	}
	pct, ok := advisorDiscountPercent[plan.Name]
	if !ok {
		return nil, nil
	}

	// Aritmética exacta en decimal: base × (100 − pct) / 100, sin floats.
	base := decimal.NewFromInt(plan.BasePrice)
	discounted := base.
		Mul(decimal.NewFromInt(int64(100 - pct))).
		Div(decimal.NewFromInt(100)).
		Round(0)

	return &DiscountOffer{
		OriginalPrice:   plan.BasePrice,
		DiscountedPrice: discounted.IntPart(),
		DiscountPercent: pct,
	}, nil
}

// UpgradeLabel decide el texto del call-to-action hacia targetPlanName:
// "upgrade" cuando el tier del plan vigente es estrictamente menor que el del
// destino dentro del mismo track; "switch" en cualquier otro caso (cambio de
// track o movimiento lateral/descendente).
func (r *Resolver) UpgradeLabel(c entity.Company, targetPlanName string) (string, error) {
	current, err := r.CurrentPlan(c)
	if err != nil {
		return "", err
	}
	target, err := r.cat.GetPlan(targetPlanName)
	if err != nil {
		return "", err
	}
	if current.Track == target.Track && current.Tier < target.Tier {
		return LabelUpgrade, nil
	}
	return LabelSwitch, nil
}
