// Package catalog: registro estático y de solo lectura de los planes del
// producto (precios, orden de tiers, niveles de acceso por capacidad).
// Se construye una vez al arrancar el proceso y es seguro compartirlo entre
// llamadores concurrentes: la inmutabilidad es toda la disciplina necesaria.
package catalog

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// Catalog catálogo inmutable de planes, en orden de declaración.
type Catalog struct {
	plans        []entity.Plan
	index        map[string]int // nombre -> posición en plans
	capabilities []string       // orden de declaración, estable
}

// priceprinter formatea montos con separador de miles ($1,000), como los
// muestra la página de precios.
var priceprinter = message.NewPrinter(language.English)

// New valida y construye el catálogo. Reglas aplicadas en construcción (no en
// consulta): nombres de plan únicos, cada grant refiere a una capacidad
// declarada, y todo plan queda con una entrada (GrantNone por defecto) para
// cada capacidad declarada.
func New(plans []entity.Plan, capabilities []string) (*Catalog, error) {
	declared := make(map[string]bool, len(capabilities))
	for _, cap := range capabilities {
		if declared[cap] {
			return nil, fmt.Errorf("%w: capacidad duplicada %q", domain.ErrInvalidCatalog, cap)
		}
		declared[cap] = true
	}

	c := &Catalog{
		plans:        make([]entity.Plan, 0, len(plans)),
		index:        make(map[string]int, len(plans)),
		capabilities: append([]string(nil), capabilities...),
	}

	for _, p := range plans {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: plan sin nombre", domain.ErrInvalidCatalog)
		}
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: plan duplicado %q", domain.ErrInvalidCatalog, p.Name)
		}
		for cap := range p.FeatureGrants {
			if !declared[cap] {
				return nil, fmt.Errorf("%w: plan %q otorga capacidad no declarada %q",
					domain.ErrInvalidCatalog, p.Name, cap)
			}
		}
		// Fila completa: una entrada por capacidad declarada (GrantNone si se omitió).
		grants := make(map[string]entity.GrantLevel, len(capabilities))
		for _, cap := range capabilities {
			grants[cap] = entity.GrantNone
			if g, ok := p.FeatureGrants[cap]; ok {
				grants[cap] = g
			}
		}
		p.FeatureGrants = grants

		c.index[p.Name] = len(c.plans)
		c.plans = append(c.plans, p)
	}

	return c, nil
}

// ListPlans devuelve los planes en orden de declaración (copia defensiva).
func (c *Catalog) ListPlans() []entity.Plan {
	return append([]entity.Plan(nil), c.plans...)
}

// GetPlan busca un plan por nombre. domain.ErrUnknownPlan si no existe.
func (c *Catalog) GetPlan(name string) (entity.Plan, error) {
	i, ok := c.index[name]
	if !ok {
		return entity.Plan{}, domain.ErrUnknownPlan
	}
	return c.plans[i], nil
}

// PriceLabel formatea el precio anual de un plan como "$<precio>/year"
// (con separador de miles). domain.ErrUnknownPlan si el plan no existe.
func (c *Catalog) PriceLabel(name string) (string, error) {
	p, err := c.GetPlan(name)
	if err != nil {
		return "", err
	}
	return priceprinter.Sprintf("$%d/year", p.BasePrice), nil
}

// Capabilities devuelve la lista de capacidades declaradas, en orden estable.
func (c *Catalog) Capabilities() []string {
	return append([]string(nil), c.capabilities...)
}
