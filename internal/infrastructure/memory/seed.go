package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/exitplanner-pricing/internal/domain"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// SeedCompanies directorio de demostración: las cinco cuentas de la página
// de precios. En un despliegue real estos datos vienen del proveedor externo
// del directorio.
func SeedCompanies() []*entity.Company {
	return []*entity.Company{
		{
			ID:           "acme",
			Name:         "Acme Corp",
			BusinessPlan: catalog.PlanBusinessMini,
			Seats:        12,
		},
		{
			ID:           "techstart",
			Name:         "TechStart Inc",
			BusinessPlan: catalog.PlanBusinessFree,
			Seats:        5,
		},
		{
			ID:           "globaltech",
			Name:         "GlobalTech Solutions",
			BusinessPlan: catalog.PlanBusinessMax,
			Seats:        25,
		},
		{
			ID:           "innovate",
			Name:         "Innovate Labs",
			BusinessPlan: catalog.PlanBusinessMini,
			Seats:        8,
			Advisor: &entity.AdvisorSubscription{
				Tier:     entity.AdvisorPremium,
				Licenses: entity.LicensePool{Active: 2, Inactive: 1},
			},
			LinkedCompanyID: "acme",
		},
		{
			ID:           "advisorpro",
			Name:         "Advisor Pro",
			BusinessPlan: catalog.PlanBusinessFree,
			Seats:        3,
			Advisor: &entity.AdvisorSubscription{
				Tier:     entity.AdvisorBasic,
				Licenses: entity.LicensePool{Active: 1, Inactive: 0},
			},
		},
	}
}

// companyRecord forma JSON de una cuenta en el archivo de seed externo.
// El pool de licencias solo es válido acompañado de un tier advisor
// (invariante de la variante etiquetada, verificado al cargar).
type companyRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BusinessPlan    string `json:"business_plan"`
	Seats           int    `json:"seats"`
	AdvisorTier     string `json:"advisor_tier,omitempty"` // "", basic, premium
	LinkedCompanyID string `json:"linked_company_id,omitempty"`
	Licenses        *struct {
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
	} `json:"licenses,omitempty"`
}

// LoadCompaniesFile carga un directorio alternativo desde un archivo JSON
// (PRICING_ACCOUNTS_FILE). Valida los invariantes estructurales de cada
// registro; la coherencia de los nombres de plan contra el catálogo la
// detecta el resolver en el primer uso (ErrUnknownPlan).
func LoadCompaniesFile(path string) ([]*entity.Company, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer seed de cuentas: %w", err)
	}
	var records []companyRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsear seed de cuentas: %w", err)
	}

	out := make([]*entity.Company, 0, len(records))
	seenID := make(map[string]bool, len(records))
	seenName := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.ID == "" || rec.Name == "" || rec.BusinessPlan == "" {
			return nil, fmt.Errorf("%w: cuenta sin id, nombre o plan", domain.ErrInvalidInput)
		}
		if seenID[rec.ID] || seenName[rec.Name] {
			return nil, fmt.Errorf("%w: cuenta duplicada %q", domain.ErrInvalidInput, rec.ID)
		}
		seenID[rec.ID] = true
		seenName[rec.Name] = true

		c := &entity.Company{
			ID:              rec.ID,
			Name:            rec.Name,
			BusinessPlan:    rec.BusinessPlan,
			Seats:           rec.Seats,
			LinkedCompanyID: rec.LinkedCompanyID,
		}
		switch entity.AdvisorTier(rec.AdvisorTier) {
		case entity.AdvisorBasic, entity.AdvisorPremium:
			sub := &entity.AdvisorSubscription{Tier: entity.AdvisorTier(rec.AdvisorTier)}
			if rec.Licenses != nil {
				sub.Licenses = entity.LicensePool{Active: rec.Licenses.Active, Inactive: rec.Licenses.Inactive}
			}
			c.Advisor = sub
		case "", entity.AdvisorNone:
			if rec.Licenses != nil {
				return nil, fmt.Errorf("%w: cuenta %q declara licencias sin tier advisor",
					domain.ErrInvalidInput, rec.ID)
			}
		default:
			return nil, fmt.Errorf("%w: tier advisor desconocido %q en cuenta %q",
				domain.ErrInvalidInput, rec.AdvisorTier, rec.ID)
		}
		out = append(out, c)
	}

	// Referencias débiles: un vínculo colgante es un error de integridad del
	// proveedor del directorio y se rechaza en la carga, no en el resolver.
	for _, c := range out {
		if c.IsLinked() && !seenID[c.LinkedCompanyID] {
			return nil, fmt.Errorf("%w: cuenta %q vinculada a id inexistente %q",
				domain.ErrInvalidInput, c.ID, c.LinkedCompanyID)
		}
	}
	return out, nil
}
