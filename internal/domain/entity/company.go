package entity

// AdvisorTier nivel del track Advisor que una empresa puede tener contratado.
type AdvisorTier string

const (
	AdvisorNone    AdvisorTier = "none"
	AdvisorBasic   AdvisorTier = "basic"
	AdvisorPremium AdvisorTier = "premium"
)

// LicensePool asientos advisor comprados por la empresa.
type LicensePool struct {
	Active   int
	Inactive int
}

// AdvisorSubscription variante etiquetada: el pool de licencias no puede
// existir sin un tier. Un puntero nil en Company.Advisor significa
// "sin plan advisor" (AdvisorNone).
type AdvisorSubscription struct {
	Tier     AdvisorTier // basic | premium
	Licenses LicensePool
}

// Company cuenta del directorio. El motor nunca la muta: las altas y bajas
// son responsabilidad del proveedor externo del directorio.
type Company struct {
	ID           string
	Name         string // clave de búsqueda en el diseño actual; debe ser única
	BusinessPlan string // nombre de un plan del track Business
	Seats        int    // usuarios de la empresa (>= 0)

	// Advisor: nil si la empresa no tiene plan advisor contratado.
	Advisor *AdvisorSubscription

	// LinkedCompanyID referencia débil (solo lookup, sin ownership) a otra
	// empresa. "" = empresa independiente. Una empresa con vínculo se
	// considera "gestionada por" la cuenta advisor referenciada.
	LinkedCompanyID string
}

// AdvisorTier proyección segura del tier advisor (AdvisorNone si no hay suscripción).
func (c Company) AdvisorTier() AdvisorTier {
	if c.Advisor == nil {
		return AdvisorNone
	}
	return c.Advisor.Tier
}

// AdvisorLicenses devuelve el pool de asientos. Si no hay suscripción advisor
// resuelve a contadores en cero por convención, nunca con error.
func (c Company) AdvisorLicenses() LicensePool {
	if c.Advisor == nil {
		return LicensePool{}
	}
	return c.Advisor.Licenses
}

// IsLinked informa si la empresa está vinculada a una cuenta advisor.
func (c Company) IsLinked() bool {
	return c.LinkedCompanyID != ""
}
