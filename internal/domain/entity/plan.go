package entity

// Track familia de planes. Una empresa tiene exactamente un plan del track
// Business y, opcionalmente, un nivel del track Advisor (independientes entre sí).
type Track string

const (
	TrackBusiness Track = "business"
	TrackAdvisor  Track = "advisor"
)

// GrantLevel nivel de acceso que un plan otorga sobre una capacidad.
type GrantLevel string

const (
	GrantNone    GrantLevel = "none"
	GrantPartial GrantLevel = "partial"
	GrantFull    GrantLevel = "full"
)

// Plan definición estática de un plan del catálogo. Inmutable tras la
// construcción del catálogo; vive lo que vive el proceso.
//
// Tier es el ordinal dentro de su track (Free=0, Mini=1, Max=2 en Business;
// Basic=0, Premium=1 en Advisor) y solo distingue "upgrade" de "switch".
type Plan struct {
	Name      string // clave única del catálogo
	Track     Track
	Tier      int
	BasePrice int64  // USD por año, sin centavos
	ListPrice int64  // precio de lista tachado en la página (0 = no aplica)
	Blurb     string // subtítulo de la tarjeta de precios

	// FeatureGrants: capacidad -> nivel otorgado. El catálogo garantiza en
	// construcción que hay una entrada por cada capacidad declarada.
	FeatureGrants map[string]GrantLevel
}

// GrantFor devuelve el nivel otorgado para una capacidad.
// GrantNone si el plan no la declara.
func (p Plan) GrantFor(capability string) GrantLevel {
	if g, ok := p.FeatureGrants[capability]; ok {
		return g
	}
	return GrantNone
}
