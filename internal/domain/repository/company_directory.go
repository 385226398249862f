package repository

import "github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"

// CompanyDirectory puerto de SOLO lectura sobre el directorio de cuentas
// (DIP). La implementación vive en infrastructure. Las altas, bajas y
// mutaciones son responsabilidad del proveedor externo del directorio: si
// algún día lo respalda un servicio de suscripciones real, ese servicio debe
// satisfacer exactamente este contrato de lectura.
//
// Convención: los lookups devuelven (nil, nil) cuando no hay coincidencia.
type CompanyDirectory interface {
	FindByName(name string) (*entity.Company, error)
	FindByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)

	// Standalone: empresas sin LinkedCompanyID, en orden estable.
	Standalone() ([]*entity.Company, error)
	// Linked: empresas con LinkedCompanyID, en orden estable. El destino se
	// resuelve con FindByID (referencia débil: puede no existir y eso es un
	// error de integridad del proveedor, no del resolver).
	Linked() ([]*entity.Company, error)
}
