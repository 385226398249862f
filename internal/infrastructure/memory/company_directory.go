// Package memory: implementación en memoria del directorio de cuentas.
// El directorio es read-mostly: cada actualización reemplaza el snapshot
// completo con un swap atómico, de modo que una resolución siempre observa
// un grafo de cuentas consistente sin necesidad de locks.
package memory

import (
	"sync/atomic"

	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
)

// snapshot vista inmutable del directorio. No se muta tras construirse.
type snapshot struct {
	ordered []*entity.Company
	byID    map[string]*entity.Company
	byName  map[string]*entity.Company
}

func buildSnapshot(companies []*entity.Company) *snapshot {
	s := &snapshot{
		ordered: append([]*entity.Company(nil), companies...),
		byID:    make(map[string]*entity.Company, len(companies)),
		byName:  make(map[string]*entity.Company, len(companies)),
	}
	for _, c := range s.ordered {
		s.byID[c.ID] = c
		s.byName[c.Name] = c
	}
	return s
}

// CompanyDirectory directorio respaldado por un snapshot inmutable.
// Implementa repository.CompanyDirectory.
type CompanyDirectory struct {
	snap atomic.Pointer[snapshot]
}

// NewCompanyDirectory construye el directorio con el conjunto inicial de empresas.
func NewCompanyDirectory(companies []*entity.Company) *CompanyDirectory {
	d := &CompanyDirectory{}
	d.snap.Store(buildSnapshot(companies))
	return d
}

// Replace sustituye el directorio completo de forma atómica. Los lectores en
// curso terminan sobre el snapshot anterior; los nuevos ven el nuevo.
func (d *CompanyDirectory) Replace(companies []*entity.Company) {
	d.snap.Store(buildSnapshot(companies))
}

// FindByName busca por nombre de empresa (clave del diseño actual). (nil, nil) si no existe.
func (d *CompanyDirectory) FindByName(name string) (*entity.Company, error) {
	return d.snap.Load().byName[name], nil
}

// FindByID busca por id. (nil, nil) si no existe.
func (d *CompanyDirectory) FindByID(id string) (*entity.Company, error) {
	return d.snap.Load().byID[id], nil
}

// List devuelve todas las empresas en orden de carga.
func (d *CompanyDirectory) List() ([]*entity.Company, error) {
	s := d.snap.Load()
	return append([]*entity.Company(nil), s.ordered...), nil
}

// Standalone empresas sin vínculo advisor, en orden de carga.
func (d *CompanyDirectory) Standalone() ([]*entity.Company, error) {
	s := d.snap.Load()
	out := make([]*entity.Company, 0, len(s.ordered))
	for _, c := range s.ordered {
		if !c.IsLinked() {
			out = append(out, c)
		}
	}
	return out, nil
}

// Linked empresas con vínculo advisor, en orden de carga.
func (d *CompanyDirectory) Linked() ([]*entity.Company, error) {
	s := d.snap.Load()
	out := make([]*entity.Company, 0, len(s.ordered))
	for _, c := range s.ordered {
		if c.IsLinked() {
			out = append(out, c)
		}
	}
	return out, nil
}
