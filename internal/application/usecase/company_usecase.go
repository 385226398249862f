package usecase

import (
	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/repository"
)

// CompanyUseCase consultas de solo lectura sobre el directorio de cuentas.
type CompanyUseCase struct {
	dir repository.CompanyDirectory
}

// NewCompanyUseCase construye el caso de uso con el puerto del directorio.
func NewCompanyUseCase(dir repository.CompanyDirectory) *CompanyUseCase {
	return &CompanyUseCase{dir: dir}
}

// List devuelve el directorio agrupado: independientes primero, vinculadas
// después con su destino resuelto (las secciones del selector de empresa).
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	standalone, err := uc.dir.Standalone()
	if err != nil {
		return nil, err
	}
	linked, err := uc.dir.Linked()
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyListResponse{
		Standalone: make([]dto.CompanyResponse, 0, len(standalone)),
		Linked:     make([]dto.LinkedCompanyResponse, 0, len(linked)),
	}
	for _, c := range standalone {
		out.Standalone = append(out.Standalone, *entityToCompanyResponse(c))
	}
	for _, c := range linked {
		item := dto.LinkedCompanyResponse{CompanyResponse: *entityToCompanyResponse(c)}
		target, err := uc.dir.FindByID(c.LinkedCompanyID)
		if err != nil {
			return nil, err
		}
		if target != nil {
			item.LinkedTo = &dto.CompanyRefResponse{ID: target.ID, Name: target.Name}
		}
		out.Linked = append(out.Linked, item)
	}
	return out, nil
}

// GetByID obtiene una cuenta por id. (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	c, err := uc.dir.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return entityToCompanyResponse(c), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	out := &dto.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		BusinessPlan:    c.BusinessPlan,
		Seats:           c.Seats,
		AdvisorTier:     string(c.AdvisorTier()),
		LinkedCompanyID: c.LinkedCompanyID,
	}
	if c.Advisor != nil {
		out.Licenses = &dto.SeatSummaryResponse{
			Active:   c.Advisor.Licenses.Active,
			Inactive: c.Advisor.Licenses.Inactive,
		}
	}
	return out
}
