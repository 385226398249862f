package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/exitplanner-pricing/internal/application/dto"
	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	apphttp "github.com/tu-usuario/exitplanner-pricing/internal/interfaces/http"
	"github.com/tu-usuario/exitplanner-pricing/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre el catálogo
// comercial y el directorio de demostración, con las mismas rutas que cmd/api.
func buildTestApp() *fiber.App {
	cat := catalog.Default()
	dir := memory.NewCompanyDirectory(memory.SeedCompanies())

	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		PricingUC:    usecase.NewPricingUseCase(cat, dir),
		ComparisonUC: usecase.NewComparisonUseCase(cat),
		CompanyUC:    usecase.NewCompanyUseCase(dir),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y vista de precios
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPlans_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/plans", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PlanListResponse
	decodeJSON(t, resp, &out)
	require.Len(t, out.Items, 5)
	assert.Equal(t, catalog.PlanBusinessFree, out.Items[0].Name)
	assert.Equal(t, "$1,000/year", out.Items[2].PriceLabel)
}

func TestGetPricingView_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/pricing/view?company=Innovate+Labs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AccountViewResponse
	decodeJSON(t, resp, &out)
	assert.True(t, out.Selected)
	assert.Equal(t, "Innovate Labs", out.Company)
	assert.Equal(t, "premium_advisor_with_mini", out.Scenario)
	require.Len(t, out.Cards, 5)
}

func TestGetPricingView_CuentaInexistente(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/pricing/view?company=Nadie", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "cuenta ausente no es error: vista por defecto")

	var out dto.AccountViewResponse
	decodeJSON(t, resp, &out)
	assert.False(t, out.Selected)
	assert.Equal(t, catalog.PlanBusinessFree, out.CurrentPlan)
}

func TestGetPricingView_RequestIDEnRespuesta(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/pricing/view?company=Acme+Corp", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID),
		"toda respuesta lleva id de correlación")
}

func TestGetScenarios_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/diagnostics/scenarios", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ScenarioReportResponse
	decodeJSON(t, resp, &out)
	require.Len(t, out, 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de comparación
// ──────────────────────────────────────────────────────────────────────────────

func TestPostComparisonGrid_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/comparison/grid", dto.ComparisonGridRequest{
		Selection: []string{catalog.PlanBusinessFree, catalog.PlanBusinessMax},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComparisonGridResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, []string{catalog.PlanBusinessFree, catalog.PlanBusinessMax}, out.Columns)
	assert.Len(t, out.Rows, 11)
}

func TestPostComparisonGrid_PlanDesconocido(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/comparison/grid", dto.ComparisonGridRequest{
		Selection: []string{"Business Ultra"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "UNKNOWN_PLAN", out.Code)
}

func TestPostComparisonGrid_SeleccionVacia(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/comparison/grid", dto.ComparisonGridRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestPostComparisonColumns_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/comparison/columns", dto.ReplaceColumnRequest{
		Selection: []string{catalog.PlanBusinessFree, catalog.PlanBusinessMini},
		Index:     0,
		Plan:      catalog.PlanAdvisorBasic,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComparisonSelectionResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, []string{catalog.PlanAdvisorBasic, catalog.PlanBusinessMini}, out.Selection)
	assert.Equal(t, out.Selection, out.Grid.Columns)
}

func TestPostComparisonColumns_IndiceFueraDeRango(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/comparison/columns", dto.ReplaceColumnRequest{
		Selection: []string{catalog.PlanBusinessFree},
		Index:     7,
		Plan:      catalog.PlanBusinessMax,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "INVALID_INPUT", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Directorio de cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCompanies_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/companies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CompanyListResponse
	decodeJSON(t, resp, &out)
	assert.Len(t, out.Standalone, 4)
	require.Len(t, out.Linked, 1)
	require.NotNil(t, out.Linked[0].LinkedTo)
	assert.Equal(t, "Acme Corp", out.Linked[0].LinkedTo.Name)
}

func TestGetCompanyByID_OK(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/companies/globaltech", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CompanyResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "GlobalTech Solutions", out.Name)
	assert.Equal(t, catalog.PlanBusinessMax, out.BusinessPlan)
}

func TestGetCompanyByID_NoEncontrada(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/companies/fantasma", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "COMPANY_NOT_FOUND", out.Code)
}
