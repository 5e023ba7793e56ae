package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appanalytics "github.com/jhoicas/irelec-api/internal/application/analytics"
	"github.com/jhoicas/irelec-api/internal/application/billing"
	infrapdf "github.com/jhoicas/irelec-api/internal/infrastructure/pdf"
	"github.com/jhoicas/irelec-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/irelec-api/internal/interfaces/http"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre una base SQLite en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := buildTestAppWithDB(t)
	return app
}

func buildTestAppWithDB(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlite.Open(fmt.Sprintf("file:http_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })

	log := logger.NewNop()
	customerRepo := sqlite.NewCustomerRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	issuer := billing.Issuer{Name: "IRELEC", Currency: "FCFA", Unit: "kWh", SupportEmail: "support@irelec.cm"}

	app := fiber.New()
	app.Use(apphttp.RequestID(), apphttp.AccessLog(log))
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:  billing.NewCustomerUseCase(customerRepo, log),
		LedgerUC:    billing.NewLedgerUseCase(sqlite.NewTxRunner(db), customerRepo, invoiceRepo, log),
		InvoicePDF:  billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator(), issuer),
		DashboardUC: appanalytics.NewDashboardUseCase(sqlite.NewAnalyticsRepository(db), invoiceRepo, "FCFA"),
	})
	return app, db
}

// doJSON lanza la petición y decodifica el cuerpo JSON (si lo hay).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
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
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func registerCustomer(t *testing.T, app *fiber.App, meter string, tariff any) int64 {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"full_name":       "Jean Dupont",
		"meter_number":    meter,
		"contract_number": "CNT-" + meter,
		"location":        "Douala",
		"tariff":          tariff,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	return int64(body["id"].(float64))
}

func recordInvoice(t *testing.T, app *fiber.App, customerID int64, prev, cur any) map[string]any {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id":    customerID,
		"previous_index": prev,
		"current_index":  cur,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CrearYConsultar(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jean Dupont", body["full_name"])
	assert.Equal(t, "75", body["tariff"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/customers/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/customers/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestCustomers_Duplicado(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "COMP-1", 75)

	resp, body := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"full_name":       "Otro",
		"meter_number":    "COMP-1",
		"contract_number": "CNT-OTRO",
		"tariff":          50,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestCustomers_Validacion(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"meter_number": "COMP-1",
		"tariff":       75,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, raw.StatusCode)
}

func TestCustomers_ListaYCambioDeTarifa(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)
	registerCustomer(t, app, "COMP-2", 60)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)

	resp, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/customers/%d/tariff", id), map[string]any{"tariff": "82.5"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "82.5", body["tariff"])

	resp, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/customers/%d/tariff", id), map[string]any{"tariff": -1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/customers/999/tariff", map[string]any{"tariff": 10})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_RegistrarEjemploReferencia(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)

	inv := recordInvoice(t, app, id, 100, 150)
	assert.Equal(t, "50", inv["consumption"])
	assert.Equal(t, "75", inv["tariff_applied"])
	assert.Equal(t, "3750", inv["amount"])
	assert.Equal(t, "Jean Dupont", inv["customer_name"])
	number := inv["invoice_number"].(string)
	assert.Regexp(t, fmt.Sprintf(`^FACT-\d{8}-%04d$`, id), number)

	resp, body := doJSON(t, app, http.MethodGet, "/api/invoices/"+number, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, number, body["invoice_number"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/invoices/FACT-00000000-0000", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestInvoices_Errores(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)

	resp, body := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": id, "previous_index": 200, "current_index": 150,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_READING", body["code"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": 999, "previous_index": 1, "current_index": 2,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/invoices", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["count"], "las lecturas inválidas no se persisten")
}

func TestInvoices_PreviewNoPersiste(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)

	resp, body := doJSON(t, app, http.MethodPost, "/api/invoices/preview", map[string]any{
		"customer_id": id, "previous_index": "100", "current_index": "150", "tariff": "80",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "4000", body["amount"])
	assert.Equal(t, "80", body["tariff_applied"])

	_, list := doJSON(t, app, http.MethodGet, "/api/invoices", nil)
	assert.Equal(t, float64(0), list["count"])
}

func TestInvoices_HistorialFiltrado(t *testing.T) {
	app := buildTestApp(t)
	a := registerCustomer(t, app, "COMP-A", 75)
	b := registerCustomer(t, app, "COMP-B", 10)

	first := recordInvoice(t, app, a, 0, 10)
	second := recordInvoice(t, app, a, 10, 20)
	recordInvoice(t, app, b, 0, 5)
	assert.Equal(t, first["invoice_number"].(string)+"-02", second["invoice_number"])

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/invoices?customer_id=%d", a), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "1500", body["total_amount"])
	for _, raw := range body["invoices"].([]any) {
		inv := raw.(map[string]any)
		assert.Equal(t, float64(a), inv["customer_id"])
		assert.NotEmpty(t, inv["invoice_number"])
	}

	_, all := doJSON(t, app, http.MethodGet, "/api/invoices", nil)
	assert.Equal(t, float64(3), all["count"])
	assert.Equal(t, "1550", all["total_amount"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/invoices?month=3", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/invoices?customer_id=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_DescargaPDF(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)
	number := recordInvoice(t, app, id, 100, 150)["invoice_number"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+number+"/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="`+number+`.pdf"`, resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, _ = doJSON(t, app, http.MethodGet, "/api/invoices/FACT-00000000-0000/pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero y middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	app := buildTestApp(t)
	id := registerCustomer(t, app, "COMP-1", 75)
	number := recordInvoice(t, app, id, 100, 150)["invoice_number"].(string)

	resp, body := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_customers"])
	assert.Equal(t, float64(1), body["total_invoices"])
	assert.Equal(t, "3750", body["total_revenue"])
	assert.Equal(t, "FCFA", body["currency"])
	require.Len(t, body["recent_invoices"], 1)
	recent := body["recent_invoices"].([]any)[0].(map[string]any)
	assert.Equal(t, number, recent["invoice_number"])
	assert.Equal(t, "Jean Dupont", recent["customer_name"])
	assert.Equal(t, "3750", recent["amount"])
}

func TestDashboard_ErrorDeAlmacenamiento(t *testing.T) {
	app, db := buildTestAppWithDB(t)
	require.NoError(t, db.Migrator().DropTable("invoices"))

	resp, body := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestID(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/customers", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "se genera un ID si no llega")

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}
