package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/fiado-api/internal/application/analytics"
	"github.com/jhoicas/fiado-api/internal/application/dto"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/application/usecase"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
	apphttp "github.com/jhoicas/fiado-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCustomerRepo) UpdateProfile(c *entity.Customer) error {
	stored := r.customers[c.ID]
	stored.Name = c.Name
	stored.Phone = c.Phone
	stored.Address = c.Address
	return nil
}

func (r *fakeCustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	r.customers[id].OutstandingBalance = balance
	return nil
}

func (r *fakeCustomerRepo) GetByIDForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

type fakeTxRepo struct {
	txs []entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *fakeTxRepo) ListByCustomer(customerID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.txs {
		if tx.CustomerID == customerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListByDateRange(from, to time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.txs {
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTxRepo) ListRecent(limit int) ([]entity.Transaction, error) {
	n := len(r.txs)
	var out []entity.Transaction
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.txs[i])
	}
	return out, nil
}

// fakeTxRunner ejecuta fn directamente sobre los repos compartidos; los tests
// de atomicidad real viven junto al caso de uso de alta.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	txs       *fakeTxRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.CustomerRepository, repository.TransactionRepository) error) error {
	return fn(r.customers, r.txs)
}

type fakeAnalyticsRepo struct {
	totals repository.CustomerTotals
}

func (r *fakeAnalyticsRepo) GetCustomerTotals(context.Context) (repository.CustomerTotals, error) {
	return r.totals, nil
}

type fakePDFGenerator struct{}

func (g *fakePDFGenerator) GenerateStatementPDF(context.Context, *entity.Customer, domledger.Statement) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type fakeLLM struct {
	result *dto.LineItemAnalysisDTO
}

func (f *fakeLLM) AnalyzeStatementLineItem(context.Context, dto.LineItemAnalysisRequest) (*dto.LineItemAnalysisDTO, error) {
	return f.result, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la API completa sobre repos en memoria.
func buildTestApp() (*fiber.App, *fakeCustomerRepo) {
	customers := newFakeCustomerRepo()
	txs := &fakeTxRepo{}
	runner := &fakeTxRunner{customers: customers, txs: txs}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:     appledger.NewCustomerUseCase(customers),
		AddTransaction: appledger.NewAddTransactionUseCase(runner),
		TransactionUC:  appledger.NewTransactionQueryUseCase(customers, txs),
		StatementUC:    appledger.NewStatementUseCase(customers, txs, &fakePDFGenerator{}),
		DashboardUC:    appanalytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, txs),
		AIUC:           usecase.NewAIUseCase(&fakeLLM{result: &dto.LineItemAnalysisDTO{}}),
	})
	return app, customers
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
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
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Alta de cliente válida → 201 con saldo en cero.
func TestCustomers_CrearCliente(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Juluri Rani",
		Phone: "9876543210",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CustomerResponse
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.OutstandingBalance.IsZero(), "el saldo inicial debe ser cero")
	assert.Equal(t, entity.DefaultSalesHistory, created.SalesHistorySummary)
}

// Teléfono fuera de rango → 400 con el campo ofensor en la respuesta.
func TestCustomers_TelefonoInvalido(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Juluri Rani",
		Phone: "123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "phone", errResp.Field)
}

// Cliente inexistente → 404 con código NOT_FOUND.
func TestCustomers_NoEncontrado(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/customers/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

// Venta → 201 y el saldo nuevo viaja en la respuesta.
func TestTransactions_VentaActualizaSaldo(t *testing.T) {
	app, customers := buildTestApp()

	createResp := doJSON(t, app, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Kavita Sharma",
		Phone: "9123456780",
	})
	var customer dto.CustomerResponse
	decodeBody(t, createResp, &customer)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		CustomerID:  customer.ID,
		Type:        "sale",
		Amount:      decimal.NewFromInt(1000),
		Description: "Silk saree",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result dto.AddTransactionResponse
	decodeBody(t, resp, &result)
	assert.True(t, decimal.NewFromInt(1000).Equal(result.NewBalance))

	stored, err := customers.GetByID(customer.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(stored.OutstandingBalance))
}

// Movimiento para un cliente inexistente → 404.
func TestTransactions_ClienteInexistente(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		CustomerID:  "no-existe",
		Type:        "sale",
		Amount:      decimal.NewFromInt(100),
		Description: "Saree",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Extracto tras venta y abono: apertura cero, dos líneas, total al día.
func TestStatement_VentaYAbono(t *testing.T) {
	app, _ := buildTestApp()

	createResp := doJSON(t, app, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Ramesh Gupta",
		Phone: "9988776655",
	})
	var customer dto.CustomerResponse
	decodeBody(t, createResp, &customer)

	doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		CustomerID: customer.ID, Type: "sale",
		Amount: decimal.NewFromInt(1000), Description: "Wedding saree",
	})
	doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		CustomerID: customer.ID, Type: "payment",
		Amount: decimal.NewFromInt(400), PaymentMode: "Cash",
	})

	resp := doJSON(t, app, http.MethodGet, "/api/customers/"+customer.ID+"/statement", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var statement dto.StatementDTO
	decodeBody(t, resp, &statement)
	assert.True(t, statement.OpeningBalance.IsZero())
	require.Len(t, statement.Lines, 2)
	assert.True(t, decimal.NewFromInt(600).Equal(statement.TotalDue))
	assert.True(t, decimal.NewFromInt(600).Equal(statement.Lines[1].RunningBalance))
}

// Descarga del PDF: Content-Type y Content-Disposition de descarga.
func TestStatement_DescargaPDF(t *testing.T) {
	app, _ := buildTestApp()

	createResp := doJSON(t, app, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Juluri Rani",
		Phone: "9876543210",
	})
	var customer dto.CustomerResponse
	decodeBody(t, createResp, &customer)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/"+customer.ID+"/statement/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "extracto_juluri_rani.pdf")
}

// Dashboard sin datos → totales presentes y en cero.
func TestDashboard_Resumen(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary dto.DashboardSummaryDTO
	decodeBody(t, resp, &summary)
	assert.Equal(t, 0, summary.TotalCustomers)
	assert.True(t, summary.TodaySales.IsZero())
}

// Análisis IA sin descripción → 400 con el campo ofensor.
func TestAI_ValidacionEntrada(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/ai/analyze-line-item", dto.LineItemAnalysisRequest{
		CustomerName: "Juluri Rani",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "item_description", errResp.Field)
}
