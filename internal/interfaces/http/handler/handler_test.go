package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	financeapp "github.com/contas/backend/internal/application/finance"
	partnerapp "github.com/contas/backend/internal/application/partner"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/contas/backend/internal/infrastructure/config"
	"github.com/contas/backend/internal/infrastructure/persistence"
	"github.com/contas/backend/internal/interfaces/http/middleware"
	"github.com/contas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var settlementDay = valueobject.MustParseDate("2024-08-01")

// newTestAPI wires the handlers over an in-memory SQLite database
func newTestAPI(t *testing.T, opts ...financeapp.ObligationServiceOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	decimal.MarshalJSONWithoutQuotes = true

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate())

	counterpartyRepo := persistence.NewGormCounterpartyRepository(db.DB)
	obligationRepo := persistence.NewGormObligationRepository(db.DB)

	opts = append([]financeapp.ObligationServiceOption{
		financeapp.WithClock(func() valueobject.Date { return settlementDay }),
	}, opts...)
	obligationService := financeapp.NewObligationService(obligationRepo, counterpartyRepo, opts...)
	counterpartyService := partnerapp.NewCounterpartyService(counterpartyRepo)

	systemHandler := NewSystemHandler("contas-backend", "test", db)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(middleware.RequestID())
	engine.NoRoute(systemHandler.NoRoute)
	engine.NoMethod(systemHandler.NoMethod)

	router.NewRouter(engine).
		Register(NewObligationHandler(obligationService).Routes()).
		Register(NewCounterpartyHandler(counterpartyService, obligationService).Routes()).
		Register(systemHandler.Routes()).
		Setup()

	return engine
}

func doRequest(engine http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeObject(t, w)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, w.Body.String())
	return errInfo["code"].(string)
}

func obligationBody(description string, amount float64, kind, forecastDate string, counterpartyID *int) string {
	ref := "null"
	if counterpartyID != nil {
		ref = fmt.Sprint(*counterpartyID)
	}
	return fmt.Sprintf(`{"descricao":%q,"valor":%v,"tipo":%q,"data_previsao":%q,"fornecedor_cliente_id":%s}`,
		description, amount, kind, forecastDate, ref)
}

func intPtr(v int) *int {
	return &v
}
