package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contas/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)
	assert.NotNil(t, mockDB.SqlDB)
	mockDB.ExpectationsWereMet(t)
}

func TestNewSQLiteDatabase(t *testing.T) {
	db := NewSQLiteDatabase(t)

	require.NoError(t, db.Ping())
	assert.True(t, db.DB.Migrator().HasTable("fornecedor_cliente"))
	assert.True(t, db.DB.Migrator().HasTable("contas_a_pagar_e_receber"))
}

func TestNewTestContext(t *testing.T) {
	tc := NewTestContext(t)

	assert.NotNil(t, tc.Context)
	assert.NotNil(t, tc.Recorder)
	assert.NotNil(t, tc.Engine)
	assert.Equal(t, http.MethodGet, tc.Context.Request.Method)
}

func TestTestContext_Setters(t *testing.T) {
	tc := NewTestContext(t)

	tc.SetRequestID("req-123")
	tc.SetParam("id", "7")
	tc.SetHeader("X-Custom", "yes")

	assert.Equal(t, "req-123", tc.Context.GetString(logger.GinRequestIDKey))
	assert.Equal(t, "7", tc.Context.Param("id"))
	assert.Equal(t, "yes", tc.Context.GetHeader("X-Custom"))
}

func TestTestContext_Response(t *testing.T) {
	tc := NewTestContext(t)
	tc.Context.JSON(http.StatusCreated, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, tc.ResponseCode())
	assert.JSONEq(t, `{"id":1}`, string(tc.ResponseBody()))
}

func TestRunHTTPTestCases(t *testing.T) {
	engine := NewEngine(t, nil, NewSQLiteDatabase(t))

	RunHTTPTestCases(t, engine, []HTTPTestCase{
		{
			Name:           "create counterparty",
			Method:         http.MethodPost,
			Path:           "/fornecedor-cliente",
			Body:           map[string]any{"nome": "Casa de musica"},
			ExpectedStatus: http.StatusCreated,
			ExpectedBody:   map[string]any{"id": float64(1), "nome": "Casa de musica"},
		},
		{
			Name:           "raw string body",
			Method:         http.MethodPost,
			Path:           "/fornecedor-cliente",
			Body:           `{"nome":`,
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedCode:   "ERR_INVALID_JSON",
		},
		{
			Name:           "missing counterparty",
			Path:           "/fornecedor-cliente/9",
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "ERR_NOT_FOUND",
		},
		{
			Name:           "list",
			Path:           "/fornecedor-cliente",
			ExpectedStatus: http.StatusOK,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				list := JSONAs[[]map[string]any](t, w)
				assert.Len(t, list, 1)
			},
		},
	})
}
