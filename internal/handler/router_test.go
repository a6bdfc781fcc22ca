//go:build unit

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pos-api/internal/handler/api"
	"pos-api/internal/handler/middleware"
	"pos-api/internal/infra/db"
	"pos-api/internal/infra/tokenstore"
	"pos-api/internal/pkg/clock"
	"pos-api/internal/pkg/config"
	"pos-api/internal/pkg/jwt"
	"pos-api/internal/usecase/commands"
	"pos-api/internal/usecase/queries"
)

// recordingPurchaseRepo keeps every row handed to it so tests can assert on
// the exact persisted shape.
type recordingPurchaseRepo struct {
	nextTransactionID int64
	headers           []commands.TransactionHeader
	details           []commands.DetailRow
	amountUpdates     int
}

func (r *recordingPurchaseRepo) CreateTransaction(_ context.Context, _ db.DBTX, header commands.TransactionHeader) (int64, error) {
	r.headers = append(r.headers, header)
	r.nextTransactionID++
	return r.nextTransactionID, nil
}

func (r *recordingPurchaseRepo) CreateDetail(_ context.Context, _ db.DBTX, row commands.DetailRow) error {
	r.details = append(r.details, row)
	return nil
}

func (r *recordingPurchaseRepo) UpdateTransactionAmounts(_ context.Context, _ db.DBTX, _, _, _ int64) error {
	r.amountUpdates++
	return nil
}

type passthroughUoW struct{}

func (passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fixedProductStore struct {
	view *queries.ProductView
}

func (s fixedProductStore) FindByCode(context.Context, string) (*queries.ProductView, error) {
	return s.view, nil
}

type fixedTaxStore struct {
	view *queries.TaxView
}

func (s fixedTaxStore) FindByID(context.Context, int64) (*queries.TaxView, error) {
	return s.view, nil
}

func newTestServer(t *testing.T) (*gin.Engine, *recordingPurchaseRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	clk := clock.NewRealClock()
	jwtService := jwt.NewService(cfg.JWT.Secret, 24*time.Hour, clk)
	sessionUC := commands.NewSessionUseCase(tokenstore.NewMemoryStore(), jwtService, clk)

	repo := &recordingPurchaseRepo{}
	purchaseUC := commands.NewPurchaseUseCase(repo, passthroughUoW{}, clock.NewRealClock(), cfg.POS)

	catalogQ := queries.NewCatalogQueries(
		fixedProductStore{view: &queries.ProductView{ProductID: 1, Code: "4902505268618", Name: "ボールペン", Price: 150}},
		fixedTaxStore{view: &queries.TaxView{TaxID: 1, TaxRate: 0.10}},
	)

	engine := gin.New()
	NewRouter(engine, cfg,
		api.NewAuthHandler(sessionUC),
		api.NewCatalogHandler(catalogQ),
		api.NewPurchaseHandler(purchaseUC),
		middleware.NewAuthMiddleware(sessionUC),
	)
	return engine, repo
}

func do(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func startSession(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	rec := do(engine, http.MethodPost, "/auth/start", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func TestRouter_PurchaseFlow(t *testing.T) {
	engine, repo := newTestServer(t)

	// 未認証はワークフローに到達しない
	rec := do(engine, http.MethodPost, "/purchase", "", gin.H{"items": []gin.H{}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, repo.headers)

	token := startSession(t, engine)

	rec = do(engine, http.MethodPost, "/purchase", token, gin.H{
		"items": []gin.H{
			{"prd_id": 1, "code": "4902505268618", "name": "ボールペン", "price": 1000, "quantity": 2},
			{"prd_id": 2, "code": "4901991647259", "name": "ノート", "price": 500, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TransactionID int64 `json:"trd_id"`
		Total         int64 `json:"total_amt"`
		Subtotal      int64 `json:"ttl_amt_ex_tax"`
		Tax           int64 `json:"tax_amt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(2750), body.Total)
	require.Equal(t, int64(2500), body.Subtotal)
	require.Equal(t, int64(250), body.Tax)

	require.Len(t, repo.headers, 1)
	require.Equal(t, 1, repo.amountUpdates)
	require.Len(t, repo.details, 3)
	require.Equal(t, 1, repo.details[0].DetailID)
	require.Equal(t, 2, repo.details[1].DetailID)
	require.Equal(t, 1, repo.details[2].DetailID)
	require.Equal(t, "4901991647259", repo.details[2].ProductCode)
}

func TestRouter_RevokeEndsSession(t *testing.T) {
	engine, _ := newTestServer(t)
	token := startSession(t, engine)

	rec := do(engine, http.MethodGet, "/products?code=4902505268618", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(engine, http.MethodPost, "/auth/revoke", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(engine, http.MethodGet, "/products?code=4902505268618", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_HealthAndIndexArePublic(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := do(engine, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(engine, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
