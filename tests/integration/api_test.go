package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpHandler "fluxa-wallet/internal/adapter/http/handler"
	redisStorage "fluxa-wallet/internal/adapter/storage/redis"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/internal/service"
	"fluxa-wallet/pkg/logger"
)

// testApp builds the full wallet stack behind a real HTTP server: gin
// router, middleware, handlers, services, and miniredis-backed stores.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	ledger *service.LedgerEngine
	token  string
}

type appOptions struct {
	passphrase   string
	nfcAvailable bool
	withRedis    bool
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	app := &testApp{}
	log := logger.New("debug", false)

	var (
		rateLimitStore *redisStorage.RateLimitStore
		nonceStore     ports.NonceStore
		checkers       []ports.HealthChecker
	)
	if opts.withRedis {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)
		app.redis = mr

		rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { rdb.Close() })

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		nonceStore = redisStorage.NewNonceStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	signingSvc := service.NewSHA256SigningService()
	ledgerSvc := service.NewLedgerEngine(signingSvc, log)
	ledgerSvc.InitWallet()
	app.ledger = ledgerSvc

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	authSvc, err := service.NewLocalAuthService(opts.passphrase, ledgerSvc, hashSvc, tokenSvc, log)
	require.NoError(t, err)

	proximitySvc := service.NewProximityService(ledgerSvc, nonceStore, opts.nfcAvailable, true, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		ProximitySvc:   proximitySvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
	RequestID string          `json:"request_id"`
	Timestamp string          `json:"timestamp"`
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodeInto(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

type walletBody struct {
	ID             string `json:"id"`
	OnlineBalance  int64  `json:"online_balance"`
	OfflineBalance int64  `json:"offline_balance"`
	TotalBalance   int64  `json:"total_balance"`
}

type txBody struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Signature string `json:"signature"`
	Type      string `json:"tx_type"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func TestWalletLifecycle(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.NotEmpty(t, env.Timestamp)

	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(25000), w.OnlineBalance)
	assert.Equal(t, int64(15000), w.OfflineBalance)
	assert.Equal(t, int64(40000), w.TotalBalance)
}

func TestVaultDepositAndWithdraw(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodPost, "/api/v1/vault/deposit", map[string]int64{"amount": 5000})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(20000), w.OnlineBalance)
	assert.Equal(t, int64(20000), w.OfflineBalance)
	assert.Equal(t, int64(40000), w.TotalBalance)

	resp, env = app.do(t, http.MethodPost, "/api/v1/vault/withdraw", map[string]int64{"amount": 10000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, env, &w)
	assert.Equal(t, int64(30000), w.OnlineBalance)
	assert.Equal(t, int64(10000), w.OfflineBalance)

	// Vault transfers appear in the journal as confirmed entries.
	resp, env = app.do(t, http.MethodGet, "/api/v1/transactions?type=transfer", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txs []txBody
	decodeInto(t, env, &txs)
	require.Len(t, txs, 2)
	assert.Equal(t, "confirmed", txs[0].Status)
}

func TestVaultDeposit_InsufficientOnlineBalance(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodPost, "/api/v1/vault/deposit", map[string]int64{"amount": 30000})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "LED_002", env.ErrorCode)

	// State unchanged after the failure.
	_, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(25000), w.OnlineBalance)
}

func TestOfflineSendSignAndVerify(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodPost, "/api/v1/transactions/offline", map[string]interface{}{
		"to_wallet_id":  "wallet_b",
		"merchant_name": "Corner Shop",
		"amount":        3000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tx txBody
	decodeInto(t, env, &tx)
	assert.Equal(t, "offline", tx.Type)
	assert.Equal(t, "pending", tx.Status)
	require.NotEmpty(t, tx.Signature)

	// The offline balance is debited while the entry is pending.
	_, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(12000), w.OfflineBalance)
	assert.Equal(t, int64(37000), w.TotalBalance)

	// Rebuild the canonical string and verify the stamp over the API.
	canonical := fmt.Sprintf("%s|%s|%s|%d|%s", tx.ID, w.ID, "wallet_b", tx.Amount, tx.Timestamp)
	resp, env = app.do(t, http.MethodPost, "/api/v1/signatures/verify", map[string]string{
		"data":      canonical,
		"signature": tx.Signature,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var verify struct {
		Valid bool `json:"valid"`
	}
	decodeInto(t, env, &verify)
	assert.True(t, verify.Valid)

	// A tampered canonical string fails verification.
	resp, env = app.do(t, http.MethodPost, "/api/v1/signatures/verify", map[string]string{
		"data":      canonical + "x",
		"signature": tx.Signature,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, env, &verify)
	assert.False(t, verify.Valid)
}

func TestCancelRestoresBalance(t *testing.T) {
	app := newTestApp(t, appOptions{})

	_, env := app.do(t, http.MethodPost, "/api/v1/transactions/offline", map[string]interface{}{
		"to_wallet_id":  "wallet_b",
		"merchant_name": "Corner Shop",
		"amount":        3000,
	})
	var tx txBody
	decodeInto(t, env, &tx)

	resp, env := app.do(t, http.MethodPost, "/api/v1/transactions/"+tx.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(15000), w.OfflineBalance)
	assert.Equal(t, int64(40000), w.TotalBalance)

	// A second cancel must not credit the balance again.
	resp, env = app.do(t, http.MethodPost, "/api/v1/transactions/"+tx.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "LED_005", env.ErrorCode)

	_, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	decodeInto(t, env, &w)
	assert.Equal(t, int64(40000), w.TotalBalance)
}

func TestConfirmAndStats(t *testing.T) {
	app := newTestApp(t, appOptions{})

	_, env := app.do(t, http.MethodPost, "/api/v1/transactions/online", map[string]interface{}{
		"to_wallet_id":  "wallet_b",
		"merchant_name": "Web Store",
		"amount":        4000,
	})
	var tx txBody
	decodeInto(t, env, &tx)

	resp, env := app.do(t, http.MethodPost, "/api/v1/transactions/"+tx.ID+"/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, env, &tx)
	assert.Equal(t, "confirmed", tx.Status)

	// Confirming again is a no-op.
	resp, _ = app.do(t, http.MethodPost, "/api/v1/transactions/"+tx.ID+"/confirm", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Cancelling a confirmed entry is rejected.
	resp, env = app.do(t, http.MethodPost, "/api/v1/transactions/"+tx.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "LED_005", env.ErrorCode)

	_, env = app.do(t, http.MethodGet, "/api/v1/wallet/stats", nil)
	var stats struct {
		TotalTransactions     int   `json:"total_transactions"`
		ConfirmedTransactions int   `json:"confirmed_transactions"`
		TotalVolume           int64 `json:"total_volume"`
	}
	decodeInto(t, env, &stats)
	assert.Equal(t, 1, stats.TotalTransactions)
	assert.Equal(t, 1, stats.ConfirmedTransactions)
	assert.Equal(t, int64(4000), stats.TotalVolume)
}

func TestAuthProtectedAPI(t *testing.T) {
	app := newTestApp(t, appOptions{passphrase: "open-sesame"})

	// Without a token the wallet routes are locked.
	resp, env := app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_002", env.ErrorCode)

	// Wrong passphrase is rejected.
	resp, env = app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"passphrase": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_001", env.ErrorCode)

	// Correct passphrase issues a bearer token.
	resp, env = app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"passphrase": "open-sesame"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token  string `json:"token"`
		Expiry int64  `json:"expiry"`
	}
	decodeInto(t, env, &login)
	require.NotEmpty(t, login.Token)
	assert.Greater(t, login.Expiry, time.Now().Unix())

	app.token = login.Token
	resp, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var w walletBody
	decodeInto(t, env, &w)
	assert.Equal(t, int64(40000), w.TotalBalance)
}

func TestNFCOverHTTP(t *testing.T) {
	app := newTestApp(t, appOptions{nfcAvailable: true, withRedis: true})

	resp, env := app.do(t, http.MethodGet, "/api/v1/proximity/nfc/available", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = app.do(t, http.MethodPost, "/api/v1/proximity/nfc/send", map[string]interface{}{
		"receiver_id": "wallet_b",
		"amount":      3000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payload struct {
		TxID      string `json:"tx_id"`
		Signature string `json:"signature"`
	}
	decodeInto(t, env, &payload)
	assert.NotEmpty(t, payload.TxID)
	assert.NotEmpty(t, payload.Signature)

	// The send is journaled through the ledger.
	_, env = app.do(t, http.MethodGet, "/api/v1/transactions?type=offline", nil)
	var txs []txBody
	decodeInto(t, env, &txs)
	require.Len(t, txs, 1)
	assert.Equal(t, payload.TxID, txs[0].ID)

	// Receiving the same payload twice trips replay detection.
	inbound := map[string]interface{}{
		"tx_id":    "tx_inbound_1",
		"sender":   "wallet_c",
		"receiver": "wallet_main",
		"amount":   2000,
	}
	resp, _ = app.do(t, http.MethodPost, "/api/v1/proximity/nfc/receive", inbound)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = app.do(t, http.MethodPost, "/api/v1/proximity/nfc/receive", inbound)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PRX_002", env.ErrorCode)
}

func TestNFCUnavailableByDefault(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodPost, "/api/v1/proximity/nfc/send", map[string]interface{}{
		"receiver_id": "wallet_b",
		"amount":      3000,
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "PRX_003", env.ErrorCode)
}

func TestBluetoothOverHTTP(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, env := app.do(t, http.MethodGet, "/api/v1/proximity/bluetooth/devices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var devices []struct {
		ID   string `json:"id"`
		RSSI int    `json:"rssi"`
	}
	decodeInto(t, env, &devices)
	require.Len(t, devices, 2)

	resp, env = app.do(t, http.MethodPost, "/api/v1/proximity/bluetooth/connect", map[string]string{
		"device_id": devices[0].ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = app.do(t, http.MethodPost, "/api/v1/proximity/bluetooth/send", map[string]interface{}{
		"device_id":   devices[0].ID,
		"receiver_id": "wallet_b",
		"amount":      2500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payload struct {
		Amount int64 `json:"amount"`
	}
	decodeInto(t, env, &payload)
	assert.Equal(t, int64(2500), payload.Amount)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, appOptions{withRedis: true})

	resp, err := app.server.Client().Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Killing Redis degrades the health report.
	app.redis.Close()
	resp2, err := app.server.Client().Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp2.StatusCode)
}

func TestRateLimitOverHTTP(t *testing.T) {
	app := newTestApp(t, appOptions{passphrase: "open-sesame", withRedis: true})

	// The auth group allows 10 requests per minute per client.
	for i := 0; i < 10; i++ {
		resp, _ := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"passphrase": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "request %d", i+1)
	}

	resp, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"passphrase": "wrong"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_001", env.ErrorCode)
}
