package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/identity"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/registry"
	"github.com/khata-dev/khata/internal/sqlite"
	"github.com/khata-dev/khata/internal/stock"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := audit.NewLog(db)
	reg := registry.NewService(db, log)
	eng := ledger.NewEngine(db, reg, log)
	stk := stock.NewService(db, log)
	ident := identity.NewService(db, log)
	return NewServer(reg, eng, stk, log, ident)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func openTestAccount(t *testing.T, h http.Handler, name, typ string) int64 {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/accounts/", openAccountRequest{Name: name, Type: typ})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]int64](t, w)["id"]
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()
	w := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestPostingFlow(t *testing.T) {
	h := newTestServer(t).Handler()

	cash := openTestAccount(t, h, "Cash", "asset")
	sales := openTestAccount(t, h, "Sales", "revenue")

	w := doJSON(t, h, http.MethodPost, "/api/vouchers", submitVoucherRequest{
		Description: "Cash sale",
		Kind:        "Receipt",
		Lines: []voucherLineRequest{
			{AccountID: cash, Amount: "150.00", Side: "debit"},
			{AccountID: sales, Amount: "150.00", Side: "credit"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	voucher := decode[voucherResponse](t, w)
	assert.Equal(t, "RV-000001", voucher.Ref)
	assert.Equal(t, "Receipt", voucher.Kind)

	// Balances reflect the posting.
	w = doJSON(t, h, http.MethodGet, "/api/accounts/"+itoa(cash), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "150.00", decode[accountJSON](t, w).Balance)

	w = doJSON(t, h, http.MethodGet, "/api/accounts/"+itoa(sales), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "-150.00", decode[accountJSON](t, w).Balance)

	// The account ledger lists the posted line.
	w = doJSON(t, h, http.MethodGet, "/api/ledger/"+itoa(cash), nil)
	require.Equal(t, http.StatusOK, w.Code)
	led := decode[ledgerResponse](t, w)
	require.Len(t, led.Lines, 1)
	assert.Equal(t, voucher.ID, led.Lines[0].VoucherID)
	assert.Equal(t, "150.00", led.Lines[0].Amount)
	assert.Equal(t, "debit", led.Lines[0].Side)
}

func TestReports(t *testing.T) {
	h := newTestServer(t).Handler()

	cash := openTestAccount(t, h, "Cash", "asset")
	sales := openTestAccount(t, h, "Sales", "revenue")

	w := doJSON(t, h, http.MethodPost, "/api/vouchers", submitVoucherRequest{
		Description: "Cash sale",
		Lines: []voucherLineRequest{
			{AccountID: cash, Amount: "200", Side: "debit"},
			{AccountID: sales, Amount: "200", Side: "credit"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/api/reports/trial-balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tb := decode[trialBalanceJSON](t, w)
	require.Len(t, tb.Rows, 2)

	// Stored balances are summed as-is: the credited revenue account
	// sits at -200, so the totals carry that sign and the equation
	// check fails until a closing entry moves income into equity.
	w = doJSON(t, h, http.MethodGet, "/api/reports/income-statement", nil)
	require.Equal(t, http.StatusOK, w.Code)
	is := decode[incomeStatementJSON](t, w)
	assert.Equal(t, "-200.00", is.TotalRevenue)
	assert.Equal(t, "0.00", is.TotalExpense)
	assert.Equal(t, "-200.00", is.NetIncome)

	w = doJSON(t, h, http.MethodGet, "/api/reports/balance-sheet", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bs := decode[balanceSheetJSON](t, w)
	assert.Equal(t, "200.00", bs.TotalAssets)
	assert.False(t, bs.EquationHolds)
}

func TestErrorStatuses(t *testing.T) {
	h := newTestServer(t).Handler()
	cash := openTestAccount(t, h, "Cash", "asset")

	// Unbalanced voucher is a validation failure.
	w := doJSON(t, h, http.MethodPost, "/api/vouchers", submitVoucherRequest{
		Description: "broken",
		Lines: []voucherLineRequest{
			{AccountID: cash, Amount: "10", Side: "debit"},
			{AccountID: cash, Amount: "5", Side: "credit"},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "unbalanced voucher", decode[errorResponse](t, w).Error)

	// Unknown account id is 404.
	w = doJSON(t, h, http.MethodGet, "/api/accounts/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/ledger/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed JSON is 400.
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-numeric path id is a validation failure.
	w = doJSON(t, h, http.MethodGet, "/api/accounts/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCloseAccount(t *testing.T) {
	h := newTestServer(t).Handler()
	cash := openTestAccount(t, h, "Cash", "asset")
	sales := openTestAccount(t, h, "Sales", "revenue")

	w := doJSON(t, h, http.MethodPost, "/api/vouchers", submitVoucherRequest{
		Description: "Cash sale",
		Lines: []voucherLineRequest{
			{AccountID: cash, Amount: "10", Side: "debit"},
			{AccountID: sales, Amount: "10", Side: "credit"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Accounts with postings cannot be closed.
	w = doJSON(t, h, http.MethodDelete, "/api/accounts/"+itoa(cash), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	unused := openTestAccount(t, h, "Petty Cash", "asset")
	w = doJSON(t, h, http.MethodDelete, "/api/accounts/"+itoa(unused), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/accounts/"+itoa(unused), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockAndDashboard(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodPost, "/api/stock/", addStockRequest{
		ProductName:   "Widget",
		Quantity:      5,
		PurchasePrice: "9.50",
		SellingPrice:  "14.99",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/api/stock/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]stockItemJSON](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].ProductName)

	cash := openTestAccount(t, h, "Cash", "asset")
	sales := openTestAccount(t, h, "Sales", "revenue")
	w = doJSON(t, h, http.MethodPost, "/api/vouchers", submitVoucherRequest{
		Description: "Cash sale",
		Lines: []voucherLineRequest{
			{AccountID: cash, Amount: "10", Side: "debit"},
			{AccountID: sales, Amount: "10", Side: "credit"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[dashboardJSON](t, w)
	assert.Equal(t, int64(2), dash.TotalAccounts)
	assert.Equal(t, int64(1), dash.TotalVouchers)
	assert.Equal(t, int64(1), dash.TotalStockItems)
	assert.Contains(t, dash.LastVoucher, "Cash sale")
}

func TestAuditEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	openTestAccount(t, h, "Cash", "asset")

	w := doJSON(t, h, http.MethodGet, "/api/audit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decode[[]auditRecordJSON](t, w)
	require.NotEmpty(t, records)
	assert.Equal(t, "Account Created", records[0].Action)
}

func TestRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	srv.RequireAuth()
	h := srv.Handler()

	// Guarded routes reject requests without a session.
	w := doJSON(t, h, http.MethodGet, "/api/accounts/", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Auth routes stay open.
	w = doJSON(t, h, http.MethodPost, "/api/auth/register", credentialsRequest{
		Username: "alice", Password: "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", credentialsRequest{
		Username: "alice", Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", credentialsRequest{
		Username: "alice", Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[map[string]string](t, w)["token"]
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditAttribution(t *testing.T) {
	srv := newTestServer(t)
	srv.RequireAuth()
	h := srv.Handler()

	w := doJSON(t, h, http.MethodPost, "/api/auth/register", credentialsRequest{
		Username: "alice", Password: "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, h, http.MethodPost, "/api/auth/login", credentialsRequest{
		Username: "alice", Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[map[string]string](t, w)["token"]

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(openAccountRequest{Name: "Cash", Type: "asset"}))
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/", &body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/audit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	records := decode[[]auditRecordJSON](t, rec)
	var attributed bool
	for _, r := range records {
		if r.Action == "Session Activity" {
			attributed = true
			assert.Contains(t, r.Details, "alice")
			assert.Contains(t, r.Details, "opened account")
		}
	}
	assert.True(t, attributed, "mutation by a logged-in user must leave an attribution record")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Disabled by default.
	w := doJSON(t, srv.Handler(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	srv.EnableMetrics()
	w = doJSON(t, srv.Handler(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "khata_vouchers_posted_total")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
