package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sabor-autentico/api-gateway/internal/gateway"
	"sabor-autentico/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_SiteRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   string
	}{
		{name: "menu_with_query", method: http.MethodGet, path: "/api/menu?diet=vegetariano", want: "http://site-svc/api/menu?diet=vegetariano"},
		{name: "cart_item", method: http.MethodPut, path: "/api/cart/items/entrada-1", want: "http://site-svc/api/cart/items/entrada-1"},
		{name: "order_qrcode", method: http.MethodGet, path: "/api/orders/abc/qrcode", want: "http://site-svc/api/orders/abc/qrcode"},
		{name: "reviews", method: http.MethodPost, path: "/api/reviews", want: "http://site-svc/api/reviews"},
		{name: "stats", method: http.MethodGet, path: "/api/stats/daily?date=2025-03-10", want: "http://stats-svc/api/stats/daily?date=2025-03-10"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				SiteSvcURL:  "http://site-svc",
				StatsSvcURL: "http://stats-svc/",
			}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.want
			})).Return(jsonResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_ForwardsSessionCookie(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{SiteSvcURL: "http://site-svc"}, mockClient)

	resp := jsonResponse(http.StatusCreated, `{"status":"confirmed"}`)
	resp.Header.Add("Set-Cookie", "sabor_session=new-id; Path=/; HttpOnly")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		c, err := req.Cookie("sabor_session")
		return err == nil && c.Value == "abc" && req.Header.Get("X-Forwarded-For") != ""
	})).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"address":"x","phone":"1"}`))
	req.AddCookie(&http.Cookie{Name: "sabor_session", Value: "abc"})
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "sabor_session=new-id")
}

func TestGateway_RouteHandler_ForwardedFor(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "ipv4", remoteAddr: "192.0.2.7:5123", want: "192.0.2.7"},
		{name: "ipv6", remoteAddr: "[::1]:1234", want: "::1"},
		{name: "ipv6_full", remoteAddr: "[2001:db8::5]:443", want: "2001:db8::5"},
		{name: "no_port", remoteAddr: "192.0.2.9", want: "192.0.2.9"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{SiteSvcURL: "http://site-svc"}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Header.Get("X-Forwarded-For") == testCase.want
			})).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			req.RemoteAddr = testCase.remoteAddr
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		SiteSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_StatsNotConfigured(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{SiteSvcURL: "http://site-svc"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/reviews", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGateway_SetupRoutes_Frontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Sabor Auténtico</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ok')"), 0o644))

	router := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil).SetupRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reservations", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sabor Auténtico")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "console.log")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
