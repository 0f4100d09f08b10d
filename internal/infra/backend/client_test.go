package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cambaeats/config"
	deliverycontext "cambaeats/internal/delivery/context"
	"cambaeats/internal/domain/entity"
	"cambaeats/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/api/"
	cfg.Backend.Timeout = 5 * time.Second

	return NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestClient_GetCart_DecodesLineItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/carritos/cart-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "cart-1",
			"userId": "user-1",
			"isActive": true,
			"itemCarrito": [
				{"id": "li-1", "cantidad": 2, "productoId": "p1", "carritoId": "cart-1", "isActive": true},
				{"id": "li-2", "cantidad": 1, "productoId": "p2", "carritoId": "cart-1", "isActive": false}
			],
			"createdAt": "2024-05-01T10:00:00.000Z",
			"updatedAt": "2024-05-01T10:05:00.000Z"
		}`)
	})

	cart, err := client.GetCart(context.Background(), "cart-1")

	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.True(t, cart.HasLineItems)
	require.Len(t, cart.LineItems, 2)
	assert.Equal(t, "p1", cart.LineItems[0].ProductID)
	assert.Equal(t, 2, cart.LineItems[0].Quantity)
	assert.Len(t, cart.ActiveLineItems(), 1)
}

func TestClient_GetCart_MissingLineItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id": "cart-1", "userId": "user-1"}`)
	})

	cart, err := client.GetCart(context.Background(), "cart-1")

	require.NoError(t, err)
	assert.False(t, cart.HasLineItems)
	assert.Empty(t, cart.LineItems)
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Carrito no encontrado", http.StatusNotFound)
	})

	_, err := client.GetCart(context.Background(), "cart-9")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestClient_StatusError_CarriesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Stock insuficiente", http.StatusBadRequest)
	})

	_, err := client.CreateLineItem(context.Background(), entity.LineItemInput{CartID: "cart-1", ProductID: "p1", Quantity: 99})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Stock insuficiente", statusErr.Body)
	assert.Contains(t, err.Error(), "Stock insuficiente")
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id": `)
	})

	_, err := client.GetProduct(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.Timeout = time.Second
	client := NewClient(ClientParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	_, err := client.FindOrCreateCart(context.Background(), "user-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestClient_CreateLineItem_SendsWireFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items-carrito", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"carritoId": "cart-1", "productoId": "p1", "cantidad": float64(3)}, body)

		_, _ = io.WriteString(w, `{"id": "li-7", "cantidad": 3, "productoId": "p1", "carritoId": "cart-1", "isActive": true}`)
	})
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	item, err := client.CreateLineItem(ctx, entity.LineItemInput{CartID: "cart-1", ProductID: "p1", Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, "li-7", item.ID)
	assert.Equal(t, 3, item.Quantity)
}

func TestClient_UpdateAndDeleteLineItem(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			var body updateItemCarritoRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body.Cantidad)
			_, _ = io.WriteString(w, `{"id": "li-1", "cantidad": 5, "isActive": true}`)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	item, err := client.UpdateLineItem(ctx, "li-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	require.NoError(t, client.DeleteLineItem(ctx, "li-1"))

	assert.Equal(t, []string{
		"PATCH /api/items-carrito/li-1",
		"DELETE /api/items-carrito/li-1",
	}, calls)
}

func TestClient_FindOrCreateAndCreateCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/carritos/user/user-1":
			_, _ = io.WriteString(w, `{"id": "cart-1", "userId": "user-1", "itemCarrito": []}`)
		case "POST /api/carritos":
			var body createCarritoRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user-1", body.UserID)
			_, _ = io.WriteString(w, `{"id": "cart-2", "userId": "user-1"}`)
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	found, err := client.FindOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", found.ID)
	assert.True(t, found.HasLineItems)

	created, err := client.CreateCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-2", created.ID)
}

func TestClient_Catalog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/productos":
			_, _ = io.WriteString(w, `[{"id": "p1", "nombre": "Majadito", "descripcion": "Arroz con charque", "precio": 35.5, "stock": 4, "isActive": true}]`)
		case "/api/categorias":
			_, _ = io.WriteString(w, `[{"id": "c1", "nombre": "Platos típicos", "isActive": true}]`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Majadito", products[0].Name)
	assert.True(t, decimal.RequireFromString("35.5").Equal(products[0].Price))

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Platos típicos", categories[0].Name)
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/compra", r.URL.Path)
		var body compraRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, compraRequest{UserID: "user-1", Direccion: "Calle Sucre 45"}, body)
		_, _ = io.WriteString(w, `{"pedidoId": "ped-1", "total": 45}`)
	})

	placed, err := client.CreateOrder(context.Background(), "user-1", "Calle Sucre 45")

	require.NoError(t, err)
	assert.Equal(t, "ped-1", placed.OrderID)
	assert.True(t, decimal.NewFromInt(45).Equal(placed.Total))
}

func TestClient_CreateOrder_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := client.CreateOrder(context.Background(), "user-1", "Calle Sucre 45")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_OrdersAndSales(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/pedidos":
			assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
			_, _ = io.WriteString(w, `[{
				"id": "ped-1", "estado": "EN_CAMINO", "total": 45, "userId": "user-1",
				"fechaCreacion": "2024-05-01T10:00:00Z",
				"pago": {"id": "pago-1", "monto": 45, "fechaPago": "2024-05-01T10:01:00Z", "metodo": "QR"},
				"detallesPedido": [{"id": "d1", "cantidad": 1, "precioUnit": 40, "productoId": "p1", "producto": {"id": "p1", "nombre": "Majadito", "precio": 40}}]
			}]`)
		case "/api/ventas/v-1":
			_, _ = io.WriteString(w, `{
				"id": "v-1", "estado": "COMPLETADA", "total": 20, "userId": "user-1", "isActive": true,
				"fechaVenta": "2024-05-02T10:00:00Z",
				"pago": {"id": "pago-2", "monto": 20, "estado": "COMPLETADO", "metodoPago": {"metodo": "EFECTIVO"}},
				"detalleVentas": []
			}`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	orders, err := client.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusOnTheWay, orders[0].Status)
	require.NotNil(t, orders[0].Payment)
	assert.Equal(t, entity.PaymentMethodQR, orders[0].Payment.Method)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, "Majadito", orders[0].Lines[0].ProductName)

	sale, err := client.GetSale(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, entity.PaymentMethodCash, sale.Payment.Method)
	assert.Equal(t, "COMPLETADO", sale.Payment.Status)

	_, err = client.GetOrder(ctx, "ped-404")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestClient_SendClientLog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs/client", r.URL.Path)
		var body clientLogRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "warn", body.Level)
		assert.Equal(t, "cart initialization fell back to local mode", body.Message)
		assert.Equal(t, "s-1", body.Data["session_id"])
		assert.Equal(t, "temp-1", body.Data["cart_id"])
		w.WriteHeader(http.StatusAccepted)
	})

	err := client.SendClientLog(context.Background(), service.ClientLogEntry{
		Level:     service.LogLevelWarn,
		Message:   "cart initialization fell back to local mode",
		Data:      map[string]any{"cart_id": "temp-1"},
		SessionID: "s-1",
	})

	require.NoError(t, err)
}
