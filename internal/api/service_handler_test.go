package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/mocks"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"github.com/servicehub/servicehub-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seededServices(n int) *mocks.ServiceStore {
	var seed []domain.Service
	for i := 0; i < n; i++ {
		seed = append(seed, domain.Service{
			ID:        primitive.NewObjectID(),
			Title:     fmt.Sprintf("Service %02d", i),
			Category:  "Cleaning",
			UserEmail: "owner@example.com",
		})
	}
	return mocks.NewServiceStore(seed...)
}

func TestServiceHandlerList(t *testing.T) {
	h := NewServiceHandler(seededServices(20), nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCount  int
		wantTotal  int64
		wantPages  int
	}{
		{name: "defaults", target: "/services", wantStatus: http.StatusOK, wantCount: 8, wantTotal: 20, wantPages: 3},
		{name: "last page", target: "/services?page=3", wantStatus: http.StatusOK, wantCount: 4, wantTotal: 20, wantPages: 3},
		{name: "custom limit", target: "/services?limit=5&page=2", wantStatus: http.StatusOK, wantCount: 5, wantTotal: 20, wantPages: 4},
		{name: "keyword", target: "/services?keyword=service%2001", wantStatus: http.StatusOK, wantCount: 1, wantTotal: 1, wantPages: 1},
		{name: "all categories", target: "/services?category=All+Categories", wantStatus: http.StatusOK, wantCount: 8, wantTotal: 20, wantPages: 3},
		{name: "unknown category", target: "/services?category=Plumbing", wantStatus: http.StatusOK, wantCount: 0, wantTotal: 0, wantPages: 0},
		{name: "bad page", target: "/services?page=abc", wantStatus: http.StatusBadRequest},
		{name: "zero limit", target: "/services?limit=0", wantStatus: http.StatusBadRequest},
		{name: "huge page", target: "/services?page=9223372036854775807", wantStatus: http.StatusBadRequest},
		{name: "page above bound", target: "/services?page=1000001", wantStatus: http.StatusBadRequest},
		{name: "limit above bound", target: "/services?limit=1000001", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, http.MethodGet, "/services", tt.target, "", h.List, nil)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var page store.ServicePage
			decodeBody(t, rr, &page)
			assert.Len(t, page.Services, tt.wantCount)
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestServiceHandlerListGatewayFailure(t *testing.T) {
	services := mocks.NewServiceStore()
	services.Err = errors.New("connection refused")
	h := NewServiceHandler(services, nil)

	rr := serve(t, http.MethodGet, "/services", "/services", "", h.List, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to fetch services", errorMessage(t, rr))
}

func TestServiceHandlerListFailureLoggedOnce(t *testing.T) {
	services := mocks.NewServiceStore()
	services.Err = errors.New("connection refused")
	h := NewServiceHandler(services, nil)

	log, buf := logger.GetTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/services?keyword=clean", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	rr := httptest.NewRecorder()
	h.List(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	var errorEntries []map[string]interface{}
	for _, entry := range entries {
		if entry["level"] == slog.LevelError.String() {
			errorEntries = append(errorEntries, entry)
		}
	}
	require.Len(t, errorEntries, 1)
	assert.Contains(t, errorEntries[0]["error"], "connection refused")
}

func TestServiceHandlerListPassesQuery(t *testing.T) {
	services := &mocks.TestifyMockServiceStore{}
	want := store.ServiceQuery{Keyword: "clean", Category: "Cleaning", Page: 2, Limit: 4}
	services.On("List", mock.Anything, want).
		Return(store.NewServicePage(nil, 0, want), nil).Once()

	h := NewServiceHandler(services, nil)
	rr := serve(t, http.MethodGet, "/services", "/services?keyword=clean&category=Cleaning&page=2&limit=4", "", h.List, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	services.AssertExpectations(t)
}

func TestServiceHandlerFeatured(t *testing.T) {
	h := NewServiceHandler(seededServices(10), nil)

	rr := serve(t, http.MethodGet, "/services/featured", "/services/featured", "", h.Featured, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var services []domain.Service
	decodeBody(t, rr, &services)
	require.Len(t, services, 6)
	assert.Equal(t, "Service 09", services[0].Title)
}

func TestServiceHandlerGet(t *testing.T) {
	services := seededServices(1)
	page, err := services.List(context.Background(), store.ServiceQuery{})
	require.NoError(t, err)
	existing := page.Services[0]

	h := NewServiceHandler(services, nil)

	t.Run("found", func(t *testing.T) {
		rr := serve(t, http.MethodGet, "/service/{id}", "/service/"+existing.ID.Hex(), "", h.Get, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var got domain.Service
		decodeBody(t, rr, &got)
		assert.Equal(t, existing.ID, got.ID)
	})

	t.Run("absent", func(t *testing.T) {
		rr := serve(t, http.MethodGet, "/service/{id}", "/service/"+primitive.NewObjectID().Hex(), "", h.Get, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Service not found", errorMessage(t, rr))
	})

	t.Run("malformed", func(t *testing.T) {
		rr := serve(t, http.MethodGet, "/service/{id}", "/service/not-an-id", "", h.Get, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid service ID format", errorMessage(t, rr))
	})
}

func TestServiceHandlerCreate(t *testing.T) {
	services := mocks.NewServiceStore()
	h := NewServiceHandler(services, nil)

	rr := serve(t, http.MethodPost, "/service/add", "/service/add",
		`{"title":"Window Cleaning","category":"Cleaning","price":40,"userEmail":"a@x.com","extra":"kept"}`, h.Create, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var res store.InsertResult
	decodeBody(t, rr, &res)
	assert.True(t, res.Acknowledged)
	assert.False(t, res.InsertedID.IsZero())

	got, err := services.GetByID(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Window Cleaning", got.Title)
	assert.Equal(t, "kept", got.Extra["extra"])

	t.Run("fields outside the schema round trip", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/service/add", "/service/add",
			`{"title":"Tutoring","serviceArea":"Dhaka","tags":["math","physics"]}`, h.Create, nil)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var res store.InsertResult
		decodeBody(t, rr, &res)

		rr = serve(t, http.MethodGet, "/service/{id}", "/service/"+res.InsertedID.Hex(), "", h.Get, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		decodeBody(t, rr, &body)
		assert.Equal(t, "Tutoring", body["title"])
		assert.Equal(t, "Dhaka", body["serviceArea"])
		assert.Equal(t, []interface{}{"math", "physics"}, body["tags"])
	})

	t.Run("negative price", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/service/add", "/service/add", `{"title":"x","price":-1}`, h.Create, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid price: too small", errorMessage(t, rr))
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/service/add", "/service/add", `{"title":`, h.Create, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request format", errorMessage(t, rr))
	})

	t.Run("empty body", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/service/add", "/service/add", "", h.Create, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServiceHandlerUpdateMergesFields(t *testing.T) {
	services := seededServices(1)
	page, err := services.List(context.Background(), store.ServiceQuery{})
	require.NoError(t, err)
	existing := page.Services[0]

	h := NewServiceHandler(services, nil)
	target := "/service/update/" + existing.ID.Hex()

	rr := serve(t, http.MethodPut, "/service/update/{id}", target, `{"title":"Renamed","_id":"ignored"}`, h.Update, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res store.UpdateResult
	decodeBody(t, rr, &res)
	assert.Equal(t, store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

	got, err := services.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, existing.Category, got.Category)
	assert.Equal(t, existing.UserEmail, got.UserEmail)

	t.Run("empty patch", func(t *testing.T) {
		rr := serve(t, http.MethodPut, "/service/update/{id}", target, `{}`, h.Update, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Update contains no fields", errorMessage(t, rr))
	})

	t.Run("absent id acknowledges zero matches", func(t *testing.T) {
		rr := serve(t, http.MethodPut, "/service/update/{id}", "/service/update/"+primitive.NewObjectID().Hex(), `{"title":"x"}`, h.Update, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var res store.UpdateResult
		decodeBody(t, rr, &res)
		assert.Equal(t, int64(0), res.MatchedCount)
	})
}

func TestServiceHandlerDelete(t *testing.T) {
	services := seededServices(1)
	page, err := services.List(context.Background(), store.ServiceQuery{})
	require.NoError(t, err)
	id := page.Services[0].ID

	h := NewServiceHandler(services, nil)

	rr := serve(t, http.MethodDelete, "/service/delete/{id}", "/service/delete/"+id.Hex(), "", h.Delete, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var res store.DeleteResult
	decodeBody(t, rr, &res)
	assert.Equal(t, int64(1), res.DeletedCount)

	rr = serve(t, http.MethodDelete, "/service/delete/{id}", "/service/delete/"+id.Hex(), "", h.Delete, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &res)
	assert.Equal(t, int64(0), res.DeletedCount)

	rr = serve(t, http.MethodDelete, "/service/delete/{id}", "/service/delete/xyz", "", h.Delete, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServiceHandlerMine(t *testing.T) {
	services := mocks.NewServiceStore(
		domain.Service{Title: "a", UserEmail: "owner@example.com"},
		domain.Service{Title: "b", UserEmail: "other@example.com"},
	)
	h := NewServiceHandler(services, nil)

	owner := &shared.Identity{Email: "owner@example.com"}
	rr := serve(t, http.MethodGet, "/service/me/{email}", "/service/me/owner@example.com", "", h.Mine, owner)
	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.Service
	decodeBody(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	rr = serve(t, http.MethodGet, "/service/me/{email}", "/service/me/other@example.com", "", h.Mine, owner)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized access", errorMessage(t, rr))

	rr = serve(t, http.MethodGet, "/service/me/{email}", "/service/me/owner@example.com", "", h.Mine, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	t.Run("percent-encoded email", func(t *testing.T) {
		rr := serve(t, http.MethodGet, "/service/me/{email}", "/service/me/owner%40example.com", "", h.Mine, owner)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var got []domain.Service
		decodeBody(t, rr, &got)
		assert.Len(t, got, 1)
	})
}
