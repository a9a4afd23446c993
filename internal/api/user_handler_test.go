package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/mocks"
	"github.com/servicehub/servicehub-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandlerRegister(t *testing.T) {
	users := mocks.NewUserStore()
	h := NewUserHandler(users, nil)
	body := `{"email":"a@x.com","name":"Ana","photoURL":"https://img"}`

	rr := serve(t, http.MethodPost, "/users/add", "/users/add", body, h.Register, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var first store.RegisterResult
	decodeBody(t, rr, &first)
	assert.NotNil(t, first.InsertedID)
	assert.False(t, first.Existing)

	rr = serve(t, http.MethodPost, "/users/add", "/users/add", body, h.Register, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var second store.RegisterResult
	decodeBody(t, rr, &second)
	assert.Nil(t, second.InsertedID)
	assert.True(t, second.Existing)
	assert.Equal(t, "user already exists", second.Message)

	assert.Equal(t, 1, users.Len())

	rr = serve(t, http.MethodGet, "/users", "/users", "", h.List, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []domain.User
	decodeBody(t, rr, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "https://img", list[0].PhotoURL)
}

func TestUserHandlerRegisterRequiresEmail(t *testing.T) {
	h := NewUserHandler(mocks.NewUserStore(), nil)

	rr := serve(t, http.MethodPost, "/users/add", "/users/add", `{"name":"Ana"}`, h.Register, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid email: required field", errorMessage(t, rr))
}

func TestUserHandlerGatewayFailure(t *testing.T) {
	users := mocks.NewUserStore()
	users.Err = errors.New("server selection timeout")
	h := NewUserHandler(users, nil)

	rr := serve(t, http.MethodGet, "/users", "/users", "", h.List, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to fetch users", errorMessage(t, rr))
}
