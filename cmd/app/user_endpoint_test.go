package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e := newTestServer(t)

	payload := map[string]string{
		"username": "cliente3",
		"password": "password123",
		"name":     "Ana Costa",
		"email":    "ana@example.com",
		"whatsapp": "11955554444",
	}

	t.Run("creates the user without exposing the password", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/register", payload, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "cliente3", body["username"])
		assert.NotEmpty(t, body["token"])
		assert.NotContains(t, body, "password")
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/register", payload, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "Username already exists", body["message"])
	})

	t.Run("schema violation is a 400", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/register", map[string]string{
			"username": "cliente4",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestServer(t)

	t.Run("seeded user can log in", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/login", map[string]string{
			"username": "cliente1",
			"password": "password123",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "Maria Silva", body["name"])
		assert.NotEmpty(t, body["token"])
		assert.NotContains(t, body, "password")
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/login", map[string]string{
			"username": "cliente1",
			"password": "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/users/login", map[string]string{
			"username": "cliente1",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
