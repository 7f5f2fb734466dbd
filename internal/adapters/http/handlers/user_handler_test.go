package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userData struct {
	ID          uint   `json:"id"`
	Username    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func TestGetUsers(t *testing.T) {
	h := newHarness(t)

	status, env := h.call(t, fiber.MethodGet, "/GetUsers", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	h.register(t, "ada", "User")
	h.register(t, "grace", "Admin")

	status, raw := h.do(t, fiber.MethodGet, "/GetUsers", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, string(raw), "password")

	require.NoError(t, json.Unmarshal(raw, &env))
	var users []userData
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "ada", users[0].Username)
	assert.Equal(t, "Admin", users[1].Role)
}

func TestGetUser(t *testing.T) {
	h := newHarness(t)
	h.register(t, "ada", "User")

	status, env := h.call(t, fiber.MethodGet, "/Getuser?userid=1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Successful", env.ResponseMessage)

	var user userData
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ada", user.Username)

	status, env = h.call(t, fiber.MethodGet, "/Getuser?userid=42", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "99", env.ResponseCode)
	assert.Equal(t, "User Not Found", env.ResponseMessage)

	status, env = h.call(t, fiber.MethodGet, "/Getuser?userid=abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid user ID", env.ResponseMessage)
}

func TestUpdateUser(t *testing.T) {
	h := newHarness(t)
	h.register(t, "ada", "User")

	status, env := h.call(t, fiber.MethodPut, "/UpdateUser?id=1",
		`{"email":"ada@example.org","phoneNumber":"+2348000000000","role":"Admin"}`)
	require.Equal(t, fiber.StatusOK, status, env.ResponseMessage)
	assert.Equal(t, "User updated successfully", env.ResponseMessage)

	_, env = h.call(t, fiber.MethodGet, "/Getuser?userid=1", "")
	var user userData
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ada@example.org", user.Email)
	assert.Equal(t, "+2348000000000", user.PhoneNumber)
	assert.Equal(t, "Admin", user.Role)

	// the password was left empty, so the old one still works
	status, _ = h.do(t, fiber.MethodPost, "/login", `{"userName":"ada","password":"secret1"}`, "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestUpdateUser_Errors(t *testing.T) {
	h := newHarness(t)
	h.register(t, "ada", "User")

	status, env := h.call(t, fiber.MethodPut, "/UpdateUser?id=9", `{"email":"x@example.org"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User Not Found", env.ResponseMessage)

	status, env = h.call(t, fiber.MethodPut, "/UpdateUser", `{"email":"x@example.org"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid user ID", env.ResponseMessage)

	status, env = h.call(t, fiber.MethodPut, "/UpdateUser?id=1", `{"password":"123"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid details", env.ResponseMessage)

	status, env = h.call(t, fiber.MethodPut, "/UpdateUser?id=1", `{"password":"`+strings.Repeat("a", 80)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "99", env.ResponseCode)
	assert.Equal(t, "invalid details", env.ResponseMessage)

	// within 72 characters but over 72 bytes
	status, env = h.call(t, fiber.MethodPut, "/UpdateUser?id=1", `{"password":"`+strings.Repeat("é", 40)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "99", env.ResponseCode)
	assert.Equal(t, "Password must be at most 72 bytes", env.ResponseMessage)
}

func TestDeleteUser(t *testing.T) {
	h := newHarness(t)
	h.register(t, "ada", "User")

	status, env := h.call(t, fiber.MethodDelete, "/DeleteUser?id=1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "User deleted successfully", env.ResponseMessage)

	status, env = h.call(t, fiber.MethodDelete, "/DeleteUser?id=1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User Not Found", env.ResponseMessage)
}
