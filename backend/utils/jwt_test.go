package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"learnx/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func whoamiApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken(7, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	app := whoamiApp(cfg)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(7), result["user_id"])
}

func TestJWTMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	app := whoamiApp(cfg)

	req := httptest.NewRequest("GET", "/whoami", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(7, &config.Config{JWTSecret: "othersecret"})
	assert.NoError(t, err)

	app := whoamiApp(&config.Config{JWTSecret: "testsecret"})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
