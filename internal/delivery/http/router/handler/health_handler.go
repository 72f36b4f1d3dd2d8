package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DARSHAN2224/authentication/internal/delivery/http/response"
)

// HealthCheck reports process liveness for load balancers and probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
