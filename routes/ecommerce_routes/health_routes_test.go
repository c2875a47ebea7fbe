package ecommerce_routes

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		ping   pingFunc
		target string
		want   int
	}{
		{"liveness", func(context.Context) error { return errors.New("down") }, "/health", http.StatusOK},
		{"ready", func(context.Context) error { return nil }, "/health/ready", http.StatusOK},
		{"not ready", func(context.Context) error { return errors.New("down") }, "/health/ready", http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			SetupHealthRoutes(router.Group(""), tc.ping)

			if w := get(t, router, tc.target); w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
