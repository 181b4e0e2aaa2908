package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kuvvetliisik/pharma-showcase/pkg/health"
	"github.com/kuvvetliisik/pharma-showcase/pkg/middleware"
)

// RouterConfig bundles everything the router needs.
type RouterConfig struct {
	Product *ProductHandler
	Brand   *BrandHandler
	Message *MessageHandler
	Slider  *SliderHandler
	Upload  *UploadHandler

	Health *health.Handler
	Logger *slog.Logger

	// UploadsDir, when set, is served read-only under /uploads/.
	UploadsDir string

	CORSAllowedOrigins []string

	// Contact form rate limit, requests per second per client IP.
	ContactRateLimit int
	ContactRateBurst int
}

// NewRouter builds the chi router with the full middleware chain and
// all API routes mounted.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("pharma-showcase"))
	r.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.CORSAllowedOrigins}))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	if cfg.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Product.ListProducts)
			r.Post("/", cfg.Product.CreateProduct)
			r.Get("/{id}", cfg.Product.GetProduct)
			r.Put("/{id}", cfg.Product.UpdateProduct)
			r.Delete("/{id}", cfg.Product.DeleteProduct)
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", cfg.Brand.ListBrands)
			r.Post("/", cfg.Brand.CreateBrand)
			r.Get("/{id}", cfg.Brand.GetBrand)
			r.Put("/{id}", cfg.Brand.UpdateBrand)
			r.Delete("/{id}", cfg.Brand.DeleteBrand)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", cfg.Message.ListMessages)
			r.Post("/", cfg.Message.CreateMessage)
			r.Get("/{id}", cfg.Message.GetMessage)
			r.Put("/{id}", cfg.Message.UpdateMessage)
			r.Delete("/{id}", cfg.Message.DeleteMessage)
		})

		// The public contact form is the one unauthenticated write
		// endpoint, so it gets its own rate limit.
		r.Group(func(r chi.Router) {
			if cfg.ContactRateLimit > 0 {
				r.Use(middleware.RateLimit(cfg.ContactRateLimit, cfg.ContactRateBurst, cfg.Logger))
			}
			r.Post("/contact", cfg.Message.CreateMessage)
		})

		r.Route("/sliders", func(r chi.Router) {
			r.Get("/", cfg.Slider.ListSliders)
			r.Post("/", cfg.Slider.CreateSlider)
			r.Get("/{id}", cfg.Slider.GetSlider)
			r.Put("/{id}", cfg.Slider.UpdateSlider)
			r.Delete("/{id}", cfg.Slider.DeleteSlider)
		})

		r.Post("/upload", cfg.Upload.Upload)
	})

	return r
}
