package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	"github.com/kuvvetliisik/pharma-showcase/pkg/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

// decodeData re-marshals resp.Data into out, so tests can assert on typed
// fields instead of map lookups.
func decodeData(t *testing.T, resp httputil.Response, out any) {
	t.Helper()
	b, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

// setupRouter mounts the given handlers on a chi router matching the
// production route layout.
func setupRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		if cfg.Product != nil {
			r.Route("/products", func(r chi.Router) {
				r.Get("/", cfg.Product.ListProducts)
				r.Post("/", cfg.Product.CreateProduct)
				r.Get("/{id}", cfg.Product.GetProduct)
				r.Put("/{id}", cfg.Product.UpdateProduct)
				r.Delete("/{id}", cfg.Product.DeleteProduct)
			})
		}
		if cfg.Brand != nil {
			r.Route("/brands", func(r chi.Router) {
				r.Get("/", cfg.Brand.ListBrands)
				r.Post("/", cfg.Brand.CreateBrand)
				r.Get("/{id}", cfg.Brand.GetBrand)
				r.Put("/{id}", cfg.Brand.UpdateBrand)
				r.Delete("/{id}", cfg.Brand.DeleteBrand)
			})
		}
		if cfg.Message != nil {
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", cfg.Message.ListMessages)
				r.Post("/", cfg.Message.CreateMessage)
				r.Get("/{id}", cfg.Message.GetMessage)
				r.Put("/{id}", cfg.Message.UpdateMessage)
				r.Delete("/{id}", cfg.Message.DeleteMessage)
			})
			r.Post("/contact", cfg.Message.CreateMessage)
		}
		if cfg.Slider != nil {
			r.Route("/sliders", func(r chi.Router) {
				r.Get("/", cfg.Slider.ListSliders)
				r.Post("/", cfg.Slider.CreateSlider)
				r.Get("/{id}", cfg.Slider.GetSlider)
				r.Put("/{id}", cfg.Slider.UpdateSlider)
				r.Delete("/{id}", cfg.Slider.DeleteSlider)
			})
		}
		if cfg.Upload != nil {
			r.Post("/upload", cfg.Upload.Upload)
		}
	})
	return r
}

// ============================================================================
// Mock repositories
// ============================================================================

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) ListAll(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMessageRepository struct {
	mock.Mock
}

func (m *mockMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *mockMessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockMessageRepository) Update(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockMessageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSliderRepository struct {
	mock.Mock
}

func (m *mockSliderRepository) List(ctx context.Context, filter repository.SliderFilter) ([]domain.Slider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slider), args.Error(1)
}

func (m *mockSliderRepository) GetByID(ctx context.Context, id string) (*domain.Slider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slider), args.Error(1)
}

func (m *mockSliderRepository) Create(ctx context.Context, slider *domain.Slider) error {
	args := m.Called(ctx, slider)
	return args.Error(0)
}

func (m *mockSliderRepository) Update(ctx context.Context, slider *domain.Slider) error {
	args := m.Called(ctx, slider)
	return args.Error(0)
}

func (m *mockSliderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
