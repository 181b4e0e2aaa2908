package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvvetliisik/pharma-showcase/internal/service"
	"github.com/kuvvetliisik/pharma-showcase/internal/storage/memory"
)

func testUploadRouter(store *memory.Storage) http.Handler {
	svc := service.NewUploadService(store, testLogger())
	return setupRouter(RouterConfig{Upload: NewUploadHandler(svc, testLogger())})
}

// multipartBody builds a multipart request body with a single file part and
// an optional type field.
func multipartBody(t *testing.T, fileName, contentType, target string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	if target != "" {
		require.NoError(t, writer.WriteField("type", target))
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	body, contentType := multipartBody(t, "krem.jpg", "image/jpeg", "products", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.Len())

	var result UploadResponse
	decodeData(t, decodeResponse(t, rec), &result)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(result.FileName, "-krem.jpg"))
}

func TestUpload_BrandTarget(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	body, contentType := multipartBody(t, "logo.png", "image/png", "brands", []byte("png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result UploadResponse
	decodeData(t, decodeResponse(t, rec), &result)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/brands/"))
}

func TestUpload_MissingTypeDefaultsToProducts(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	body, contentType := multipartBody(t, "foto.webp", "image/webp", "", []byte("webp bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result UploadResponse
	decodeData(t, decodeResponse(t, rec), &result)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/products/"))
}

func TestUpload_MissingFileField(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.WriteField("type", "products"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Equal(t, 0, store.Len())
}

func TestUpload_DisallowedContentType(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	body, contentType := multipartBody(t, "belge.pdf", "application/pdf", "products", []byte("pdf bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Equal(t, 0, store.Len())
}

func TestUpload_InvalidTarget(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	body, contentType := multipartBody(t, "krem.jpg", "image/jpeg", "../../etc", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.Len())
}

func TestUpload_OversizedFileRejected(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	// 6 MiB exceeds the request body cap, so the multipart parse itself
	// fails before the service sees the file.
	big := bytes.Repeat([]byte("a"), 6<<20)
	body, contentType := multipartBody(t, "dev.jpg", "image/jpeg", "products", big)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.Len())
}

func TestUpload_NotMultipart(t *testing.T) {
	store := memory.New()
	router := testUploadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.Len())
}
