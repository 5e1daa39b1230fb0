package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Chekwachibuike/ecommerce/controllers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newUploadRouter(uc *controllers.UploadController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/upload/image", uc.UploadImage)
	r.POST("/upload/presign", uc.PresignUpload)
	return r
}

func imageUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

// A server started without bucket configuration keeps the upload routes but
// must answer with a service-unavailable envelope rather than crash.
func TestUploadImageWithoutUploaderConfigured(t *testing.T) {
	r := newUploadRouter(controllers.NewUploadController(nil))

	body, contentType := imageUpload(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "Uploads are not configured")
}

func TestPresignUploadWithoutUploaderConfigured(t *testing.T) {
	r := newUploadRouter(controllers.NewUploadController(nil))

	payload := `{"fileName":"photo.png","contentType":"image/png"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/presign", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}
