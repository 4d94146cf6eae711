package uploads

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupUploadsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>5 years building Go services</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractResumeDocx(t *testing.T) {
	router := setupUploadsRouter()
	body, contentType := multipartUpload(t, "file", "resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", buildDocx(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/extract", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Experience string `json:"experience"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Experience != "5 years building Go services" {
		t.Fatalf("unexpected experience text: %q", out.Experience)
	}
}

func TestExtractResumeMissingFile(t *testing.T) {
	router := setupUploadsRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/extract", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestExtractResumeUnsupportedType(t *testing.T) {
	router := setupUploadsRouter()
	body, contentType := multipartUpload(t, "file", "resume.txt", "text/plain", []byte("plain text resume"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/extract", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "unsupported_type" {
		t.Fatalf("expected unsupported_type, got %q", errResp.Error.Code)
	}
}

func TestExtractResumeCorruptDocx(t *testing.T) {
	router := setupUploadsRouter()
	body, contentType := multipartUpload(t, "file", "resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("not a zip at all"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/extract", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", resp.Code, resp.Body.String())
	}
}
