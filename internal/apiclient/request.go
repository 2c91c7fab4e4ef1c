package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const jsonContentType = "application/json"

// Options controls authentication and fallback for one call.
type Options struct {
	// FallbackToMock turns failures of unauthenticated calls into a nil
	// result so the caller can substitute bundled sample data.
	FallbackToMock bool
	// Auth attaches the session's bearer token and enables refresh.
	Auth bool
}

// DefaultOptions matches an unconfigured call: fallback allowed, no auth.
func DefaultOptions() Options {
	return Options{FallbackToMock: true}
}

// Request describes the method, headers and body of a call. A nil Request
// is a plain GET.
type Request struct {
	Method string
	Header http.Header
	Body   Body
	// NoStore asks intermediaries not to serve a cached response.
	NoStore bool
}

// Body is a request payload. It is encoded once per call so a retry after
// token refresh resends identical bytes.
type Body interface {
	encode() (data []byte, contentType string, err error)
}

type jsonBody struct{ v any }

// JSONBody encodes v as the JSON request body.
func JSONBody(v any) Body { return jsonBody{v: v} }

func (b jsonBody) encode() ([]byte, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}
	return data, jsonContentType, nil
}

type rawBody struct{ data []byte }

// RawBody sends data as is. The JSON content type still applies unless the
// request header overrides it.
func RawBody(data []byte) Body { return rawBody{data: data} }

func (b rawBody) encode() ([]byte, string, error) {
	return b.data, jsonContentType, nil
}

type formFile struct {
	field, filename string
	content         io.Reader
}

// Form is a multipart/form-data body.
type Form struct {
	fields [][2]string
	files  []formFile
}

func NewForm() *Form { return &Form{} }

func (f *Form) AddField(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

func (f *Form) AddFile(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

func (f *Form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", kv[0], err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating form file %s: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", fmt.Errorf("copying form file %s: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// encodedRequest is a Request with its body materialised.
type encodedRequest struct {
	method      string
	header      http.Header
	body        []byte
	contentType string
	noStore     bool
}

func (r *Request) encodeRequest() (*encodedRequest, error) {
	enc := &encodedRequest{method: http.MethodGet, contentType: jsonContentType}
	if r == nil {
		return enc, nil
	}
	if r.Method != "" {
		enc.method = r.Method
	}
	enc.header = r.Header
	enc.noStore = r.NoStore
	if r.Body != nil {
		data, ct, err := r.Body.encode()
		if err != nil {
			return nil, err
		}
		enc.body = data
		enc.contentType = ct
	}
	return enc, nil
}

func (e *encodedRequest) headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", e.contentType)
	h.Set("Accept", "application/json, text/plain, */*")
	if e.noStore {
		h.Set("Cache-Control", "no-store")
	}
	for k, vs := range e.header {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	return h
}

func (e *encodedRequest) bodyReader() io.Reader {
	if e.body == nil {
		return http.NoBody
	}
	return bytes.NewReader(e.body)
}
