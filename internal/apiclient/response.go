package apiclient

import (
	"encoding/json"
	"net/http"
)

// Response is a successful, fully read response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsJSON reports whether the response declared a JSON content type. A JSON
// response has already been checked for well-formedness.
func (r *Response) IsJSON() bool {
	return isJSONContent(r.Header.Get("Content-Type"))
}

func (r *Response) Text() string {
	return string(r.Body)
}

func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
