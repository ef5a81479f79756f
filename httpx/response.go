package httpx

import (
	"bytes"
	"net/http"
	"strconv"
)

// PageBuffer collects a rendered page before anything is sent, so a template
// failure half way through never reaches the user as a broken page. Pages
// carry register data about people and are never cached.
type PageBuffer struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func NewPageBuffer() *PageBuffer {
	return &PageBuffer{header: http.Header{}}
}

func (b *PageBuffer) Header() http.Header {
	return b.header
}

func (b *PageBuffer) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *PageBuffer) WriteHeader(status int) {
	b.status = status
}

func (b *PageBuffer) Len() int {
	return b.body.Len()
}

// Flush sends the buffered page to w. A buffer with no status set is sent
// as 200.
func (b *PageBuffer) Flush(w http.ResponseWriter) error {
	h := w.Header()
	for key, values := range b.header {
		h[key] = values
	}
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Length", strconv.Itoa(b.body.Len()))

	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(b.body.Bytes())
	return err
}
