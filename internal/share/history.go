package share

import (
	"sync"
	"time"

	"github.com/mkarlsson/passforge/internal/models"
)

// History is the session-scoped, ordered list of created share links.
// Links are appended in creation order and never removed; manual expiration
// only flips the IsExpired flag.
type History struct {
	mu    sync.Mutex
	links []models.ShareLink
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Append records a newly created link.
func (h *History) Append(url string) models.ShareLink {
	h.mu.Lock()
	defer h.mu.Unlock()
	link := models.ShareLink{URL: url, CreatedAt: time.Now()}
	h.links = append(h.links, link)
	return link
}

// MarkExpired flags every link whose token matches. Returns true if at
// least one link was flagged.
func (h *History) MarkExpired(token string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	found := false
	for i := range h.links {
		if h.links[i].Token() == token {
			h.links[i].IsExpired = true
			found = true
		}
	}
	return found
}

// List returns the links in creation order.
func (h *History) List() []models.ShareLink {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.ShareLink, len(h.links))
	copy(out, h.links)
	return out
}
