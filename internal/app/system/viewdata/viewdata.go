// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/sovramarkets/sovrasite/internal/domain/models"
)

// BaseVM contains common fields for all page view models. Embed it in
// feature-specific view models.
//
// Usage:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	CurrentPath string
	Year        int

	// CSRFToken is populated only on pages that carry a form.
	CSRFToken string
}

var (
	mu       sync.RWMutex
	siteName = models.DefaultSiteName
)

// SetSiteName overrides the display name. Called once from bootstrap after
// config is loaded.
func SetSiteName(name string) {
	if name == "" {
		return
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured display name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		Year:        time.Now().Year(),
	}
}

// NewFormBaseVM is NewBaseVM plus the request's CSRF token, for pages that
// render a form.
func NewFormBaseVM(r *http.Request, title string) BaseVM {
	vm := NewBaseVM(r, title)
	vm.CSRFToken = csrf.Token(r)
	return vm
}
