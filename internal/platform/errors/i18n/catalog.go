// Package i18n renders localized error messages from the errors namespace of
// the shared message catalog.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/legality/internal/platform/i18n/catalog"
)

const namespace = "errors"

// Key returns the catalog key for an error code.
func Key(code string) string {
	return namespace + "." + code
}

// Catalog maps error keys to message templates for one locale.
type Catalog struct {
	locale    string
	templates map[string]*template.Template
	raw       map[string]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
)

// GetCatalog returns the catalog for locale, falling back to the base locale.
func GetCatalog(locale string) *Catalog {
	resolved, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(locale, namespace)

	catalogsMu.RLock()
	cat, ok := catalogs[resolved]
	catalogsMu.RUnlock()
	if ok {
		return cat
	}

	built := NewCatalog(resolved, messages)
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[resolved]; ok {
		return existing
	}
	catalogs[resolved] = built
	return built
}

// NewCatalog parses messages into a catalog. Messages that fail to parse are
// kept verbatim.
func NewCatalog(locale string, messages map[string]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		templates: make(map[string]*template.Template, len(messages)),
		raw:       make(map[string]string, len(messages)),
	}
	for key, value := range messages {
		c.raw[key] = value
		if tmpl, err := template.New(key).Option("missingkey=zero").Parse(value); err == nil {
			c.templates[key] = tmpl
		}
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for key with metadata. Unknown keys render as
// the bare code; template failures render the raw message.
func (c *Catalog) Format(key string, metadata map[string]string) string {
	raw, ok := c.raw[key]
	if !ok {
		return strings.TrimPrefix(key, namespace+".")
	}
	tmpl, ok := c.templates[key]
	if !ok {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}
