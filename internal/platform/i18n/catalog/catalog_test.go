package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		for _, namespace := range []string{"errors", "legality"} {
			if len(bundle.NamespaceMessages(locale, namespace)) == 0 {
				t.Fatalf("expected %s %s namespace messages", locale, namespace)
			}
		}
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle := Default()
	base := bundle.locales[BaseLocale].Messages
	for _, locale := range bundle.Locales() {
		messages := bundle.locales[locale].Messages
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, want %d", locale, len(messages), len(base))
		}
	}
}

func TestResolve(t *testing.T) {
	bundle := Default()
	tests := []struct {
		requested string
		want      string
	}{
		{"", BaseLocale},
		{"en-US", "en-US"},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"fr-FR", BaseLocale},
		{"not a locale!", BaseLocale},
	}
	for _, tt := range tests {
		if got := bundle.Resolve(tt.requested); got != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.requested, got, tt.want)
		}
	}
}

func TestPrinterUsesRegisteredMessages(t *testing.T) {
	bundle := Default()
	if got := bundle.Printer("en-US").Sprintf("legality.report.valid"); got != "Result: valid" {
		t.Fatalf("en-US = %q", got)
	}
	if got := bundle.Printer("pt-BR").Sprintf("legality.report.valid"); got != "Resultado: válido" {
		t.Fatalf("pt-BR = %q", got)
	}
	if got := bundle.Printer("pt-BR").Sprintf("legality.report.encounter", "Eevee"); got != "Espécie do encontro: Eevee" {
		t.Fatalf("pt-BR args = %q", got)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle := mustLoad(t, map[string]string{
		"locales/en-US/core.yaml": "locale: en-US\nnamespace: core\nmessages:\n  core.a: A\n  core.b: B\n",
		"locales/pt-BR/core.yaml": "locale: pt-BR\nnamespace: core\nmessages:\n  core.a: A-pt\n",
	})
	if got, ok := bundle.Message("pt-BR", "core.a"); !ok || got != "A-pt" {
		t.Fatalf("Message(pt-BR, core.a) = %q, %t", got, ok)
	}
	if got, ok := bundle.Message("pt-BR", "core.b"); !ok || got != "B" {
		t.Fatalf("Message(pt-BR, core.b) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("pt-BR", " "); ok {
		t.Fatal("expected blank key miss")
	}
	resolved, messages := bundle.NamespaceMessagesWithFallback("fr-FR", "core")
	if resolved != BaseLocale || len(messages) != 2 {
		t.Fatalf("fallback = %q with %d messages", resolved, len(messages))
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "no files",
			files: map[string]string{"locales/readme.txt": "x"},
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/pt-BR/core.yaml": "locale: pt-BR\nnamespace: core\nmessages:\n  core.a: A\n",
			},
		},
		{
			name: "locale mismatch",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: pt-BR\nnamespace: core\nmessages:\n  core.a: A\n",
			},
		},
		{
			name: "namespace mismatch",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: en-US\nnamespace: web\nmessages:\n  web.a: A\n",
			},
		},
		{
			name: "key outside namespace",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: en-US\nnamespace: core\nmessages:\n  web.a: A\n",
			},
		},
		{
			name: "duplicate key across namespaces",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: en-US\nnamespace: core\nmessages:\n  core.a: A\n",
				"locales/en-US/web.yaml":  "locale: en-US\nnamespace: web\nmessages:\n  core.a: B\n",
			},
		},
		{
			name: "empty messages",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: en-US\nnamespace: core\nmessages: {}\n",
			},
		},
		{
			name: "malformed yaml",
			files: map[string]string{
				"locales/en-US/core.yaml": "locale: [\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFS(os.DirFS(writeFiles(t, tt.files))); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func mustLoad(t *testing.T, files map[string]string) *Bundle {
	t.Helper()
	bundle, err := LoadFromFS(os.DirFS(writeFiles(t, files)))
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return bundle
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
