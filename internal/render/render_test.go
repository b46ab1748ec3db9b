package render_test

import (
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/service"
	"github.com/grandstage/stagecms/internal/store"
	"github.com/grandstage/stagecms/web"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	r, err := render.New(render.Config{TemplatesFS: templatesFS, IsDev: true})
	if err != nil {
		t.Fatalf("parsing embedded templates: %v", err)
	}
	return r
}

func TestRenderPublicPage(t *testing.T) {
	r := newRenderer(t)

	page := service.PageData{
		PageName: "home",
		Settings: store.DefaultSiteSettings(),
		Content:  "<h2>Welcome</h2>",
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	err := r.Render(rec, req, "public/home", render.TemplateData{
		Title: "Home",
		Data:  map[string]any{"Page": page},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	for _, want := range []string{
		"<title>Home</title>",
		store.DefaultSiteTitle,
		"<h2>Welcome</h2>",
		`class="active"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if err := r.Render(rec, req, "public/missing", render.TemplateData{}); err == nil {
		t.Fatal("expected error for unknown template name")
	}
}

func TestAllPageTemplatesParse(t *testing.T) {
	// New parses every page set up front, so construction alone proves
	// the embedded templates are well formed.
	newRenderer(t)
}
