package handler_test

import (
	"context"
	"database/sql"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/grandstage/stagecms/internal/handler"
	"github.com/grandstage/stagecms/internal/mailer"
	"github.com/grandstage/stagecms/internal/middleware"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/session"
	"github.com/grandstage/stagecms/internal/store"
	"github.com/grandstage/stagecms/internal/testutil"
	"github.com/grandstage/stagecms/web"
)

// newTestApp builds a server with the production route table over a
// seeded temporary database. CSRF is left out so plain test clients can
// post forms.
func newTestApp(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	if err := store.Seed(context.Background(), db, true); err != nil {
		t.Fatalf("seeding test database: %v", err)
	}

	sessionManager := session.New(db, true)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("initializing renderer: %v", err)
	}

	m := mailer.New()
	publicHandler := handler.NewPublicHandler(db, renderer, m)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	adminHandler := handler.NewAdminHandler(db, renderer)
	contentHandler := handler.NewContentHandler(db, renderer)
	imageHandler := handler.NewImageHandler(db, renderer)
	videoHandler := handler.NewVideoHandler(db, renderer)
	settingsHandler := handler.NewSettingsHandler(db, renderer)
	credentialsHandler := handler.NewCredentialsHandler(db, renderer)
	submissionHandler := handler.NewSubmissionHandler(db, renderer)

	r := chi.NewRouter()
	r.Use(sessionManager.LoadAndSave)

	r.Get(handler.RouteRoot, publicHandler.Home)
	r.Get(handler.RouteAbout, publicHandler.About)
	r.Get(handler.RouteGallery, publicHandler.Gallery)
	r.Get(handler.RouteContact, publicHandler.Contact)
	r.Post(handler.RouteContact, publicHandler.ContactSubmit)

	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadAdmin(sessionManager, db))

			r.Get("/", adminHandler.Dashboard)
			r.Get("/dashboard", adminHandler.Dashboard)
			r.Post("/logout", authHandler.Logout)

			r.Get("/content", contentHandler.Edit)
			r.Get("/content"+handler.RouteParamPageName, contentHandler.Edit)
			r.Post("/content", contentHandler.Update)
			r.Post("/content"+handler.RouteParamPageName, contentHandler.Update)

			r.Get("/images", imageHandler.List)
			r.Get("/images/add", imageHandler.New)
			r.Post("/images/add", imageHandler.Create)
			r.Post("/images/delete"+handler.RouteParamID, imageHandler.Delete)

			r.Get("/videos", videoHandler.List)
			r.Post("/videos/add", videoHandler.Create)

			r.Get("/settings", settingsHandler.Edit)
			r.Post("/settings", settingsHandler.Update)

			r.Get("/system-credentials", credentialsHandler.Edit)
			r.Post("/system-credentials", credentialsHandler.Update)

			r.Get("/contact-submissions", submissionHandler.List)
			r.Get("/contact-submissions"+handler.RouteParamID+"/mark-read", submissionHandler.MarkRead)
			r.Post("/contact-submissions"+handler.RouteParamID+"/mark-read", submissionHandler.MarkRead)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, db
}

// newClient returns a cookie-carrying client that does not follow
// redirects, so tests can assert on Location headers and flashes.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 10 * time.Second,
	}
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

func postForm(t *testing.T, c *http.Client, url string, values url.Values) *http.Response {
	t.Helper()
	resp, err := c.PostForm(url, values)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	resp.Body.Close()
	return resp
}

// login signs the client in as the seeded admin.
func login(t *testing.T, c *http.Client, baseURL string) {
	t.Helper()
	resp := postForm(t, c, baseURL+"/admin/login", url.Values{
		"username": {store.DefaultAdminUsername},
		"password": {store.DefaultAdminPassword},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("login redirect = %q, want /admin", loc)
	}
}

func TestPublicPagesRender(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)

	for _, path := range []string{"/", "/about", "/gallery", "/contact"} {
		resp, body := get(t, c, srv.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, resp.StatusCode)
		}
		if !strings.Contains(body, store.DefaultSiteTitle) {
			t.Errorf("GET %s body missing site title", path)
		}
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)

	resp, _ := get(t, c, srv.URL+"/admin/images")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	want := "/admin/login?next=" + url.QueryEscape("/admin/images")
	if loc := resp.Header.Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}

	// The query string rides along in next, so paging survives a login trip
	resp, _ = get(t, c, srv.URL+"/admin/images?page=2")
	want = "/admin/login?next=" + url.QueryEscape("/admin/images?page=2")
	if loc := resp.Header.Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestLoginAndDashboard(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)

	login(t, c, srv.URL)

	for _, path := range []string{"/admin", "/admin/dashboard"} {
		resp, body := get(t, c, srv.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, resp.StatusCode)
		}
		if !strings.Contains(body, "Dashboard") {
			t.Errorf("GET %s body missing heading", path)
		}
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)

	resp := postForm(t, c, srv.URL+"/admin/login", url.Values{
		"username": {store.DefaultAdminUsername},
		"password": {"wrong"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}

	// Unknown usernames produce the same message as bad passwords
	_, body := get(t, c, srv.URL+"/admin/login")
	if !strings.Contains(body, "Invalid username or password") {
		t.Error("login page missing failure flash")
	}
}

func TestLoginRedirectsToSafeNext(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)

	resp := postForm(t, c, srv.URL+"/admin/login", url.Values{
		"username": {store.DefaultAdminUsername},
		"password": {store.DefaultAdminPassword},
		"next":     {"https://evil.example/phish"},
	})
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q, external next should fall back to /admin", loc)
	}
}

func TestLogout(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp := postForm(t, c, srv.URL+"/admin/logout", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("logout status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	resp, _ = get(t, c, srv.URL+"/admin")
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("admin after logout status = %d, want redirect to login", resp.StatusCode)
	}
}

func TestContactSubmitCreatesSubmission(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)

	resp := postForm(t, c, srv.URL+"/contact", url.Values{
		"name":    {"Pat"},
		"email":   {"pat@example.com"},
		"subject": {"Booking"},
		"message": {"Do you travel?"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/contact" {
		t.Errorf("Location = %q, want /contact", loc)
	}

	subs, err := store.New(db).ListContactSubmissions(context.Background())
	if err != nil {
		t.Fatalf("ListContactSubmissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(subs))
	}
	if subs[0].Name != "Pat" || subs[0].IsRead {
		t.Errorf("unexpected submission: %+v", subs[0])
	}

	_, body := get(t, c, srv.URL+"/contact")
	if !strings.Contains(body, "Thank you for your message!") {
		t.Error("contact page missing success flash")
	}
}

func TestContactSubmitSuccessDespiteEmailFailure(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)

	// Credentials point at a port nothing listens on, so both email
	// attempts fail fast. The submitter still sees the success flash.
	now := time.Now()
	if _, err := store.New(db).UpsertEmailCredentials(context.Background(), store.UpsertEmailCredentialsParams{
		EmailAddress: "ops@grandstageprod.com",
		AppPassword:  "secret",
		SMTPServer:   "127.0.0.1",
		SMTPPort:     1,
		FromName:     "Grand Stage Productions",
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		t.Fatalf("UpsertEmailCredentials: %v", err)
	}

	resp := postForm(t, c, srv.URL+"/contact", url.Values{
		"name":    {"Pat"},
		"email":   {"pat@example.com"},
		"subject": {"Booking"},
		"message": {"Hello"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}

	count, err := store.New(db).CountContactSubmissions(context.Background())
	if err != nil {
		t.Fatalf("CountContactSubmissions: %v", err)
	}
	if count != 1 {
		t.Errorf("submission count = %d, want 1", count)
	}

	_, body := get(t, c, srv.URL+"/contact")
	if !strings.Contains(body, "Thank you for your message!") {
		t.Error("success flash should not depend on email delivery")
	}
}

func TestContactSubmitValidation(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)

	resp, err := c.PostForm(srv.URL+"/contact", url.Values{
		"name":    {"Pat"},
		"subject": {"Booking"},
		"message": {"Hello"},
	})
	if err != nil {
		t.Fatalf("POST /contact: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Email is required") {
		t.Error("response missing email validation message")
	}
	if !strings.Contains(string(body), "Pat") {
		t.Error("re-rendered form lost the submitted name")
	}

	count, err := store.New(db).CountContactSubmissions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("invalid form created %d submissions", count)
	}
}

func TestSettingsUpdate(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	values := url.Values{
		"site_title":  {"New Title"},
		"site_slogan": {"New slogan"},
		"logo_url":    {"/static/images/new-logo.svg"},
	}
	resp := postForm(t, c, srv.URL+"/admin/settings", values)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}

	settings, err := store.New(db).GetSiteSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSiteSettings: %v", err)
	}
	if settings.SiteTitle != "New Title" {
		t.Errorf("SiteTitle = %q", settings.SiteTitle)
	}
	if settings.ID != 1 {
		t.Errorf("settings ID = %d, want the singleton row", settings.ID)
	}
}

func TestContentUpdateSanitizes(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp := postForm(t, c, srv.URL+"/admin/content", url.Values{
		"page_name": {"about"},
		"content":   {`<h2>About</h2><script>alert("x")</script>`},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/content/about" {
		t.Errorf("Location = %q", loc)
	}

	content, err := store.New(db).GetPageContent(context.Background(), "about")
	if err != nil {
		t.Fatalf("GetPageContent: %v", err)
	}
	if strings.Contains(content.Content, "<script>") {
		t.Error("stored content still contains script tag")
	}
	if !strings.Contains(content.Content, "<h2>About</h2>") {
		t.Errorf("stored content lost formatting: %q", content.Content)
	}
}

func TestContentUpdateViaPagePath(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	// The page name comes from the URL when the form omits it
	resp := postForm(t, c, srv.URL+"/admin/content/gallery", url.Values{
		"content": {"<p>Show photos</p>"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/content/gallery" {
		t.Errorf("Location = %q", loc)
	}

	content, err := store.New(db).GetPageContent(context.Background(), "gallery")
	if err != nil {
		t.Fatalf("GetPageContent: %v", err)
	}
	if !strings.Contains(content.Content, "Show photos") {
		t.Errorf("stored content = %q", content.Content)
	}
}

func TestContentUpdateRejectsUnknownPage(t *testing.T) {
	srv, _ := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp, err := c.PostForm(srv.URL+"/admin/content", url.Values{
		"page_name": {"secret-page"},
		"content":   {"<p>hi</p>"},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Please select a valid page") {
		t.Error("response missing page-name validation message")
	}
}

func TestImageCreateAndList(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp := postForm(t, c, srv.URL+"/admin/images/add", url.Values{
		"title":     {"Poster"},
		"image_url": {"https://img.example/poster.jpg"},
		"page_name": {"home"},
		"is_active": {"on"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("create status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/images" {
		t.Errorf("Location = %q", loc)
	}

	_, body := get(t, c, srv.URL+"/admin/images")
	if !strings.Contains(body, "Poster") {
		t.Error("image list missing created image")
	}

	count, err := store.New(db).CountImages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("image count = %d, want 1", count)
	}
}

func TestMarkSubmissionRead(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp := postForm(t, c, srv.URL+"/admin/contact-submissions/99999/mark-read", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", resp.StatusCode)
	}

	sub, err := store.New(db).CreateContactSubmission(context.Background(), store.CreateContactSubmissionParams{
		Name: "Pat", Email: "pat@example.com", Subject: "Hi", Message: "Hello",
		SubmittedAt: time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	target := srv.URL + "/admin/contact-submissions/" + strconv.FormatInt(sub.ID, 10) + "/mark-read"
	for i := 0; i < 2; i++ {
		resp = postForm(t, c, target, nil)
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("mark-read call %d status = %d, want 303", i+1, resp.StatusCode)
		}
	}

	got, err := store.New(db).GetContactSubmissionByID(context.Background(), sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsRead {
		t.Error("submission should be read")
	}

	// The admin list links mark-read as a plain GET as well
	resp, _ = get(t, c, target)
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("GET mark-read status = %d, want 303", resp.StatusCode)
	}
}

func TestCredentialsFromNameDefault(t *testing.T) {
	srv, db := newTestApp(t)
	c := newClient(t)
	login(t, c, srv.URL)

	resp := postForm(t, c, srv.URL+"/admin/system-credentials", url.Values{
		"email_address": {"ops@grandstageprod.com"},
		"app_password":  {"secret"},
		"smtp_server":   {"smtp.gmail.com"},
		"smtp_port":     {"587"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}

	creds, err := store.New(db).GetEmailCredentials(context.Background())
	if err != nil {
		t.Fatalf("GetEmailCredentials: %v", err)
	}
	if creds.FromName != store.DefaultSiteTitle {
		t.Errorf("FromName = %q, want the site default", creds.FromName)
	}
}
