package httpserver

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/newmobile/internal/domain"
	"github.com/phenrril/newmobile/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	tmpl     *template.Template
	products *usecase.CatalogUC
	leads    *usecase.LeadUC
	waNumber string
}

func New(t *template.Template, p *usecase.CatalogUC, l *usecase.LeadUC) http.Handler {
	wa := os.Getenv("WHATSAPP_NUMBER")
	if wa == "" {
		wa = "5491100000000"
	}
	s := &Server{tmpl: t, products: p, leads: l, waNumber: wa, mux: http.NewServeMux()}
	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		SecurityAndStaticCache,
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.Handle("/public/", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	// SEO
	s.mux.HandleFunc("/robots.txt", s.handleRobots)
	s.mux.HandleFunc("/sitemap.xml", s.handleSitemap)

	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/productos", s.handleCatalog)
	s.mux.HandleFunc("/producto/", s.handleProduct)
	s.mux.HandleFunc("/mayoristas", s.handleWholesale)

	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductRelated)

	s.mux.HandleFunc("/admin/export.xlsx", s.handleExportXLSX)
}

// productCard es lo que consume la plantilla de tarjetas: el producto más
// sus atributos derivados de presentación.
type productCard struct {
	domain.Product
	Badge domain.Badge
}

func (s *Server) cards(list []domain.Product) []productCard {
	out := make([]productCard, 0, len(list))
	for _, p := range list {
		out = append(out, productCard{Product: p, Badge: domain.ResolveBadge(p)})
	}
	return out
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	base := s.canonicalBase(r)
	s.render(w, "home.html", map[string]any{
		"Featured":     s.cards(s.products.Featured(4)),
		"CanonicalURL": base + "/",
	})
}

// handleCatalog arma el FilterState desde la query (siembra de una sola
// vez; el estado no se sincroniza ni persiste) y corre el pipeline.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	f := domain.NewFilterState()
	if v := qv.Get("categoria"); v != "" {
		f.Category = v
	}
	if v := qv.Get("serie"); v != "" {
		f.Series = v
	}
	if v := qv.Get("estado"); v != "" {
		f.Condition = v
	}
	f.Search = qv.Get("q")

	list := s.products.List(f)
	base := s.canonicalBase(r)
	s.render(w, "products.html", map[string]any{
		"Products":     s.cards(list),
		"Total":        len(list),
		"Filter":       f,
		"Series":       s.products.Series(),
		"IsFiltered":   !f.IsDefault(),
		"CanonicalURL": base + "/productos",
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/producto/")
	p, err := s.products.FindByID(id)
	if err != nil {
		// id inválido: la página no existe, se vuelve al listado
		http.Redirect(w, r, "/productos", http.StatusSeeOther)
		return
	}
	base := s.canonicalBase(r)
	og := base + p.HeroImage()
	if strings.HasPrefix(p.HeroImage(), "http") {
		og = p.HeroImage()
	}
	s.render(w, "product.html", map[string]any{
		"Product":      p,
		"Badge":        domain.ResolveBadge(p),
		"Warranty":     domain.ResolveWarranty(p),
		"Related":      s.cards(s.products.Related(p, 4)),
		"WhatsAppURL":  s.waLink(p.ContactMessage),
		"CanonicalURL": base + "/producto/" + p.ID,
		"OGImage":      og,
	})
}

func (s *Server) handleWholesale(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "mayoristas.html", map[string]any{
			"CanonicalURL": s.canonicalBase(r) + "/mayoristas",
		})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", 400)
		return
	}
	lead := &domain.Lead{
		Name:     r.FormValue("nombre"),
		Business: r.FormValue("comercio"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("telefono"),
		TaxID:    r.FormValue("cuit"),
		Quantity: r.FormValue("volumen"),
		Message:  r.FormValue("mensaje"),
	}
	if err := s.leads.Register(lead); err != nil {
		s.render(w, "mayoristas.html", map[string]any{
			"Error": err.Error(),
			"Lead":  lead,
		})
		return
	}
	http.Redirect(w, r, s.waLink(s.leads.WhatsAppText(lead)), http.StatusSeeOther)
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	qv := r.URL.Query()
	f := domain.NewFilterState()
	if v := qv.Get("categoria"); v != "" {
		f.Category = v
	}
	if v := qv.Get("serie"); v != "" {
		f.Series = v
	}
	if v := qv.Get("estado"); v != "" {
		f.Condition = v
	}
	f.Search = qv.Get("q")
	list := s.products.List(f)
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

// GET /api/products/{id}/related
func (s *Server) apiProductRelated(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, ok := strings.CutSuffix(rest, "/related")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}
	p, err := s.products.FindByID(id)
	if err != nil {
		writeJSON(w, 404, map[string]any{"error": "not_found"})
		return
	}
	writeJSON(w, 200, map[string]any{"items": s.products.Related(p, 4)})
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Catalogo"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		http.Error(w, "xlsx", 500)
		return
	}
	header := []any{"id", "nombre", "categoria", "serie", "condicion", "etiqueta", "garantia", "specs", "imagen"}
	_ = f.SetSheetRow(sheet, "A1", &header)
	for i, p := range s.products.Products.All() {
		serie := ""
		if p.Series != nil {
			serie = fmt.Sprint(*p.Series)
		}
		row := []any{
			p.ID, p.Name, string(p.Category), serie, string(p.Condition),
			domain.ResolveBadge(p).Label, domain.ResolveWarranty(p).Title,
			strings.Join(p.Specs, " · "), p.HeroImage(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=catalogo.xlsx")
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export xlsx")
	}
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	base := s.canonicalBase(r)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">")
	now := time.Now().Format("2006-01-02")
	for _, path := range []string{"/", "/productos", "/mayoristas"} {
		b.WriteString("\n  <url><loc>" + base + path + "</loc><lastmod>" + now + "</lastmod></url>")
	}
	for _, p := range s.products.Products.All() {
		b.WriteString("\n  <url><loc>" + base + "/producto/" + template.URLQueryEscaper(p.ID) + "</loc><lastmod>" + now + "</lastmod></url>")
	}
	b.WriteString("\n</urlset>")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin/\nSitemap: " + s.canonicalBase(r) + "/sitemap.xml\n"))
}

// canonicalBase arma el esquema y host para URLs absolutas
func (s *Server) canonicalBase(r *http.Request) string {
	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}
	if host == "" {
		host = "www.newmobile.com.ar"
	}
	return scheme + "://" + host
}

// waLink construye el deep link de WhatsApp. El core nunca arma esta URL:
// el mensaje viaja opaco y acá se resuelve el destino.
func (s *Server) waLink(text string) string {
	return "https://wa.me/" + s.waNumber + "?text=" + url.QueryEscape(text)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if m, ok := data.(map[string]any); ok {
		if _, exists := m["Year"]; !exists {
			m["Year"] = time.Now().Year()
		}
		data = m
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", 500)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
