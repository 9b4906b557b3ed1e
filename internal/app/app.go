package app

import (
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/phenrril/newmobile/internal/adapters/httpserver"
	"github.com/phenrril/newmobile/internal/catalog"
	"github.com/phenrril/newmobile/internal/usecase"
	"github.com/phenrril/newmobile/internal/views"
)

type App struct {
	Catalog   *catalog.Catalog
	Tmpl      *template.Template
	ProductUC *usecase.CatalogUC
	LeadUC    *usecase.LeadUC
}

func NewApp() (*App, error) {
	var cat *catalog.Catalog
	var err error
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cat, err = catalog.LoadFile(path)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, err
	}

	app := &App{Catalog: cat}
	app.ProductUC = &usecase.CatalogUC{Products: cat}
	app.LeadUC = &usecase.LeadUC{}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"img": func(u string) string {
			s := strings.TrimSpace(u)
			if s == "" {
				return s
			}
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "/") {
				s = "/" + s
			}
			s = strings.ReplaceAll(s, " ", "%20")
			return s
		},
	}

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	var tmpl *template.Template
	if appEnv == "dev" || appEnv == "development" {
		tmpl, err = template.New("layout").Funcs(funcMap).ParseGlob("internal/views/*.html")
	} else {
		tmpl, err = template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
	}
	if err != nil {
		return nil, err
	}
	app.Tmpl = tmpl

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.ProductUC, a.LeadUC)
}
