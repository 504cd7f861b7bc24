package routes

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/kelydev/apiCitas/config"
	"github.com/kelydev/apiCitas/controllers"
	"github.com/kelydev/apiCitas/middleware"
	"github.com/kelydev/apiCitas/repository"
)

// SetupCitasRoutes configures the quote service.
func SetupCitasRoutes(d controllers.CitasDeps, static fs.FS, l zerolog.Logger, cfg config.Config) http.Handler {
	r := newRouter()

	r.HandleFunc("/formulario_inicio", controllers.FormularioInicioHandler(d)).Methods("GET")
	r.HandleFunc("/enviar_categoria", controllers.EnviarCategoriaHandler(d)).Methods("POST")
	r.HandleFunc("/nuevos_datos", controllers.NuevosDatosHandler(d)).Methods("POST")

	// Static file server (public)
	fsrv := http.FileServer(http.FS(static))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fsrv))

	return wrap(r, l, cfg)
}

// SetupUsuariosRoutes configures the user service.
func SetupUsuariosRoutes(repo repository.UsuarioRepository, l zerolog.Logger, cfg config.Config) http.Handler {
	r := newRouter()

	for _, p := range []string{"/agregar-usuario/", "/agregar-usuario"} {
		r.HandleFunc(p, controllers.CreateUsuarioHandler(repo)).Methods("POST")
	}
	for _, p := range []string{"/usuarios/", "/usuarios"} {
		r.HandleFunc(p, controllers.GetUsuariosHandler(repo)).Methods("GET")
	}
	r.HandleFunc("/usuario/{email}", controllers.GetUsuarioHandler(repo)).Methods("GET")
	r.HandleFunc("/usuario/{email}", controllers.UpdateUsuarioHandler(repo)).Methods("PUT")
	r.HandleFunc("/usuario/{email}", controllers.DeleteUsuarioHandler(repo)).Methods("DELETE")

	return wrap(r, l, cfg)
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", controllers.HealthHandler()).Methods("GET")
	return r
}

// wrap applies the middleware around the whole router, so unmatched paths and
// wrong methods are logged and rate limited too.
func wrap(r *mux.Router, l zerolog.Logger, cfg config.Config) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	var h http.Handler = r
	h = httprate.LimitByIP(cfg.RateLimit, time.Minute)(h)
	h = c.Handler(h)
	h = middleware.Recoverer(l)(h)
	return middleware.RequestLogger(l)(h)
}
