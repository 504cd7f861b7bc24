package controllers

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kelydev/apiCitas/models"
	"github.com/kelydev/apiCitas/repository"
	"github.com/kelydev/apiCitas/session"
	"github.com/kelydev/apiCitas/templates"
	"github.com/kelydev/apiCitas/utils"
)

// claveCategoria is the session key holding the last selected category.
const claveCategoria = "categoria_seleccionada"

const mensajeCategoriaInvalida = "Seleccione una categoría válida"

// CitasDeps groups what the quote handlers need.
type CitasDeps struct {
	Repo     repository.CitaRepository
	Sessions session.Store
	Tmpl     *template.Template
}

// pagina is the data rendered into index.html.
type pagina struct {
	Categorias            []string
	CategoriaSeleccionada string
	Mensaje               string
	Cita                  string
	Categoria             string
}

// FormularioInicioHandler renders the form with every known category.
func FormularioInicioHandler(d CitasDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := zerolog.Ctx(ctx)

		citas, err := d.Repo.GetAllCitas(ctx)
		if err != nil {
			errorProcesando(w, log, err)
			return
		}

		sess, err := d.Sessions.Load(ctx, r)
		if err != nil {
			errorProcesando(w, log, err)
			return
		}
		seleccionada := sess.Get(claveCategoria, models.SinCategoria)
		sess.Set(claveCategoria, seleccionada)
		if err := d.Sessions.Save(ctx, w, sess); err != nil {
			errorProcesando(w, log, err)
			return
		}

		render(w, log, d.Tmpl, http.StatusOK, pagina{
			Categorias:            models.Categorias(citas),
			CategoriaSeleccionada: seleccionada,
		})
	}
}

// EnviarCategoriaHandler returns a random quote of the posted category.
func EnviarCategoriaHandler(d CitasDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := zerolog.Ctx(ctx)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Formulario inválido", http.StatusBadRequest)
			return
		}
		// matched as stored; only the empty check ignores surrounding spaces
		categoria := r.PostFormValue(claveCategoria)

		citas, err := d.Repo.GetAllCitas(ctx)
		if err != nil {
			errorProcesando(w, log, err)
			return
		}
		categorias := models.Categorias(citas)

		sess, err := d.Sessions.Load(ctx, r)
		if err != nil {
			errorProcesando(w, log, err)
			return
		}

		if c := strings.TrimSpace(categoria); c == "" || c == models.SinCategoria {
			render(w, log, d.Tmpl, http.StatusUnprocessableEntity, pagina{
				Categorias:            categorias,
				CategoriaSeleccionada: sess.Get(claveCategoria, models.SinCategoria),
				Mensaje:               mensajeCategoriaInvalida,
			})
			return
		}

		filtradas := models.FiltrarPorCategoria(citas, categoria)
		if len(filtradas) == 0 {
			http.Error(w, fmt.Sprintf("La categoria %s no existe", categoria), http.StatusNotFound)
			return
		}
		elegida := filtradas[rand.IntN(len(filtradas))]

		sess.Set(claveCategoria, categoria)
		if err := d.Sessions.Save(ctx, w, sess); err != nil {
			errorProcesando(w, log, err)
			return
		}

		render(w, log, d.Tmpl, http.StatusOK, pagina{
			Categorias:            categorias,
			CategoriaSeleccionada: categoria,
			Cita:                  elegida.Texto,
			Categoria:             elegida.Categoria,
		})
	}
}

// NuevosDatosHandler stores a new quote and sends the browser back to the form.
func NuevosDatosHandler(d CitasDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := zerolog.Ctx(ctx)

		if err := r.ParseForm(); err != nil {
			utils.Error(w, http.StatusBadRequest, "formulario inválido")
			return
		}
		cita := models.Cita{
			Texto:     strings.TrimSpace(r.PostFormValue("cita")),
			Categoria: strings.TrimSpace(r.PostFormValue("categoria")),
		}
		campos, err := utils.Validate(cita)
		if err != nil {
			log.Error().Err(err).Msg("validating cita")
			utils.Error(w, http.StatusInternalServerError, "error interno")
			return
		}
		if len(campos) > 0 {
			utils.ValidationError(w, campos)
			return
		}

		if err := d.Repo.CreateCita(ctx, &cita); err != nil {
			log.Error().Err(err).Msg("creating cita")
			utils.Error(w, http.StatusInternalServerError, "no se pudo guardar la cita")
			return
		}

		sess, err := d.Sessions.Load(ctx, r)
		if err == nil {
			sess.Set(claveCategoria, models.SinCategoria)
			err = d.Sessions.Save(ctx, w, sess)
		}
		if err != nil {
			// the row is stored; a stale selection is harmless
			log.Warn().Err(err).Msg("resetting session category")
		}

		http.Redirect(w, r, "/formulario_inicio", http.StatusSeeOther)
	}
}

func render(w http.ResponseWriter, log *zerolog.Logger, tmpl *template.Template, status int, p pagina) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templates.Index, p); err != nil {
		errorProcesando(w, log, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func errorProcesando(w http.ResponseWriter, log *zerolog.Logger, err error) {
	log.Error().Err(err).Msg("processing citas request")
	http.Error(w, fmt.Sprintf("Error procesando la solicitud: %v", err), http.StatusInternalServerError)
}
