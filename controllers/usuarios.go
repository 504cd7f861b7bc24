package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kelydev/apiCitas/models"
	"github.com/kelydev/apiCitas/repository"
	"github.com/kelydev/apiCitas/utils"
)

// decodeFields fills dst from a JSON body, or from form/query values otherwise.
// form maps a parameter name to the field it sets.
func decodeFields(r *http.Request, dst any, form map[string]*string) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	for name, field := range form {
		*field = r.Form.Get(name)
	}
	return nil
}

// CreateUsuarioHandler handles POST /agregar-usuario/.
func CreateUsuarioHandler(repo repository.UsuarioRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		var in models.NuevoUsuario
		err := decodeFields(r, &in, map[string]*string{
			"nombre": &in.Nombre, "apellido": &in.Apellido, "email": &in.Email,
		})
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
			return
		}
		in.Nombre = strings.TrimSpace(in.Nombre)
		in.Apellido = strings.TrimSpace(in.Apellido)
		in.Email = strings.TrimSpace(in.Email)

		if !validOrRespond(w, log, in) {
			return
		}

		u := &models.Usuario{Nombre: in.Nombre, Apellido: in.Apellido, Email: in.Email}
		if err := repo.CreateUsuario(r.Context(), u); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				utils.Error(w, http.StatusConflict, fmt.Sprintf("ya existe un usuario con el email %s", in.Email))
				return
			}
			internalError(w, log, err, "creating usuario")
			return
		}

		utils.Message(w, http.StatusCreated, fmt.Sprintf("Usuario %s agregado correctamente", u.Email))
	}
}

// GetUsuariosHandler handles GET /usuarios/, optionally paginated.
func GetUsuariosHandler(repo repository.UsuarioRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		page, limit, paged := utils.GetPaginationParams(r)
		if !paged {
			usuarios, err := repo.GetUsuarios(r.Context())
			if err != nil {
				internalError(w, log, err, "listing usuarios")
				return
			}
			utils.JSON(w, http.StatusOK, usuarios)
			return
		}

		offset, err := utils.Offset(page, limit)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "página fuera de rango")
			return
		}
		usuarios, total, err := repo.GetUsuariosPage(r.Context(), limit, offset)
		if err != nil {
			internalError(w, log, err, "listing usuarios page")
			return
		}
		w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
		utils.JSON(w, http.StatusOK, usuarios)
	}
}

// GetUsuarioHandler handles GET /usuario/{email}.
func GetUsuarioHandler(repo repository.UsuarioRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(mux.Vars(r)["email"])

		u, err := repo.GetUsuarioByEmail(r.Context(), email)
		if err != nil {
			usuarioError(w, r, err, email, "getting usuario")
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// UpdateUsuarioHandler handles PUT /usuario/{email}. Only nombre and apellido change.
func UpdateUsuarioHandler(repo repository.UsuarioRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())
		email := strings.TrimSpace(mux.Vars(r)["email"])

		var in models.ActualizacionUsuario
		err := decodeFields(r, &in, map[string]*string{
			"nombre": &in.Nombre, "apellido": &in.Apellido,
		})
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
			return
		}
		in.Nombre = strings.TrimSpace(in.Nombre)
		in.Apellido = strings.TrimSpace(in.Apellido)

		if !validOrRespond(w, log, in) {
			return
		}

		if _, err := repo.UpdateUsuario(r.Context(), email, in); err != nil {
			usuarioError(w, r, err, email, "updating usuario")
			return
		}
		utils.Message(w, http.StatusOK, fmt.Sprintf("Usuario %s actualizado correctamente", email))
	}
}

// DeleteUsuarioHandler handles DELETE /usuario/{email}.
func DeleteUsuarioHandler(repo repository.UsuarioRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(mux.Vars(r)["email"])

		if err := repo.DeleteUsuario(r.Context(), email); err != nil {
			usuarioError(w, r, err, email, "deleting usuario")
			return
		}
		utils.Message(w, http.StatusOK, fmt.Sprintf("Usuario %s eliminado correctamente", email))
	}
}

func validOrRespond(w http.ResponseWriter, log *zerolog.Logger, v any) bool {
	campos, err := utils.Validate(v)
	if err != nil {
		internalError(w, log, err, "validating input")
		return false
	}
	if len(campos) > 0 {
		utils.ValidationError(w, campos)
		return false
	}
	return true
}

func usuarioError(w http.ResponseWriter, r *http.Request, err error, email, op string) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, fmt.Sprintf("usuario %s no encontrado", email))
		return
	}
	internalError(w, zerolog.Ctx(r.Context()), err, op)
}

func internalError(w http.ResponseWriter, log *zerolog.Logger, err error, op string) {
	log.Error().Err(err).Msg(op)
	utils.Error(w, http.StatusInternalServerError, "error interno del servidor")
}
