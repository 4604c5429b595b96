package object

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"BattleFS/internal/application/service"
	"BattleFS/internal/platform/server/handler"

	"github.com/go-chi/chi/v5"
)

type ObjectHandler struct {
	createService *service.CreateObjectService
	readService   *service.ReadObjectService
	deleteService *service.DeleteObjectService
	listService   *service.ListObjectsService
}

type CreateObjectRequest struct {
	Path string `json:"path"`
}

func NewObjectHandler(createService *service.CreateObjectService,
	readService *service.ReadObjectService,
	deleteService *service.DeleteObjectService,
	listService *service.ListObjectsService) *ObjectHandler {
	return &ObjectHandler{
		createService: createService,
		readService:   readService,
		deleteService: deleteService,
		listService:   listService,
	}
}

func (h *ObjectHandler) CreateObject(w http.ResponseWriter, r *http.Request) {
	var request CreateObjectRequest
	if err := handler.DecodeBody(r, &request); err != nil {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()})
		return
	}
	if request.Path == "" {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: "path is required"})
		return
	}

	result, err := h.createService.Execute(service.CreateObjectCommand{Path: request.Path})
	if err != nil {
		handler.WriteError(w, err)
		return
	}
	handler.WriteJSON(w, http.StatusCreated, result.Entry)
}

// ReadObject answers with the original bytes of the object.
func (h *ObjectHandler) ReadObject(w http.ResponseWriter, r *http.Request) {
	name, err := objectName(r)
	if err != nil {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()})
		return
	}

	var body bytes.Buffer
	if err := h.readService.Execute(service.ReadObjectQuery{Name: name, Output: &body}); err != nil {
		handler.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

func (h *ObjectHandler) DeleteObject(w http.ResponseWriter, r *http.Request) {
	name, err := objectName(r)
	if err != nil {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.deleteService.Execute(service.DeleteObjectCommand{Name: name})
	if err != nil {
		handler.WriteError(w, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, result.Entry)
}

func (h *ObjectHandler) ListObjects(w http.ResponseWriter, _ *http.Request) {
	listing, err := h.listService.Execute()
	if err != nil {
		handler.WriteError(w, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, listing)
}

// los nombres son rutas de fichero, llegan escapadas en el wildcard
func objectName(r *http.Request) (string, error) {
	name, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		return "", fmt.Errorf("invalid object name: %w", err)
	}
	if name == "" {
		return "", fmt.Errorf("object name is required")
	}
	return name, nil
}
