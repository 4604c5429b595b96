package store

import (
	"net/http"

	"BattleFS/internal/application/service"
	"BattleFS/internal/platform/server/handler"
)

type StoreHandler struct {
	initService *service.InitStoreService
	loadService *service.LoadDirectoryService
}

type InitStoreRequest struct {
	Name string `json:"name,omitempty"`
}

type InitStoreResponse struct {
	Name string `json:"name"`
}

type LoadDirectoryRequest struct {
	Dir string `json:"dir"`
}

type LoadDirectoryResponse struct {
	Dir    string            `json:"dir"`
	Loaded int               `json:"loaded"`
	Failed map[string]string `json:"failed,omitempty"`
}

func NewStoreHandler(initService *service.InitStoreService, loadService *service.LoadDirectoryService) *StoreHandler {
	return &StoreHandler{
		initService: initService,
		loadService: loadService,
	}
}

func (h *StoreHandler) InitStore(w http.ResponseWriter, r *http.Request) {
	var request InitStoreRequest
	if err := handler.DecodeBody(r, &request); err != nil {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()})
		return
	}
	result := h.initService.Execute(service.InitStoreCommand{Name: request.Name})
	handler.WriteJSON(w, http.StatusOK, InitStoreResponse{Name: result.Name})
}

func (h *StoreHandler) LoadDirectory(w http.ResponseWriter, r *http.Request) {
	var request LoadDirectoryRequest
	if err := handler.DecodeBody(r, &request); err != nil {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: err.Error()})
		return
	}
	if request.Dir == "" {
		handler.WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: "dir is required"})
		return
	}

	result, err := h.loadService.Execute(service.LoadDirectoryCommand{Dir: request.Dir})
	if err != nil {
		handler.WriteError(w, err)
		return
	}
	response := LoadDirectoryResponse{Dir: result.Dir, Loaded: result.Loaded}
	if len(result.Failed) > 0 {
		response.Failed = make(map[string]string, len(result.Failed))
		for path, ferr := range result.Failed {
			response.Failed[path] = ferr.Error()
		}
	}
	handler.WriteJSON(w, http.StatusOK, response)
}
