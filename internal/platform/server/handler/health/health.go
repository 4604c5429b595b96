package health

import (
	"net/http"

	"BattleFS/internal/platform/server/handler"
)

type StatusResponse struct {
	Status string `json:"status"`
}

func CheckHandler(w http.ResponseWriter, _ *http.Request) {
	handler.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
