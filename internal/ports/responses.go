package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/reporting"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

type playtimeResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userID"`
	Playtime int    `json:"playtime"`
}

type currentServerResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userID"`
	ServerID string `json:"serverID,omitempty"`
	Online   bool   `json:"online"`
}

type serverResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

type serversResponse struct {
	Success bool             `json:"success"`
	Servers []serverResponse `json:"servers"`
}

func serversToResponse(servers []domain.Server) serversResponse {
	converted := make([]serverResponse, 0, len(servers))
	for _, server := range servers {
		converted = append(converted, serverResponse{
			ID:   server.ID,
			Name: server.Name,
			IP:   server.IP,
			Port: server.Port,
		})
	}
	return serversResponse{
		Success: true,
		Servers: converted,
	}
}

func writeJSONResponse(ctx context.Context, w http.ResponseWriter, statusCode int, response any) {
	data, err := json.Marshal(response)
	if err != nil {
		reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"cause":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func writeErrorResponse(ctx context.Context, w http.ResponseWriter, statusCode int, cause string) {
	writeJSONResponse(ctx, w, statusCode, errorResponse{Success: false, Cause: cause})
}

// Lookups only fail by not completing in time
func writeLookupErrorResponse(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeErrorResponse(ctx, w, http.StatusGatewayTimeout, "lookup timed out")
		return
	}
	// The client went away
	writeErrorResponse(ctx, w, http.StatusServiceUnavailable, "lookup cancelled")
}
