package battlemetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/battlemetrics/internal/config"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/jsonapi"
)

// Canned responses for local development without a BattleMetrics token
var mockedResponses = map[string]string{
	"/servers": `{"data":[
		{"type":"server","id":"1001","attributes":{"name":"Development Server #1","ip":"127.0.0.1","port":28015}},
		{"type":"server","id":"1002","attributes":{"name":"Development Server #2","ip":"127.0.0.1","port":28016}}
	]}`,
	"/players":                                   `{"data":[{"type":"player","id":"1"}]}`,
	"/players/{playerID}/relationships/sessions": `{"data":[{"type":"session","id":"s","relationships":{"server":{"data":{"type":"server","id":"1001"}}}}]}`,
	"/players/{playerID}/servers/{serverID}":     `{"data":{"type":"serverInfo","attributes":{"online":true}}}`,
	"/players/{playerID}":                        `{"data":{"type":"player","id":"1"},"included":[{"type":"server","id":"1001","meta":{"timePlayed":3600}}]}`,
}

type mockedBattleMetricsAPI struct{}

func (api *mockedBattleMetricsAPI) GetDocument(ctx context.Context, token string, endpoint Endpoint) (jsonapi.Document, error) {
	if endpoint.URL == "" {
		return jsonapi.Document{}, fmt.Errorf("%w: missing url", domain.ErrInvalidArgument)
	}

	data, ok := mockedResponses[endpoint.Name]
	if !ok {
		return jsonapi.Document{}, fmt.Errorf("%w: no mocked response for %s", domain.ErrNotFound, endpoint.Name)
	}

	return jsonapi.Parse([]byte(data))
}

func NewBattleMetricsAPIOrMock(config config.Config, httpClient HttpClient, nowFunc func() time.Time) (BattleMetricsAPI, error) {
	if config.BattleMetricsToken() != "" {
		return NewBattleMetricsAPI(httpClient, nowFunc)
	}
	if config.IsDevelopment() {
		return &mockedBattleMetricsAPI{}, nil
	}
	return nil, fmt.Errorf("Missing BattleMetrics token in non-development environment")
}
