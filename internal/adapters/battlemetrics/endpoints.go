package battlemetrics

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Amund211/battlemetrics/internal/constants"
)

const (
	DefaultGame     = "rust"
	DefaultPageSize = 100
)

// A request target on the BattleMetrics API.
// Name is the route template, used for metrics and spans.
type Endpoint struct {
	Name string
	URL  string
}

type Endpoints struct {
	baseURL  string
	game     string
	pageSize int
}

// game == "" disables the game filter, pageSize <= 0 uses the API default page size
func NewEndpoints(baseURL string, game string, pageSize int) Endpoints {
	if baseURL == "" {
		baseURL = constants.BATTLEMETRICS_API_BASE_URL
	}
	return Endpoints{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		game:     game,
		pageSize: pageSize,
	}
}

func NewDefaultEndpoints() Endpoints {
	return NewEndpoints(constants.BATTLEMETRICS_API_BASE_URL, DefaultGame, DefaultPageSize)
}

func (e Endpoints) OrganizationServers(organizationID string) Endpoint {
	query := fmt.Sprintf("filter[organizations]=%s", url.QueryEscape(organizationID))
	if e.game != "" {
		query += fmt.Sprintf("&filter[game]=%s", url.QueryEscape(e.game))
	}
	if e.pageSize > 0 {
		query += fmt.Sprintf("&page[size]=%d", e.pageSize)
	}

	return Endpoint{
		Name: "/servers",
		URL:  fmt.Sprintf("%s/servers?%s", e.baseURL, query),
	}
}

func (e Endpoints) PlayerSearch(userID uint64) Endpoint {
	return Endpoint{
		Name: "/players",
		URL:  fmt.Sprintf("%s/players?filter[search]=%s", e.baseURL, strconv.FormatUint(userID, 10)),
	}
}

func (e Endpoints) PlayerSessions(playerID string) Endpoint {
	return Endpoint{
		Name: "/players/{playerID}/relationships/sessions",
		URL:  fmt.Sprintf("%s/players/%s/relationships/sessions", e.baseURL, url.PathEscape(playerID)),
	}
}

func (e Endpoints) PlayerServer(playerID string, serverID string) Endpoint {
	return Endpoint{
		Name: "/players/{playerID}/servers/{serverID}",
		URL:  fmt.Sprintf("%s/players/%s/servers/%s", e.baseURL, url.PathEscape(playerID), url.PathEscape(serverID)),
	}
}

func (e Endpoints) PlayerWithServers(playerID string) Endpoint {
	return Endpoint{
		Name: "/players/{playerID}",
		URL:  fmt.Sprintf("%s/players/%s?include=server", e.baseURL, url.PathEscape(playerID)),
	}
}
