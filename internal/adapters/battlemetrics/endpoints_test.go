package battlemetrics_test

import (
	"testing"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	endpoints := battlemetrics.NewDefaultEndpoints()

	cases := []struct {
		name     string
		endpoint battlemetrics.Endpoint
		url      string
	}{
		{
			name:     "organization servers",
			endpoint: endpoints.OrganizationServers("12345"),
			url:      "https://api.battlemetrics.com/servers?filter[organizations]=12345&filter[game]=rust&page[size]=100",
		},
		{
			name:     "player search",
			endpoint: endpoints.PlayerSearch(76561198000000000),
			url:      "https://api.battlemetrics.com/players?filter[search]=76561198000000000",
		},
		{
			name:     "player sessions",
			endpoint: endpoints.PlayerSessions("p1"),
			url:      "https://api.battlemetrics.com/players/p1/relationships/sessions",
		},
		{
			name:     "player server",
			endpoint: endpoints.PlayerServer("p1", "srv1"),
			url:      "https://api.battlemetrics.com/players/p1/servers/srv1",
		},
		{
			name:     "player with servers",
			endpoint: endpoints.PlayerWithServers("p1"),
			url:      "https://api.battlemetrics.com/players/p1?include=server",
		},
		{
			name:     "path segments are escaped",
			endpoint: endpoints.PlayerServer("p/1", "srv 1"),
			url:      "https://api.battlemetrics.com/players/p%2F1/servers/srv%201",
		},
		{
			name:     "query values are escaped",
			endpoint: endpoints.OrganizationServers("1&page[size]=1"),
			url:      "https://api.battlemetrics.com/servers?filter[organizations]=1%26page%5Bsize%5D%3D1&filter[game]=rust&page[size]=100",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.url, c.endpoint.URL)
			require.NotEmpty(t, c.endpoint.Name)
		})
	}

	t.Run("no game filter and no page size", func(t *testing.T) {
		t.Parallel()

		endpoint := battlemetrics.NewEndpoints("https://example.com/", "", 0).OrganizationServers("42")
		require.Equal(t, "https://example.com/servers?filter[organizations]=42", endpoint.URL)
	})

	t.Run("empty base url uses the public api", func(t *testing.T) {
		t.Parallel()

		endpoint := battlemetrics.NewEndpoints("", "ark", 10).OrganizationServers("42")
		require.Equal(t, "https://api.battlemetrics.com/servers?filter[organizations]=42&filter[game]=ark&page[size]=10", endpoint.URL)
	})
}
