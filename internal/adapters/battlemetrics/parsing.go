package battlemetrics

import (
	"iter"
	"math"
	"strings"

	"github.com/Amund211/battlemetrics/internal/dispatch"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/jsonapi"
)

// The BattleMetrics API follows JSON:API (top level data, included, relationships).
// Every field is optional: a missing field or a field of the wrong type means "no data".

// ExtractPlayerID returns the id of the first player in a player search response
func ExtractPlayerID(doc jsonapi.Document) (string, bool) {
	players, ok := doc.Get("data").AsArray()
	if !ok || len(players) == 0 {
		return "", false
	}

	playerID, ok := resourceID(players[0])
	if !ok || strings.TrimSpace(playerID) == "" {
		return "", false
	}
	return playerID, true
}

// ExtractServers yields the valid servers in a server list response, in response order
func ExtractServers(doc jsonapi.Document) iter.Seq[domain.Server] {
	return func(yield func(domain.Server) bool) {
		servers, ok := doc.Get("data").AsArray()
		if !ok {
			return
		}

		for _, element := range servers {
			server := serverFromResource(element)
			if !server.IsValid() {
				continue
			}
			if !yield(server) {
				return
			}
		}
	}
}

func serverFromResource(resource jsonapi.Document) domain.Server {
	id, _ := resourceID(resource)
	attributes := resource.Get("attributes")

	return domain.Server{
		ID:   id,
		Name: attributes.Get("name").StringOr(""),
		IP:   attributes.Get("ip").StringOr(""),
		Port: attributes.Get("port").IntOr(0),
	}
}

// ExtractSession collects the server of each session in a sessions response
func ExtractSession(doc jsonapi.Document) domain.Session {
	session := domain.NewSession()

	sessions, ok := doc.Get("data").AsArray()
	if !ok {
		return session
	}

	for _, element := range sessions {
		serverID, ok := resourceID(element.Path("relationships", "server", "data"))
		if !ok || serverID == "" {
			continue
		}
		session.Servers = append(session.Servers, serverID)
	}

	return session
}

// SumPlaytime sums meta.timePlayed over the included resources of a player response.
// Negative playtimes count as 0 and the sum saturates at math.MaxInt, so the result is never negative.
// Returns false if the document has no included array.
func SumPlaytime(doc jsonapi.Document) (int, bool) {
	included, ok := doc.Get("included").AsArray()
	if !ok {
		return 0, false
	}

	playtime := 0
	for _, element := range included {
		seconds := max(element.Path("meta", "timePlayed").IntOr(0), 0)
		if seconds > math.MaxInt-playtime {
			return math.MaxInt, true
		}
		playtime += seconds
	}
	return playtime, true
}

// ExtractTotalPlaytime computes the total playtime on worker and delivers it to callback on mainExecutor.
//
// Returns false, without scheduling anything, if the document has no included array.
func ExtractTotalPlaytime(doc jsonapi.Document, worker dispatch.Executor, mainExecutor dispatch.Executor, callback func(seconds int)) bool {
	if _, ok := doc.Get("included").AsArray(); !ok {
		return false
	}

	dispatch.RunInBackground(worker, mainExecutor, func() int {
		playtime, _ := SumPlaytime(doc)
		return playtime
	}, callback)

	return true
}

// IsOnline reads data.attributes.online from a player server response
func IsOnline(doc jsonapi.Document) bool {
	return doc.Path("data", "attributes", "online").BoolOr(false)
}

// Resource ids are strings, but accept numbers as well
func resourceID(resource jsonapi.Document) (string, bool) {
	idValue := resource.Get("id")
	if id, ok := idValue.AsString(); ok {
		return id, true
	}
	if number, ok := idValue.AsNumberText(); ok {
		return number, true
	}
	return "", false
}
