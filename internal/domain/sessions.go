package domain

// Session holds the ids of the servers a player has sessions on, most recent first
type Session struct {
	Servers []string
}

func NewSession() Session {
	return Session{Servers: []string{}}
}

// Returns the server of the most recent session, if any
func (s Session) LastServer() (string, bool) {
	if len(s.Servers) == 0 {
		return "", false
	}
	return s.Servers[0], true
}
