package domain

// A game server as listed by BattleMetrics
type Server struct {
	ID   string
	Name string
	IP   string
	Port int
}

func (s Server) IsValid() bool {
	return s.ID != "" && s.Name != "" && s.IP != "" && s.Port > 0
}
