package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlaytimeResult:
		o.printPlaytime(v)
	case CurrentServerResult:
		o.printCurrentServer(v)
	case ServersResult:
		o.printServers(v)
	default:
		o.printJSON(data)
	}
}

// PlaytimeResult is the outcome of a playtime lookup
type PlaytimeResult struct {
	UserID   string `json:"user_id"`
	Known    bool   `json:"known"`
	Playtime int    `json:"playtime_seconds"`
}

// CurrentServerResult is the outcome of a current server lookup
type CurrentServerResult struct {
	UserID   string `json:"user_id"`
	Online   bool   `json:"online"`
	ServerID string `json:"server_id,omitempty"`
}

// Server as listed by org-servers
type Server struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

// ServersResult is the outcome of an organization servers lookup
type ServersResult struct {
	OrganizationID string   `json:"organization_id"`
	Servers        []Server `json:"servers"`
}

func (o *Output) printPlaytime(p PlaytimeResult) {
	fmt.Fprintf(o.w, "Player: %s\n", p.UserID)
	if !p.Known {
		fmt.Fprintln(o.w, "Playtime: unknown")
		return
	}
	fmt.Fprintf(o.w, "Playtime: %s (%d seconds)\n", formatPlaytime(p.Playtime), p.Playtime)
}

func (o *Output) printCurrentServer(c CurrentServerResult) {
	fmt.Fprintf(o.w, "Player: %s\n", c.UserID)
	if !c.Online {
		fmt.Fprintln(o.w, "Status: offline")
		return
	}
	fmt.Fprintln(o.w, "Status: online")
	fmt.Fprintf(o.w, "Server: %s\n", c.ServerID)
}

func (o *Output) printServers(s ServersResult) {
	fmt.Fprintf(o.w, "Organization: %s\n", s.OrganizationID)
	fmt.Fprintf(o.w, "Servers (%d):\n", len(s.Servers))
	for _, server := range s.Servers {
		fmt.Fprintf(o.w, "  - %s (%s) %s:%d\n", server.Name, server.ID, server.IP, server.Port)
	}
}

func formatPlaytime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	var sb strings.Builder
	if hours > 0 {
		fmt.Fprintf(&sb, "%dh ", hours)
	}
	fmt.Fprintf(&sb, "%dm", minutes)
	return sb.String()
}
