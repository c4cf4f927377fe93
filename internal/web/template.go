package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"hms": status.FormatHMS,
	"stateClass": func(s string) string {
		switch s {
		case "RUNNING":
			return "running"
		case "PAUSED":
			return "paused"
		case "GRACE_PERIOD":
			return "grace"
		}
		return "unknown"
	},
	"orDash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="2">
<title>Productivity Monitor</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.badge { display: inline-block; padding: 2px 10px; border-radius: 4px; color: white; font-weight: bold; }
.badge.running { background: green; }
.badge.paused { background: #c0392b; }
.badge.grace { background: orange; }
.badge.unknown { background: #888; }
.elapsed { font-size: 2em; font-weight: bold; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>Productivity Monitor</h1>

<p>
<span class="badge {{stateClass (printf "%s" .State)}}">{{.State}}</span>
{{if eq (printf "%s" .State) "GRACE_PERIOD"}} ({{.RemainingGrace}}s left){{end}}
</p>
<p class="elapsed">{{hms .ElapsedSeconds}}</p>

<table>
<tr><th>Session</th><td>#{{.SessionID}}</td></tr>
<tr><th>Punched in</th><td>{{.StartTime.Format "2006-01-02 15:04:05 MST"}} ({{uptime .Uptime}} ago)</td></tr>
<tr><th>Active window</th><td>{{orDash .ActiveTitle}}</td></tr>
<tr><th>Classification</th><td>{{orDash (printf "%s" .Screen)}}</td></tr>
<tr><th>MQTT</th><td>{{if .MQTTConnected}}<span class="connected">connected</span>{{else}}<span class="disconnected">disconnected</span>{{end}} ({{.Config.Broker}})</td></tr>
</table>

<table>
<tr><th>Runs started</th><td>{{.Counts.Running}}</td></tr>
<tr><th>Grace periods</th><td>{{.Counts.Grace}}</td></tr>
<tr><th>Pauses</th><td>{{.Counts.Paused}}</td></tr>
</table>

<table>
<tr><th>Poll interval</th><td>{{.Config.PollMs}} ms</td></tr>
<tr><th>Grace period</th><td>{{.Config.GraceMs}} ms</td></tr>
<tr><th>Flush interval</th><td>{{.Config.FlushMs}} ms</td></tr>
<tr><th>Heartbeat</th><td>{{.Config.HeartbeatMs}} ms</td></tr>
<tr><th>Database</th><td>{{.Config.DBPath}}</td></tr>
<tr><th>Focus topic</th><td>{{.Config.FocusTopic}}</td></tr>
</table>

<p><a href="/index.json">index.json</a></p>
</body>
</html>
`

// renderHTML writes the status page for the given snapshot.
func renderHTML(w io.Writer, snap status.Snapshot) {
	_ = indexTmpl.Execute(w, snap)
}
