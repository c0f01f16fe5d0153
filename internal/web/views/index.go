// Package views renders the HTML page for the live solution stream.
// Components are built with templ.ComponentFunc directly, so no code
// generation step is needed.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/tbrandt/calendar-puzzle-engine/internal/protocol"
)

// IndexPage renders the empty marked board and a small client that
// subscribes to /stream, kicks off the search, and appends every
// solution the server broadcasts.
func IndexPage(s protocol.BoardSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snapshot, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>calendar puzzle %02d/%02d</title>
<style>
body { font-family: monospace; background: #111; color: #ddd; margin: 2rem; }
pre { letter-spacing: 0.2em; line-height: 1.2; }
.solution { display: inline-block; margin: 0.5rem 1rem 0.5rem 0; padding: 0.5rem; border: 1px solid #333; }
</style>
</head>
<body>
<h1>calendar puzzle %02d/%02d</h1>
<p id="status">connecting…</p>
<div id="solutions"></div>
<script>
const snapshot = %s;
const status = document.getElementById("status");
const solutions = document.getElementById("solutions");
const sock = new WebSocket("ws://" + location.host + "/stream");
sock.onopen = () => {
  status.textContent = "searching…";
  sock.send(JSON.stringify({type: "RequestStartSearch", payload: {day: snapshot.day, month: snapshot.month}}));
};
sock.onmessage = (ev) => {
  const env = JSON.parse(ev.data);
  if (env.type === "SolutionFound") {
    const pre = document.createElement("pre");
    pre.className = "solution";
    pre.textContent = "#" + env.payload.number + "\n" + env.payload.rows.join("\n");
    solutions.appendChild(pre);
  } else if (env.type === "SearchFinished") {
    status.textContent = env.payload.solutions + " solutions, " + env.payload.calls + " calls";
  } else if (env.type === "SearchRejected") {
    status.textContent = "rejected: " + env.payload.reason;
  }
};
sock.onclose = () => { if (status.textContent === "searching…") status.textContent = "disconnected"; };
</script>
</body>
</html>
`, s.Month, s.Day, s.Month, s.Day, snapshot); err != nil {
			return err
		}
		return nil
	})
}
