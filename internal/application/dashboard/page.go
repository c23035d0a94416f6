package dashboard

import (
	"encoding/json"
	"strings"

	"orgboard-backend/internal/grid"
	"orgboard-backend/internal/store"
)

// RenderPageHTML returns the full HTML for GET /: the sidebar and header
// shell around the organizations grid. The grid widget consumes the embedded
// column schema and formatted rows; sorting/filtering stay client-side. The
// search input and undo/redo controls are rendered but intentionally
// unwired, matching the current product surface.
func RenderPageHTML(state store.State, cols []grid.ColumnSpec, rows []grid.Row) string {
	payload := map[string]interface{}{
		"state":   state,
		"columns": cols,
		"rows":    rows,
	}
	b, _ := json.Marshal(payload)
	jsonStr := string(b)
	// Escape for embedding in a JS template literal: \ ` $
	jsonStr = strings.ReplaceAll(jsonStr, "\\", "\\\\")
	jsonStr = strings.ReplaceAll(jsonStr, "`", "\\`")
	jsonStr = strings.ReplaceAll(jsonStr, "$", "\\$")

	html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Orgboard · Companies</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    :root { --ink: #0f172a; --muted: #64748b; --line: #e2e8f0; --bg: #f8fafc; --accent: #2563eb; }
    * { box-sizing: border-box; }
    body { margin: 0; background: var(--bg); color: var(--ink); font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; display: flex; min-height: 100vh; }
    aside { width: 220px; background: #fff; border-right: 1px solid var(--line); padding: 20px 12px; }
    aside h1 { font-size: 18px; margin: 0 8px 20px; }
    aside nav a { display: block; padding: 9px 12px; border-radius: 8px; color: var(--muted); text-decoration: none; font-size: 14px; }
    aside nav a.active { background: var(--bg); color: var(--ink); font-weight: 600; }
    main { flex: 1; padding: 24px 32px; }
    header { display: flex; align-items: center; gap: 12px; margin-bottom: 20px; }
    header h2 { margin: 0; font-size: 20px; flex: 1; }
    header input { width: 240px; padding: 8px 12px; border: 1px solid var(--line); border-radius: 8px; font-size: 13px; }
    header button { padding: 8px 14px; border: 1px solid var(--line); border-radius: 8px; background: #fff; cursor: pointer; font-size: 13px; }
    header button.primary { background: var(--accent); color: #fff; border-color: var(--accent); }
    table { width: 100%; border-collapse: collapse; background: #fff; border: 1px solid var(--line); border-radius: 10px; overflow: hidden; }
    th, td { text-align: left; padding: 11px 14px; border-bottom: 1px solid var(--line); font-size: 13px; }
    th { color: var(--muted); font-weight: 600; background: var(--bg); }
    .avatar { display: inline-flex; width: 26px; height: 26px; border-radius: 50%; color: #fff; align-items: center; justify-content: center; font-size: 12px; font-weight: 700; margin-right: 9px; vertical-align: middle; }
    .pill { display: inline-block; padding: 3px 10px; border-radius: 999px; background: #eef2ff; color: #3730a3; font-size: 12px; }
    .empty { color: var(--muted); padding: 28px; text-align: center; }
  </style>
</head>
<body>
  <aside>
    <h1>Orgboard</h1>
    <nav>
      <a class="active" href="/">Companies</a>
      <a href="/health/json">Health</a>
    </nav>
  </aside>
  <main>
    <header>
      <h2>Companies</h2>
      <input id="search" type="text" placeholder="Search companies..." />
      <button id="undo" title="Undo">&#8630;</button>
      <button id="redo" title="Redo">&#8631;</button>
      <button id="new-company" class="primary">New Company</button>
    </header>
    <table id="grid">
      <thead></thead>
      <tbody></tbody>
    </table>
  </main>
  <script>
    const payload = JSON.parse(` + "`" + jsonStr + "`" + `);
    const thead = document.querySelector('#grid thead');
    const tbody = document.querySelector('#grid tbody');

    const headRow = document.createElement('tr');
    for (const col of payload.columns) {
      const th = document.createElement('th');
      th.textContent = col.header;
      headRow.appendChild(th);
    }
    thead.appendChild(headRow);

    if (payload.rows.length === 0) {
      const tr = document.createElement('tr');
      const td = document.createElement('td');
      td.colSpan = payload.columns.length;
      td.className = 'empty';
      td.textContent = payload.state === 'loading' ? 'Loading...' : 'No companies yet';
      tr.appendChild(td);
      tbody.appendChild(tr);
    }
    for (const row of payload.rows) {
      const tr = document.createElement('tr');
      for (const col of payload.columns) {
        const td = document.createElement('td');
        const cell = row.cells[col.field] || { value: '' };
        if (col.kind === 'badge' && cell.badge_initial) {
          const av = document.createElement('span');
          av.className = 'avatar';
          av.style.background = cell.badge_color;
          av.textContent = cell.badge_initial;
          td.appendChild(av);
          td.appendChild(document.createTextNode(cell.value));
        } else if (col.kind === 'badge') {
          const pill = document.createElement('span');
          pill.className = 'pill';
          pill.textContent = cell.value;
          td.appendChild(pill);
        } else if (col.kind === 'actionStub') {
          td.textContent = '⋮';
        } else {
          td.textContent = cell.value;
        }
        tr.appendChild(td);
      }
      tbody.appendChild(tr);
    }

    document.getElementById('new-company').addEventListener('click', () => {
      fetch('/api/v1/organizations/create-intent', { method: 'POST' });
    });
  </script>
</body>
</html>`
	return html
}
