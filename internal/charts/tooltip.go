package charts

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// maxContextRunes caps free-text context lines in tooltips.
const maxContextRunes = 80

func escape(s string) string {
	return html.EscapeString(s)
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// involvementPhrase maps a responsibility weight to the wording used in
// heatmap tooltips.
func involvementPhrase(weight int) string {
	switch {
	case weight >= 80:
		return "primary focus"
	case weight >= 50:
		return "regular responsibility"
	case weight >= 20:
		return "occasional involvement"
	default:
		return "minimal involvement"
	}
}

// lookupFormatter builds a tooltip formatter that resolves pre-rendered HTML
// snippets by the given JS key expression, e.g. "params.name". Items without
// a snippet fall back to their name.
func lookupFormatter(keyExpr string, tips map[string]string) types.FuncStr {
	// json.Marshal escapes angle brackets, so the payload is safe to embed
	// inside the page script.
	payload, _ := json.Marshal(tips)
	return opts.FuncOpts(fmt.Sprintf(
		"function (params) { var tips = %s; return tips[%s] || params.name; }",
		payload, keyExpr))
}
