package render

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
)

// hoverScript positions and fills the most recently created tooltip. There is
// no matching leave handler, the tooltip stays where it was last shown.
const hoverScript = `
function showTooltip(evt, year, month, text) {
	var tips = document.querySelectorAll("#tooltip");
	if (tips.length === 0) {
		return;
	}
	var tip = tips[tips.length - 1];
	tip.style.transition = "opacity 100ms";
	tip.style.opacity = "0.9";
	tip.style.left = (evt.pageX + 15) + "px";
	tip.style.top = (evt.pageY - 15) + "px";
	tip.setAttribute("data-month", month);
	tip.setAttribute("data-year", year);
	tip.innerHTML = text;
}
`

func scriptNode() *html.Node {
	return &html.Node{
		Type: html.RawNode,
		Data: "<script type=\"text/javascript\"><![CDATA[" + hoverScript + "]]></script>",
	}
}

func tooltipNode() *html.Node {
	return element("div",
		"id", "tooltip",
		"style", "position: absolute; opacity: 0; pointer-events: none;",
	)
}

// hoverHandler is the inline pointer-enter handler of one cell.
func hoverHandler(c Cell) string {
	return fmt.Sprintf("showTooltip(evt, %d, %d, %s)", c.Year, c.Month, strconv.Quote(TooltipText(c)))
}
