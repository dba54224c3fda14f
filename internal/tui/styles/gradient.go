package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal foreground gradient
func ApplyGradient(text string, color1, color2 color.Color) string {
	if text == "" {
		return ""
	}

	clusters := graphemes(text)
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(color1).Render(text)
	}

	var output strings.Builder
	colors := blendColors(len(clusters), color1, color2)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i])
		output.WriteString(style.Render(cluster))
	}

	return output.String()
}

// RenderGradientBlock renders a width x height block with a diagonal
// background gradient and content centered on top of it. Content must be
// plain text; styled content would be flattened by the per-cell styling.
func RenderGradientBlock(content string, width, height int, color1, color2 color.Color, fg color.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	lines := strings.Split(placed, "\n")

	// One color per diagonal step so the block reads like a 45° gradient
	colors := blendColors(width+height-1, color1, color2)

	var out strings.Builder
	for y, line := range lines {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x, cluster := range graphemes(line) {
			if x >= width {
				break
			}
			style := lipgloss.NewStyle().
				Background(colors[x+y]).
				Foreground(fg)
			out.WriteString(style.Render(cluster))
		}
	}

	return out.String()
}

// graphemes splits text into user-perceived characters
func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blendColors creates a gradient between colors
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	colors := make([]color.Color, steps)

	// Convert to colorful for better blending
	c1, _ := colorful.MakeColor(color1)
	c2, _ := colorful.MakeColor(color2)

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		// Use HCL color space for perceptually uniform blending
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}

	return colors
}
