package aigateway

import "fmt"

// Glass shape by wine type. The keys double as bottleStyle overrides.
var bottleDescriptions = map[string]string{
	"red":       "dark green glass Bordeaux-style bottle with tall shoulders and a deep punt",
	"red-blend": "dark green glass Bordeaux-style bottle with tall shoulders and elegant proportions",
	"white":     "clear or pale green glass Burgundy-style bottle with sloping shoulders",
	"riesling":  "tall, slender green-amber Rhine-style bottle with elegant elongated shape",
	"moscato":   "clear glass Italian-style bottle with elegant curves",
	"rose":      "clear or pale pink glass Provence-style bottle",
}

func bottleDescription(wineType, bottleStyle string) string {
	if bottleStyle != "" {
		if desc, ok := bottleDescriptions[bottleStyle]; ok {
			return desc
		}
	}
	if desc, ok := bottleDescriptions[wineType]; ok {
		return desc
	}
	return bottleDescriptions["red"]
}

func buildPrompt(wineType, bottleStyle string) string {
	return fmt.Sprintf(`Create a photorealistic product photograph of this premium wine bottle.
The bottle should be a %s.
The wine label shown in the image should be clearly visible and prominently displayed on the bottle.
Place the bottle on an elegant dark wood surface with warm, soft studio lighting.
Background: smooth gradient from deep charcoal (#1A1A1A) to warm cream (#F3E8D9).
Style: luxury wine advertisement, high-end product photography, slight reflection on surface.
The overall feel should be sophisticated, warm, and premium like a $250k wine brand.
Make sure the label is perfectly wrapped around the curved surface of the bottle.`, bottleDescription(wineType, bottleStyle))
}
