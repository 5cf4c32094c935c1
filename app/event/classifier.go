package event

// TierInfo is the static classification record for one tier.
type TierInfo struct {
	Tier        int
	Label       string
	Color       string
	BorderColor string

	// SeedImpacts is the pillar-impact vector used when the tier is
	// authoritatively known, e.g. for seeded historical events or a
	// tier assigned by analysis.
	SeedImpacts PillarImpacts
}

var tierTable = [10]TierInfo{
	{Tier: 0, Label: "Terrorist/Accelerationist", Color: "#FF0000",
		SeedImpacts: PillarImpacts{Economy: -15, Spirituality: -5, Family: -5, Education: 0, Media: 0, Legal: -10}},
	{Tier: 1, Label: "Controlled Chaos Agent", Color: "#FF4500",
		SeedImpacts: PillarImpacts{Economy: -5, Spirituality: -5, Family: -5, Education: -5, Media: -5, Legal: -5}},
	{Tier: 2, Label: "Useful Idiot", Color: "#FF8C00",
		SeedImpacts: PillarImpacts{Economy: -5, Spirituality: -5, Family: -5, Education: -5, Media: 1, Legal: -5}},
	{Tier: 3, Label: "Confused Normie", Color: "#FFA500",
		SeedImpacts: PillarImpacts{Economy: 2, Spirituality: 2, Family: 2, Education: 2, Media: 2, Legal: 2}},
	{Tier: 4, Label: "Right but Lazy", Color: "#FFD700",
		SeedImpacts: PillarImpacts{Economy: 3, Spirituality: 3, Family: 3, Education: 3, Media: 3, Legal: 3}},
	{Tier: 5, Label: "Competent", Color: "#FFD700",
		SeedImpacts: PillarImpacts{Economy: 4, Spirituality: 4, Family: 4, Education: 4, Media: 4, Legal: 4}},
	{Tier: 6, Label: "Competent", Color: "#FFD700",
		SeedImpacts: PillarImpacts{Economy: 5, Spirituality: 5, Family: 5, Education: 5, Media: 5, Legal: 5}},
	{Tier: 7, Label: "Insightful", Color: "#ADFF2F",
		SeedImpacts: PillarImpacts{Economy: 7, Spirituality: 7, Family: 7, Education: 7, Media: 7, Legal: 7}},
	{Tier: 8, Label: "Vigilant", Color: "#ADFF2F",
		SeedImpacts: PillarImpacts{Economy: 9, Spirituality: 9, Family: 9, Education: 9, Media: 9, Legal: 9}},
	{Tier: 9, Label: "True Katechon", Color: "#00FF00",
		SeedImpacts: PillarImpacts{Economy: 15, Spirituality: 15, Family: 15, Education: 15, Media: 15, Legal: 15}},
}

// Classify maps a tier to its display severity color, border color,
// label and seed pillar-impact vector. Out-of-range tiers are clamped
// to the nearest band. Pure lookup, no side effects.
func Classify(tier int) TierInfo {
	if tier < 0 {
		tier = 0
	}
	if tier > 9 {
		tier = 9
	}

	info := tierTable[tier]
	info.BorderColor = borderColor(tier)
	return info
}

func borderColor(tier int) string {
	switch {
	case tier <= 2:
		return "#8B0000"
	case tier <= 6:
		return "#FFD700"
	default:
		return "#00FF00"
	}
}
