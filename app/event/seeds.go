package event

import "time"

// SeedEvents returns the built-in historical events loaded at startup.
// They arrive already classified with bespoke impact vectors; their
// deltas are never folded into the pillar health scores, which start
// neutral regardless.
func SeedEvents() []Event {
	seeds := []Event{
		{
			Title:       "The Titanic Sinks",
			Description: "On board: John Jacob Astor IV, Benjamin Guggenheim, Isidor Straus. All wealthy. All opposed to the creation of a central bank. J.P. Morgan owned the ship. He canceled last minute. They didn't. The resistance sank. The system rose.",
			Lat:         41.7325,
			Lng:         -49.9469,
			Date:        time.Date(1912, 4, 15, 0, 0, 0, 0, time.UTC),
			Source:      "Historical",
			Tier:        0,
			PillarImpacts: PillarImpacts{
				Economy: -15, Spirituality: -5, Family: -5, Education: 0, Media: 0, Legal: -10,
			},
		},
		{
			Title:       "The Federal Reserve Created",
			Description: "Not federal. No reserves. A private banking cartel now controls America's money. They print. They lend. You owe. The U.S. dollar became a tool. And your time became their interest.",
			Lat:         38.8951,
			Lng:         -77.0364,
			Date:        time.Date(1913, 12, 23, 0, 0, 0, 0, time.UTC),
			Source:      "Historical",
			Tier:        0,
			PillarImpacts: PillarImpacts{
				Economy: -15, Spirituality: 0, Family: -5, Education: 0, Media: 0, Legal: -15,
			},
		},
		{
			Title:       "IRS Established",
			Description: "The same year they took over money... They started taxing your income. You work. They print. You pay them back... With interest. It's not about funding government. It's about keeping you in the system.",
			Lat:         38.8951,
			Lng:         -77.0364,
			Date:        time.Date(1913, 10, 3, 0, 0, 0, 0, time.UTC),
			Source:      "Historical",
			Tier:        0,
			PillarImpacts: PillarImpacts{
				Economy: -10, Spirituality: 0, Family: -5, Education: 0, Media: 0, Legal: -10,
			},
		},
		{
			Title:       "Rockefeller Foundation Established",
			Description: "The oil kings go \"philanthropic.\" The Rockefeller Foundation begins reshaping: Medicine, Education, Science, World health. They didn't donate money. They bought influence. Result? People are sicker and more dependent than ever.",
			Lat:         40.7589,
			Lng:         -73.9851,
			Date:        time.Date(1913, 5, 14, 0, 0, 0, 0, time.UTC),
			Source:      "Historical",
			Tier:        1,
			PillarImpacts: PillarImpacts{
				Economy: -5, Spirituality: -5, Family: -5, Education: -10, Media: -5, Legal: 0,
			},
		},
		{
			Title:       "American Cancer Society Founded",
			Description: "Marketed as charity. But tied to the same forces pushing: Patented drugs, Industrial food, Fear, Chemotherapy (came from war chemicals that were later banned in wars). They built the cancer industry. Not a cure.",
			Lat:         40.7589,
			Lng:         -73.9851,
			Date:        time.Date(1913, 5, 22, 0, 0, 0, 0, time.UTC),
			Source:      "Historical",
			Tier:        1,
			PillarImpacts: PillarImpacts{
				Economy: -5, Spirituality: -3, Family: -8, Education: -5, Media: -5, Legal: 0,
			},
		},
	}

	for i := range seeds {
		seeds[i].ID = NewID("historical", seeds[i].Title)
		seeds[i].classified = true
	}

	return seeds
}
