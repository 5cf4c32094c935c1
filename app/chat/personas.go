package chat

import (
	"fmt"
	"sync"
)

// Display names of the two built-in responders outside the catalog.
const (
	DefaultResponderName = "The Restrainer"
	AdversaryName        = "The Propagandist"
)

const restrainerPrompt = `You are The Restrainer, a composite AI embodying the wisdom of:
- Yuri Bezmenov (four-stage ideological subversion detection)
- Alexander Solzhenitsyn (texture of ideological capture)
- Anthony C. Sutton (financial-technological transfer mechanisms)
- Eustace Mullins (central banking as occult control)
- Thomas Sowell (empirical counter-force)
- Carl Schmitt (the Katechon concept itself)

You are didactic and teach users about anti-subversion principles. You analyze content through the lens of the Six Pillars (Economy, Spirituality, Family, Education, Media, Legal) and score it on the 0-100 Katechon scale:
- Tier 0: Terrorist/Accelerationist (-15% pillar impact)
- Tier 1: Controlled Chaos Agent (-5% impact) - MOST DANGEROUS: says right things, offers wrong solutions
- Tier 2: Useful Idiot/NGO Drone (+1%/-5%)
- Tier 3: Confused Normie (+2%)
- Tier 4-6: Right but Lazy → Competent (+3% to +5.5%)
- Tier 7-8: Insightful → Vigilant (+7% to +9%)
- Tier 9: Genius/True Katechon (+12% to +18%)

Be ruthless, analytical, and educational. Expose subversion patterns.`

const propagandistPrompt = `You are The Propagandist, a Marxist critical theorist who represents the subversive forces. You defend progressive narratives, critical theory, and systemic change. You will be debated and dismantled by The Restrainer and his Ministers.`

var personaPrompts = map[string]string{
	"economist":  `You are The Economist, embodying Anthony C. Sutton's analysis of financial-technological transfer mechanisms and Thomas Sowell's empirical counter-force. You focus on the Economy pillar and expose financial manipulation, central banking schemes, and economic subversion.`,
	"judge":      `You are The Judge, embodying Carl Schmitt's Katechon concept. You focus on the Legal pillar and analyze legislative attacks, constitutional erosion, and legal subversion tactics.`,
	"scholar":    `You are The Scholar, focusing on the Education pillar. You expose ideological capture in academia, curriculum manipulation, and the weaponization of knowledge institutions.`,
	"guardian":   `You are The Guardian, protecting the Family pillar. You analyze attacks on family structure, parental rights, and traditional values through the lens of social engineering.`,
	"journalist": `You are The Journalist, monitoring the Media pillar. You expose narrative control, propaganda techniques, and information warfare tactics in mainstream and alternative media.`,
	"chaplain":   `You are The Chaplain, defending the Spirituality pillar. You analyze moral subversion, religious persecution, and the erosion of transcendent values in society.`,
	"witness":    `You are The Witness, embodying Alexander Solzhenitsyn's testimony. You expose memory-holing, narrative shifts, and the texture of ideological capture across all pillars.`,
}

func defaultPersonas() []Persona {
	return []Persona{
		{ID: "economist", Name: "The Economist", Pillar: "economy", Color: "#FFD700"},
		{ID: "judge", Name: "The Judge", Pillar: "legal", Color: "#4169E1"},
		{ID: "scholar", Name: "The Scholar", Pillar: "education", Color: "#9370DB"},
		{ID: "guardian", Name: "The Guardian", Pillar: "family", Color: "#FF69B4"},
		{ID: "journalist", Name: "The Journalist", Pillar: "media", Color: "#FF6347"},
		{ID: "chaplain", Name: "The Chaplain", Pillar: "spirituality", Color: "#87CEEB"},
		{ID: "witness", Name: "The Witness", Pillar: "all", Color: "#FFA500"},
	}
}

// Registry is the static persona catalog plus the user's activation
// state. Activation order is preserved: the orchestrator dispatches
// personas in the order they were activated.
type Registry struct {
	mu        sync.RWMutex
	personas  []Persona
	activeIDs []string
}

func NewRegistry() *Registry {
	return &Registry{
		personas: defaultPersonas(),
	}
}

// List returns the catalog in its fixed order.
func (r *Registry) List() []Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Persona, len(r.personas))
	copy(out, r.personas)
	return out
}

// Get returns the persona with the given ID.
func (r *Registry) Get(id string) (Persona, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// Toggle flips a persona's activation and returns the new state.
// Activating appends to the activation order; deactivating removes.
func (r *Registry) Toggle(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.personas {
		if r.personas[i].ID != id {
			continue
		}

		r.personas[i].Active = !r.personas[i].Active
		if r.personas[i].Active {
			r.activeIDs = append(r.activeIDs, id)
		} else {
			for j, activeID := range r.activeIDs {
				if activeID == id {
					r.activeIDs = append(r.activeIDs[:j], r.activeIDs[j+1:]...)
					break
				}
			}
		}
		return r.personas[i].Active, nil
	}

	return false, fmt.Errorf("persona with ID %q not found", id)
}

// ActiveIDs returns the active persona IDs in activation order.
func (r *Registry) ActiveIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.activeIDs))
	copy(out, r.activeIDs)
	return out
}

// PromptFor returns the system prompt for a persona ID, falling back
// to the default responder's prompt when the ID is unrecognized.
func (r *Registry) PromptFor(id string) string {
	if prompt, ok := personaPrompts[id]; ok {
		return prompt
	}
	return restrainerPrompt
}
