package patterns

// actionVerbGroups lists strong resume action verbs by semantic category.
// Several verbs appear in more than one category ("coordinated", "managed");
// the flattened vocabulary deduplicates them.
var actionVerbGroups = map[string][]string{
	"achievement": {
		"achieved", "accomplished", "attained", "surpassed", "exceeded", "delivered",
		"earned", "won", "secured", "obtained", "gained",
	},
	"leadership": {
		"led", "managed", "directed", "supervised", "coordinated", "orchestrated",
		"oversaw", "governed", "administered", "headed", "chaired", "presided",
	},
	"creation": {
		"developed", "created", "built", "designed", "engineered", "architected",
		"constructed", "established", "founded", "formulated", "generated", "produced",
		"crafted", "authored", "composed", "invented", "pioneered",
	},
	"execution": {
		"implemented", "executed", "deployed", "launched", "delivered", "released",
		"rolled out", "initiated", "introduced", "installed", "integrated",
	},
	"improvement": {
		"improved", "enhanced", "optimized", "streamlined", "upgraded", "modernized",
		"refined", "strengthened", "boosted", "accelerated", "maximized",
		"revitalized", "transformed", "revolutionized", "overhauled",
	},
	"growth": {
		"increased", "expanded", "grew", "scaled", "amplified", "multiplied",
		"broadened", "extended", "widened", "elevated",
	},
	"reduction": {
		"reduced", "decreased", "minimized", "eliminated", "cut", "slashed",
		"trimmed", "lowered", "diminished", "compressed",
	},
	"analysis": {
		"analyzed", "evaluated", "assessed", "examined", "investigated", "researched",
		"studied", "reviewed", "audited", "diagnosed", "measured", "quantified",
		"surveyed", "tested", "validated", "verified",
	},
	"collaboration": {
		"collaborated", "partnered", "cooperated", "liaised", "coordinated",
		"communicated", "presented", "reported", "briefed", "consulted",
		"advised", "counseled", "negotiated", "mediated", "facilitated",
	},
	"training": {
		"trained", "mentored", "coached", "educated", "taught", "instructed",
		"guided", "developed", "cultivated", "nurtured", "onboarded",
	},
	"organization": {
		"organized", "planned", "scheduled", "prioritized", "allocated",
		"arranged", "structured", "systematized", "standardized",
	},
	"problemsolving": {
		"resolved", "solved", "fixed", "debugged", "troubleshot", "addressed",
		"rectified", "remedied", "corrected", "repaired",
	},
	"innovation": {
		"automated", "innovated", "pioneered", "spearheaded", "championed",
		"drove", "propelled", "catalyzed",
	},
	"migration": {
		"migrated", "converted", "transitioned", "upgraded", "refactored",
		"redesigned", "reengineered", "rebuilt",
	},
	"maintenance": {
		"maintained", "supported", "administered", "monitored", "operated",
		"managed", "serviced", "updated",
	},
	"documentation": {
		"documented", "recorded", "cataloged", "compiled", "drafted", "wrote",
		"published", "standardized",
	},
}

var verbGroupOrder = []string{
	"achievement", "leadership", "creation", "execution", "improvement",
	"growth", "reduction", "analysis", "collaboration", "training",
	"organization", "problemsolving", "innovation", "migration",
	"maintenance", "documentation",
}

var actionVerbPatterns []KeywordPattern

func init() {
	seen := make(map[string]bool)
	for _, group := range verbGroupOrder {
		for _, verb := range actionVerbGroups[group] {
			if seen[verb] {
				continue
			}
			seen[verb] = true
			actionVerbPatterns = append(actionVerbPatterns, KeywordPattern{
				Keyword: verb,
				Pattern: compileKeyword(verb),
			})
		}
	}
}

// ActionVerbs returns the flattened, deduplicated action verb vocabulary with
// precompiled matchers, in fixed enumeration order.
func ActionVerbs() []KeywordPattern {
	return actionVerbPatterns
}
