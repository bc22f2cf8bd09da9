package search

import "strings"

// Family identifies one of the five record categories the engine searches.
type Family int

const (
	FamilyJournal Family = iota + 1
	FamilyDocuments
	FamilyMedical
	FamilyMilestones
	FamilyGrowth
)

// Families lists every family in merge order.
var Families = []Family{
	FamilyJournal, FamilyDocuments, FamilyMedical, FamilyMilestones, FamilyGrowth,
}

var familyLabels = map[Family]string{
	FamilyJournal:    "diário",
	FamilyDocuments:  "documentos",
	FamilyMedical:    "saúde",
	FamilyMilestones: "marcos",
	FamilyGrowth:     "crescimento",
}

var familyEmojis = map[Family]string{
	FamilyJournal:    "📔",
	FamilyDocuments:  "📄",
	FamilyMedical:    "🏥",
	FamilyMilestones: "🌟",
	FamilyGrowth:     "📈",
}

// Label returns the user-facing Portuguese label for the family.
func (f Family) Label() string {
	return familyLabels[f]
}

// Emoji returns the emoji prefixed to result titles of the family.
func (f Family) Emoji() string {
	return familyEmojis[f]
}

// triggerKeywords routes a query to a family when the normalized query
// contains any of the family's terms. The lists are hand-curated.
var triggerKeywords = map[Family][]string{
	FamilyJournal: {
		"escrevi", "senti", "quando", "diário", "diario", "lembrança", "memória",
	},
	FamilyDocuments: {
		"documento", "certidão", "vacina", "carteirinha", "receita", "exame",
		"onde está", "onde guardei",
	},
	FamilyMedical: {
		"consulta", "médico", "médica", "ultrassom", "pré-natal", "sintoma", "pressão",
	},
	FamilyMilestones: {
		"marco", "primeira vez", "sorriso", "engatinhar", "andar", "falou", "dente",
	},
	FamilyGrowth: {
		"peso", "altura", "crescimento", "mediu", "ganhou peso", "percentil",
	},
}

// triggered reports whether the normalized query names this family.
func (f Family) triggered(query string) bool {
	if query == "" {
		return false
	}
	for _, keyword := range triggerKeywords[f] {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}
