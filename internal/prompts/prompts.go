// Package prompts holds the localized prompt templates, section titles and
// sentinels for the supported languages. The wording is load-bearing: model
// output quality and the downstream section extraction both depend on it, so
// change it only together with the parsing side.
package prompts

import (
	"fmt"

	"github.com/launchpath/canvas/internal/models"
)

// Placeholder used when the model returns a match line with no skills text.
const NoSkillsPlaceholder = "No skills information provided."

// noMatchSentinels is the per-language word the resolver prompt instructs the
// model to answer when none of the candidates fit.
var noMatchSentinels = map[models.Language]string{
	models.LangEnglish: "no",
	models.LangGerman:  "nein",
	models.LangSpanish: "no",
	models.LangFrench:  "non",
	models.LangItalian: "no",
	models.LangDutch:   "nee",
}

// NoMatchSentinel returns the localized "no match" answer word.
func NoMatchSentinel(lang models.Language) string {
	return noMatchSentinels[lang]
}

// sectionTitles lists the nine canvas section headings per language, in
// canonical canvas order. Extraction consumes them in this order.
var sectionTitles = map[models.Language][]string{
	models.LangEnglish: {
		"Customer Segments", "Value Proposition", "Customer Relationships",
		"Channels", "Revenue Streams", "Key Resources",
		"Key Activities", "Key Partners", "Cost Structure",
	},
	models.LangGerman: {
		"Kundensegmente", "Wertangebote", "Kundenbeziehungen",
		"Kanäle", "Einnahmequellen", "Schlüsselressourcen",
		"Schlüsselaktivitäten", "Schlüsselpartner", "Kostenstruktur",
	},
	models.LangFrench: {
		"Segments de Clients", "Proposition de Valeur", "Relations Clients",
		"Canaux", "Sources de Revenus", "Ressources Clés",
		"Activités Clés", "Partenaires Clés", "Structure des Coûts",
	},
	models.LangSpanish: {
		"Segmentos de Clientes", "Propuesta de Valor", "Relaciones con Clientes",
		"Canales", "Flujos de Ingresos", "Recursos Clave",
		"Actividades Clave", "Socios Clave", "Estructura de Costos",
	},
	models.LangItalian: {
		"Segmenti di Clienti", "Proposta di Valore", "Relazioni con i Clienti",
		"Canali", "Flussi di Entrate", "Risorse Chiave",
		"Attività Chiave", "Partner Chiave", "Struttura dei Costi",
	},
	models.LangDutch: {
		"Klantsegmenten", "Waardepropositie", "Klantrelaties",
		"Kanalen", "Inkomstenstromen", "Key Resources",
		"Key Activities", "Key Partners", "Kostenstructuur",
	},
}

// SectionTitles returns a fresh copy of the canvas section headings for lang.
// Callers mutate the slice while extracting, so they get their own.
func SectionTitles(lang models.Language) ([]string, error) {
	titles, ok := sectionTitles[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	out := make([]string, len(titles))
	copy(out, titles)
	return out, nil
}

// resolverTemplates asks the model to pick a candidate occupation (or the
// sentinel) on the first line, followed by a skills paragraph. First %s is
// the business idea, second the comma-joined candidate labels.
var resolverTemplates = map[models.Language]string{
	models.LangEnglish: "Based on the user's idea: %s, " +
		"if any occupation from this list: %s matches the user's idea, " +
		"return that occupation; otherwise, return 'no'. This should be on the first line. " +
		"Following that, give me a 300-word paragraph on the skills the user should have to launch their business. " +
		"On the last line, return job vacancies the user should post for their business.",
	models.LangGerman: "Basierend auf der Idee des Benutzers: %s, " +
		"wenn eine der Berufe aus dieser Liste: %s zur Idee des Benutzers passt, " +
		"geben Sie diesen Beruf zurück; andernfalls geben Sie 'nein' zurück. Dies sollte in der ersten Zeile stehen. " +
		"Geben Sie mir anschließend einen 300-Wörter-Absatz über die Fähigkeiten, die der Benutzer haben sollte, um sein Unternehmen zu gründen. " +
		"Geben Sie in der letzten Zeile Stellenanzeigen zurück, die der Benutzer für sein Unternehmen veröffentlichen sollte.",
	models.LangSpanish: "Basado en la idea del usuario: %s, " +
		"si alguna ocupación de esta lista: %s coincide con la idea del usuario, " +
		"devuelva esa ocupación; de lo contrario, devuelva 'no'. Esto debe estar en la primera línea. " +
		"A continuación, dame un párrafo de 300 palabras sobre las habilidades que el usuario debería tener para lanzar su negocio. " +
		"En la última línea, devuelve las vacantes laborales que el usuario debería publicar para su negocio.",
	models.LangFrench: "En se basant sur l'idée de l'utilisateur : %s, " +
		"si une profession de cette liste : %s correspond à l'idée de l'utilisateur, " +
		"retournez cette profession ; sinon, retournez 'non'. Cela doit être sur la première ligne. " +
		"Ensuite, donnez-moi un paragraphe de 300 mots sur les compétences que l'utilisateur devrait avoir pour lancer son entreprise. " +
		"À la dernière ligne, retournez les offres d'emploi que l'utilisateur devrait publier pour son entreprise.",
	models.LangItalian: "Basandosi sull'idea dell'utente: %s, " +
		"se una qualsiasi occupazione da questo elenco: %s corrisponde all'idea dell'utente, " +
		"restituire tale occupazione; altrimenti, restituire 'no'. Questo dovrebbe essere sulla prima riga. " +
		"Successivamente, forniscimi un paragrafo di 300 parole sulle competenze che l'utente dovrebbe avere per avviare la propria attività. " +
		"Sull'ultima riga, restituisci le offerte di lavoro che l'utente dovrebbe pubblicare per la sua attività.",
	models.LangDutch: "Op basis van het idee van de gebruiker: %s, " +
		"als een beroep uit deze lijst: %s overeenkomt met het idee van de gebruiker, " +
		"geef dat beroep terug; anders geef 'nee' terug. Dit moet op de eerste regel staan. " +
		"Geef me vervolgens een alinea van 300 woorden over de vaardigheden die de gebruiker zou moeten hebben om zijn bedrijf te starten. " +
		"Geef op de laatste regel de vacatures terug die de gebruiker voor zijn bedrijf zou moeten plaatsen.",
}

// ResolverPrompt builds the occupation-resolution prompt.
func ResolverPrompt(lang models.Language, idea, candidates string) (string, error) {
	tmpl, ok := resolverTemplates[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	return fmt.Sprintf(tmpl, idea, candidates), nil
}
