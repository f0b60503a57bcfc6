package prompts

import (
	"fmt"

	"github.com/launchpath/canvas/internal/models"
)

// Narrative templates feed the canvas prompt with the business context. The
// no-match variant takes the idea and the skills paragraph; the matched
// variant additionally takes the occupation label and its catalog detail.

var noMatchNarratives = map[models.Language]string{
	models.LangEnglish: "The user's idea: '%s'.\n\n" +
		"Although no exact occupation match was found, here is a 300-word summary of essential skills " +
		"that would help the user succeed in this business:\n\n%s",
	models.LangGerman: "Die Idee des Benutzers: '%s'.\n\n" +
		"Obwohl keine genaue Berufsübereinstimmung gefunden wurde, finden Sie hier eine 300-Wörter-Zusammenfassung " +
		"der wesentlichen Fähigkeiten, die dem Benutzer helfen würden, in diesem Geschäft erfolgreich zu sein:\n\n%s",
	models.LangSpanish: "La idea del usuario: '%s'.\n\n" +
		"Aunque no se encontró una coincidencia exacta de ocupación, aquí hay un resumen de 300 palabras de las habilidades esenciales " +
		"que ayudarían al usuario a tener éxito en este negocio:\n\n%s",
	models.LangFrench: "L'idée de l'utilisateur : '%s'.\n\n" +
		"Bien qu'aucune correspondance exacte de métier n'ait été trouvée, voici un résumé de 300 mots des compétences essentielles " +
		"qui aideraient l'utilisateur à réussir dans cette activité :\n\n%s",
	models.LangItalian: "L'idea dell'utente: '%s'.\n\n" +
		"Sebbene non sia stata trovata una corrispondenza esatta con un'occupazione, ecco un riepilogo di 300 parole delle competenze essenziali " +
		"che aiuterebbero l'utente a avere successo in questo settore:\n\n%s",
	models.LangDutch: "Het idee van de gebruiker: '%s'.\n\n" +
		"Hoewel er geen exacte beroepsmatch is gevonden, volgt hier een samenvatting van 300 woorden over de essentiële vaardigheden " +
		"die de gebruiker zouden helpen succesvol te zijn in dit bedrijf:\n\n%s",
}

var matchedNarratives = map[models.Language]string{
	models.LangEnglish: "The user's idea: '%s'.\n\n" +
		"The best matching occupation is: '%s'.\n\n" +
		"Here is a summary of the skills needed to launch a business in this field:\n\n%s" +
		"\n\nAdditionally, here are relevant details about the occupation:\n\n%s",
	models.LangGerman: "Die Idee des Benutzers: '%s'.\n\n" +
		"Der am besten passende Beruf ist: '%s'.\n\n" +
		"Hier ist eine Zusammenfassung der Fähigkeiten, die erforderlich sind, um ein Unternehmen in diesem Bereich zu gründen:\n\n%s" +
		"\n\nZusätzlich finden Sie hier relevante Details zu diesem Beruf:\n\n%s",
	models.LangSpanish: "La idea del usuario: '%s'.\n\n" +
		"La ocupación que mejor se adapta es: '%s'.\n\n" +
		"Aquí hay un resumen de las habilidades necesarias para iniciar un negocio en este campo:\n\n%s" +
		"\n\nAdemás, aquí hay detalles relevantes sobre la ocupación:\n\n%s",
	models.LangFrench: "L'idée de l'utilisateur : '%s'.\n\n" +
		"La profession la mieux adaptée est : '%s'.\n\n" +
		"Voici un résumé des compétences nécessaires pour lancer une entreprise dans ce domaine :\n\n%s" +
		"\n\nDe plus, voici des informations pertinentes sur la profession :\n\n%s",
	models.LangItalian: "L'idea dell'utente: '%s'.\n\n" +
		"L'occupazione che si adatta meglio è: '%s'.\n\n" +
		"Ecco un riepilogo delle competenze necessarie per avviare un'attività in questo settore:\n\n%s" +
		"\n\nInoltre, ecco i dettagli rilevanti sull'occupazione:\n\n%s",
	models.LangDutch: "Het idee van de gebruiker: '%s'.\n\n" +
		"Het best bijpassende beroep is: '%s'.\n\n" +
		"Hier is een samenvatting van de vaardigheden die nodig zijn om een bedrijf in dit veld te starten:\n\n%s" +
		"\n\nDaarnaast zijn hier relevante details over het beroep:\n\n%s",
}

// NoMatchNarrative builds the canvas context for an idea without a matched
// occupation.
func NoMatchNarrative(lang models.Language, idea, skills string) (string, error) {
	tmpl, ok := noMatchNarratives[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	return fmt.Sprintf(tmpl, idea, skills), nil
}

// MatchedNarrative builds the canvas context for a matched occupation,
// including its catalog detail text.
func MatchedNarrative(lang models.Language, idea, occupation, skills, detail string) (string, error) {
	tmpl, ok := matchedNarratives[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	return fmt.Sprintf(tmpl, idea, occupation, skills, detail), nil
}
