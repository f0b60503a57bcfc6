package prompts

import (
	"fmt"

	"github.com/launchpath/canvas/internal/models"
)

// canvasTemplate wraps the narrative: before ends with the role-description
// lead-in, after carries the nine section instructions.
type canvasTemplate struct {
	before string
	after  string
}

// CanvasPrompt builds the full nine-section canvas prompt around the
// narrative text.
func CanvasPrompt(lang models.Language, narrative string) (string, error) {
	tmpl, ok := canvasTemplates[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, lang)
	}
	return tmpl.before + narrative + tmpl.after, nil
}

var canvasTemplates = map[models.Language]canvasTemplate{
	models.LangEnglish: {
		before: "Generate a comprehensive Business Model Canvas (BMC) for the following role using the provided description" +
			"Please provide detailed paragraphs for each of the following sections: " +
			"'Customer Segments', 'Value Proposition', 'Customer Relationships', 'Channels', 'Revenue Streams', " +
			"'Key Resources', 'Key Activities', 'Key Partners', and 'Cost Structure'.\n\n" +
			"Role Description:\n",
		after: "\n\n" +
			"Customer Segments: Who are the customers? What are their key needs, behaviors, and motivations? " +
			"How do they interact with or benefit from this role? What challenges or pain points are they facing, " +
			"and how does this role help address those issues?\n\n" +
			"give me a 300 word paragraph higlighting all the customer segments" +
			"Provide a detailed paragraph, not bullet points, outlining customer segments." +
			"Please ensure the customer segments are well-defined and aligned with the context of this role." +
			"Value Proposition: What unique value does this role bring to customers? How does this role solve customers' " +
			"problems or fulfill their needs? What benefits or advantages does it offer? How does it differentiate itself " +
			"from competitors?\n\n" +
			"Provide a detailed paragraph, not bullet points, outlining the core value proposition." +
			"give me a 300 word paragraph higlighting all the value propositions" +
			"Please ensure the value propositions are clearly defined and aligned with the context of this role." +
			"Customer Relationships: What type of relationship is established and maintained with customers? " +
			"Does this role involve personal assistance, self-service, or automation in building customer relationships? " +
			"How does this role ensure long-term customer satisfaction?\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining the approach to customer relationships." +
			"give me a 300 word paragraph higlighting all the customer relationships" +
			"Please ensure the customer relationships are clearly defined and aligned with the context of this role." +
			"Channels: What are the primary channels through which this role delivers its value to customers? How does it reach customers, " +
			"and what methods or platforms are used to communicate, distribute, or provide services?\n\n" +
			"Provide a detailed paragraph, not bullet points, describing the role's channels of distribution and communication." +
			"give me a 300 word paragraph highlighting all the channels" +
			"Please ensure the channels are clearly defined and aligned with the context of this role." +
			"Revenue Streams: How does this role generate revenue? What are the different ways in which it brings in money? " +
			"Does it rely on direct sales, subscriptions, licensing, or other methods of generating revenue?\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining how this role contributes to the organization's revenue streams." +
			"give me a 300 word paragraph highlighting all the revenue streams" +
			"Please ensure the revenue streams are clearly defined and aligned with the context of this role." +
			"Key Resources: What are the essential resources needed for this role to deliver its value proposition? " +
			"This could include human resources, physical assets, intellectual property, or financial resources.\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining the key resources necessary for this role's success." +
			"give me a 300 word paragraph highlighting all the key ressources" +
			"Please ensure the key resources are clearly defined and aligned with the context of this role." +
			"Key Activities: What are the core activities that this role needs to perform to deliver its value proposition? " +
			"This includes the main tasks and responsibilities that are essential for success.\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining the key activities involved in this role." +
			"give me job names for my buisness so i can post vacancies" +
			"give me a 300 word paragraph highlighting all the key activities" +
			"Please ensure the key activities are clearly defined and aligned with the context of this role." +
			"Key Partners: Who are the main partners or collaborators this role interacts with? " +
			"This could include suppliers, alliances, or other stakeholders that are crucial for success.\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining the key partners involved in this role." +
			"give me a 300 word paragraph highlighting all the key partners" +
			"Please ensure the key partners are clearly defined and aligned with the context of this role." +
			"Cost Structure: What are the primary costs related to this role? This could include salaries, operational costs, resources, " +
			"and other expenses. How do these costs relate to the key resources, activities, and partnerships?\n\n" +
			"Provide a detailed paragraph, not bullet points, explaining the cost structure for this role." +
			"give me a 300 word paragraph highlighting all the cost structures" +
			"Please ensure the cost structure is clearly defined and aligned with the context of this role." +
			"each section must be a 300 word paragraph" +
			"no bullet points in the sections i want a paragraph" +
			"Please provide a detailed response for each section." +
			"every segment is a paragraph !",
	},
	models.LangGerman: {
		before: "Erstellen Sie eine umfassende Business Model Canvas (BMC) für die folgende Rolle basierend auf der bereitgestellten Beschreibung." +
			"Bitte erstellen Sie detaillierte Absätze für jeden der folgenden Abschnitte: " +
			"'Kundensegmente', 'Wertangebote', 'Kundenbeziehungen', 'Kanäle', 'Einnahmequellen', " +
			"'Schlüsselressourcen', 'Schlüsselaktivitäten', 'Schlüsselpartner' und 'Kostenstruktur'.\n\n" +
			"Rollenbeschreibung:\n",
		after: "\n\n" +
			"Kundensegmente: Wer sind die Kunden? Was sind ihre wichtigsten Bedürfnisse, Verhaltensweisen und Motivationen? " +
			"Wie interagieren sie mit dieser Rolle oder profitieren von ihr? Welche Herausforderungen oder Probleme haben sie, " +
			"und wie hilft diese Rolle, diese zu lösen?\n\n" +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Kundensegmente hervorhebt." +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die Kundensegmente beschreibt." +
			"Bitte stellen Sie sicher, dass die Kundensegmente klar definiert und im Kontext dieser Rolle relevant sind." +
			"Wertangebote: Welchen einzigartigen Wert bringt diese Rolle den Kunden? Wie löst diese Rolle die Probleme der Kunden " +
			"oder erfüllt ihre Bedürfnisse? Welche Vorteile oder Nutzen bietet sie? Wie differenziert sie sich von Wettbewerbern?\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der das Kernwertangebot beschreibt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Wertangebote hervorhebt." +
			"Bitte stellen Sie sicher, dass die Wertangebote klar definiert und im Kontext dieser Rolle relevant sind." +
			"Kundenbeziehungen: Welche Art von Beziehung wird zu den Kunden aufgebaut und gepflegt? " +
			"Umfasst diese Rolle persönliche Unterstützung, Selbstbedienung oder Automatisierung in der Kundenbeziehung? " +
			"Wie stellt diese Rolle langfristige Kundenzufriedenheit sicher?\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der den Ansatz für Kundenbeziehungen erklärt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Kundenbeziehungen hervorhebt." +
			"Bitte stellen Sie sicher, dass die Kundenbeziehungen klar definiert und im Kontext dieser Rolle relevant sind." +
			"Kanäle: Welche primären Kanäle nutzt diese Rolle, um den Kunden ihren Wert zu liefern? Wie erreicht sie die Kunden, " +
			"und welche Methoden oder Plattformen werden verwendet, um zu kommunizieren, zu verteilen oder Dienstleistungen anzubieten?\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die Kommunikations- und Vertriebskanäle dieser Rolle beschreibt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Kanäle hervorhebt." +
			"Bitte stellen Sie sicher, dass die Kanäle klar definiert und im Kontext dieser Rolle relevant sind." +
			"Einnahmequellen: Wie generiert diese Rolle Einnahmen? Welche verschiedenen Wege gibt es, um Geld zu verdienen? " +
			"Stützt sie sich auf Direktverkäufe, Abonnements, Lizenzen oder andere Einnahmemethoden?\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der erklärt, wie diese Rolle zu den Einnahmequellen der Organisation beiträgt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Einnahmequellen hervorhebt." +
			"Bitte stellen Sie sicher, dass die Einnahmequellen klar definiert und im Kontext dieser Rolle relevant sind." +
			"Schlüsselressourcen: Was sind die wesentlichen Ressourcen, die benötigt werden, damit diese Rolle ihr Wertangebot liefern kann? " +
			"Dies könnte menschliche Ressourcen, physische Vermögenswerte, geistiges Eigentum oder finanzielle Ressourcen umfassen.\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die notwendigen Schlüsselressourcen erklärt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Schlüsselressourcen hervorhebt." +
			"Bitte stellen Sie sicher, dass die Schlüsselressourcen klar definiert und im Kontext dieser Rolle relevant sind." +
			"Schlüsselaktivitäten: Was sind die Kernaktivitäten, die diese Rolle durchführen muss, um ihr Wertangebot zu liefern? " +
			"Dazu gehören die Hauptaufgaben und Verantwortlichkeiten, die für den Erfolg entscheidend sind.\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die Schlüsselaktivitäten beschreibt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Schlüsselaktivitäten hervorhebt." +
			"Bitte stellen Sie sicher, dass die Schlüsselaktivitäten klar definiert und im Kontext dieser Rolle relevant sind." +
			"Schlüsselpartner: Wer sind die wichtigsten Partner oder Mitwirkenden, mit denen diese Rolle interagiert? " +
			"Dazu können Lieferanten, Allianzen oder andere Stakeholder gehören, die für den Erfolg entscheidend sind.\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die Schlüsselpartner beschreibt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Schlüsselpartner hervorhebt." +
			"Bitte stellen Sie sicher, dass die Schlüsselpartner klar definiert und im Kontext dieser Rolle relevant sind." +
			"Kostenstruktur: Was sind die primären Kosten im Zusammenhang mit dieser Rolle? Dies könnte Gehälter, Betriebskosten, Ressourcen " +
			"und andere Ausgaben umfassen. Wie stehen diese Kosten im Zusammenhang mit den Schlüsselressourcen, Aktivitäten und Partnerschaften?\n\n" +
			"Liefern Sie einen detaillierten Absatz, keine Aufzählungspunkte, der die Kostenstruktur dieser Rolle erklärt." +
			"Erstellen Sie einen 300 Wörter langen Absatz, der alle Kostenstrukturen hervorhebt." +
			"Bitte stellen Sie sicher, dass die Kostenstruktur klar definiert und im Kontext dieser Rolle relevant ist." +
			"Jeder Abschnitt muss ein 300 Wörter langer Absatz sein." +
			"Keine Aufzählungspunkte in den Abschnitten, nur Absätze." +
			"Bitte liefern Sie für jeden Abschnitt eine detaillierte Antwort." +
			"Jeder Abschnitt ist ein Absatz!",
	},
	models.LangSpanish: {
		before: "Genera un Business Model Canvas (BMC) completo para el siguiente rol utilizando la descripción proporcionada. " +
			"Por favor, proporciona párrafos detallados para cada una de las siguientes secciones: " +
			"'Segmentos de clientes', 'Propuesta de valor', 'Relaciones con los clientes', 'Canales', 'Flujos de ingresos', " +
			"'Recursos clave', 'Actividades clave', 'Socios clave' y 'Estructura de costos'.\n\n" +
			"Descripción del rol:\n",
		after: "\n\n" +
			"Segmentos de clientes: ¿Quiénes son los clientes? ¿Cuáles son sus necesidades, comportamientos y motivaciones clave? " +
			"¿Cómo interactúan con este rol o se benefician de él? ¿Qué desafíos o puntos débiles enfrentan y cómo este rol ayuda a resolver esos problemas?\n\n" +
			"Dame un párrafo de 300 palabras destacando todos los segmentos de clientes. " +
			"Proporciona un párrafo detallado, sin usar puntos, describiendo los segmentos de clientes.\n\n" +
			"Propuesta de valor: ¿Qué valor único aporta este rol a los clientes? ¿Cómo resuelve este rol los problemas de los clientes o satisface sus necesidades? " +
			"¿Qué beneficios o ventajas ofrece? ¿Cómo se diferencia de los competidores?\n\n" +
			"Dame un párrafo de 300 palabras destacando todas las propuestas de valor. " +
			"Proporciona un párrafo detallado, sin usar puntos, describiendo la propuesta de valor principal.\n\n" +
			"Relaciones con los clientes: ¿Qué tipo de relación se establece y mantiene con los clientes? " +
			"¿Este rol implica asistencia personal, autoservicio o automatización para construir relaciones con los clientes? " +
			"¿Cómo garantiza este rol la satisfacción del cliente a largo plazo?\n\n" +
			"Dame un párrafo de 300 palabras destacando todas las relaciones con los clientes. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando el enfoque de las relaciones con los clientes.\n\n" +
			"Canales: ¿Cuáles son los canales principales a través de los cuales este rol entrega su valor a los clientes? ¿Cómo llega a los clientes, " +
			"y qué métodos o plataformas se utilizan para comunicar, distribuir o proporcionar servicios?\n\n" +
			"Dame un párrafo de 300 palabras destacando todos los canales. " +
			"Proporciona un párrafo detallado, sin usar puntos, describiendo los canales de distribución y comunicación del rol.\n\n" +
			"Flujos de ingresos: ¿Cómo genera ingresos este rol? ¿Cuáles son las diferentes formas en que genera dinero? " +
			"¿Depende de ventas directas, suscripciones, licencias u otros métodos para generar ingresos?\n\n" +
			"Dame un párrafo de 300 palabras destacando todos los flujos de ingresos. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando cómo este rol contribuye a los flujos de ingresos de la organización.\n\n" +
			"Recursos clave: ¿Cuáles son los recursos esenciales necesarios para que este rol entregue su propuesta de valor? " +
			"Esto podría incluir recursos humanos, activos físicos, propiedad intelectual o recursos financieros.\n\n" +
			"Dame un párrafo de 300 palabras destacando todos los recursos clave. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando los recursos clave necesarios para el éxito de este rol.\n\n" +
			"Actividades clave: ¿Cuáles son las actividades principales que este rol necesita realizar para entregar su propuesta de valor? " +
			"Esto incluye las tareas y responsabilidades esenciales para el éxito.\n\n" +
			"Dame un párrafo de 300 palabras destacando todas las actividades clave. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando las actividades clave involucradas en este rol.\n\n" +
			"Socios clave: ¿Quiénes son los principales socios o colaboradores con los que interactúa este rol? " +
			"Esto podría incluir proveedores, alianzas u otras partes interesadas cruciales para el éxito.\n\n" +
			"Dame un párrafo de 300 palabras destacando todos los socios clave. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando los socios clave involucrados en este rol.\n\n" +
			"Estructura de costos: ¿Cuáles son los principales costos relacionados con este rol? Esto podría incluir salarios, costos operativos, recursos " +
			"y otros gastos. ¿Cómo se relacionan estos costos con los recursos clave, actividades y asociaciones?\n\n" +
			"Dame un párrafo de 300 palabras destacando todas las estructuras de costos. " +
			"Proporciona un párrafo detallado, sin usar puntos, explicando la estructura de costos para este rol.\n\n" +
			"Cada sección debe ser un párrafo de 300 palabras. No se deben usar puntos en las secciones, solo párrafos. " +
			"Por favor, proporciona una respuesta detallada para cada sección. ¡Cada sección es un párrafo!",
	},
	models.LangItalian: {
		before: "Genera un Business Model Canvas (BMC) completo per il seguente ruolo utilizzando la descrizione fornita. " +
			"Si prega di fornire paragrafi dettagliati per ciascuna delle seguenti sezioni: " +
			"'Segmenti di clientela', 'Proposta di valore', 'Relazioni con i clienti', 'Canali', 'Flussi di entrate', " +
			"'Risorse chiave', 'Attività chiave', 'Partner chiave' e 'Struttura dei costi'.\n\n" +
			"Descrizione del ruolo:\n",
		after: "\n\n" +
			"Segmenti di clientela: Chi sono i clienti? Quali sono i loro bisogni, comportamenti e motivazioni principali? " +
			"Come interagiscono con questo ruolo o come ne beneficiano? Quali sfide o problemi affrontano e come questo ruolo aiuta a risolverli?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutti i segmenti di clientela. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che descriva i segmenti di clientela.\n\n" +
			"Proposta di valore: Quale valore unico porta questo ruolo ai clienti? Come risolve questo ruolo i problemi dei clienti o soddisfa i loro bisogni? " +
			"Quali benefici o vantaggi offre? Come si differenzia dalla concorrenza?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutte le proposte di valore. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che descriva la proposta di valore principale.\n\n" +
			"Relazioni con i clienti: Che tipo di relazione si stabilisce e mantiene con i clienti? " +
			"Questo ruolo implica assistenza personale, autoservizio o automazione per costruire relazioni con i clienti? " +
			"Come garantisce questo ruolo la soddisfazione del cliente a lungo termine?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutte le relazioni con i clienti. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi l'approccio alle relazioni con i clienti.\n\n" +
			"Canali: Quali sono i principali canali attraverso i quali questo ruolo consegna il suo valore ai clienti? Come raggiunge i clienti, " +
			"e quali metodi o piattaforme vengono utilizzati per comunicare, distribuire o fornire i servizi?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutti i canali. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che descriva i canali di distribuzione e comunicazione del ruolo.\n\n" +
			"Flussi di entrate: Come genera entrate questo ruolo? Quali sono i diversi modi in cui porta denaro? " +
			"Dipende dalle vendite dirette, abbonamenti, licenze o altri metodi per generare entrate?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutti i flussi di entrate. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi come questo ruolo contribuisce ai flussi di entrate dell'organizzazione.\n\n" +
			"Risorse chiave: Quali sono le risorse essenziali necessarie affinché questo ruolo consegni la sua proposta di valore? " +
			"Queste potrebbero includere risorse umane, beni fisici, proprietà intellettuale o risorse finanziarie.\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutte le risorse chiave. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi le risorse chiave necessarie per il successo di questo ruolo.\n\n" +
			"Attività chiave: Quali sono le attività principali che questo ruolo deve eseguire per consegnare la sua proposta di valore? " +
			"Queste includono i compiti e le responsabilità essenziali per il successo.\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutte le attività chiave. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi le attività chiave coinvolte in questo ruolo.\n\n" +
			"Partner chiave: Chi sono i principali partner o collaboratori con cui questo ruolo interagisce? " +
			"Questi potrebbero includere fornitori, alleanze o altre parti interessate cruciali per il successo.\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutti i partner chiave. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi i partner chiave coinvolti in questo ruolo.\n\n" +
			"Struttura dei costi: Quali sono i principali costi relativi a questo ruolo? Questi potrebbero includere stipendi, costi operativi, risorse " +
			"e altre spese. Come si relazionano questi costi con le risorse chiave, le attività e le partnership?\n\n" +
			"Dammi un paragrafo di 300 parole evidenziando tutte le strutture dei costi. " +
			"Fornisci un paragrafo dettagliato, senza usare punti elenco, che spieghi la struttura dei costi per questo ruolo.\n\n" +
			"Ogni sezione deve essere un paragrafo di 300 parole. Non devono essere utilizzati punti elenco nelle sezioni, solo paragrafi. " +
			"Si prega di fornire una risposta dettagliata per ogni sezione. Ogni sezione è un paragrafo!",
	},
	models.LangDutch: {
		before: "Genereer een uitgebreid Business Model Canvas (BMC) voor de volgende rol op basis van de gegeven beschrijving. " +
			"Geef gedetailleerde paragrafen voor elk van de volgende secties: " +
			"'Klantsegmenten', 'Waardepropositie', 'Klantrelaties', 'Kanalen', 'Inkomstenstromen', " +
			"'Key Resources', 'Key Activities', 'Key Partners' en 'Kostenstructuur'.\n\n" +
			"Rolbeschrijving:\n",
		after: "\n\n" +
			"Klantsegmenten: Wie zijn de klanten? Wat zijn hun belangrijkste behoeften, gedragingen en motivaties? " +
			"Hoe interacteert deze rol met de klanten of hoe profiteren ze van deze rol? Welke uitdagingen of pijnpunten hebben ze, " +
			"en hoe helpt deze rol om deze problemen op te lossen?\n\n" +
			"Geef een paragraaf van 300 woorden die alle klantsegmenten beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de klantsegmenten uitlegt.\n\n" +
			"Waardepropositie: Welke unieke waarde biedt deze rol aan klanten? Hoe lost deze rol de problemen van klanten op of vervult het hun behoeften? " +
			"Welke voordelen of voordelen biedt het? Hoe onderscheidt het zich van concurrenten?\n\n" +
			"Geef een paragraaf van 300 woorden die alle waardeproposities beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de belangrijkste waardepropositie uitlegt.\n\n" +
			"Klantrelaties: Wat voor soort relatie wordt er opgebouwd en onderhouden met de klanten? " +
			"Betrekt deze rol persoonlijke assistentie, zelfbediening of automatisering om klantrelaties op te bouwen? " +
			"Hoe zorgt deze rol voor langdurige klanttevredenheid?\n\n" +
			"Geef een paragraaf van 300 woorden die alle klantrelaties beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de benadering van klantrelaties uitlegt.\n\n" +
			"Kanalen: Wat zijn de belangrijkste kanalen waarmee deze rol zijn waarde aan klanten levert? Hoe bereikt deze rol de klanten, " +
			"en welke methoden of platforms worden gebruikt om te communiceren, te distribueren of diensten te leveren?\n\n" +
			"Geef een paragraaf van 300 woorden die alle kanalen beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de kanalen voor distributie en communicatie uitlegt.\n\n" +
			"Inkomstenstromen: Hoe genereert deze rol inkomsten? Wat zijn de verschillende manieren waarop het geld genereert? " +
			"Is het afhankelijk van directe verkoop, abonnementen, licenties of andere methoden om inkomsten te genereren?\n\n" +
			"Geef een paragraaf van 300 woorden die alle inkomstenstromen beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die uitlegt hoe deze rol bijdraagt aan de inkomstenstromen van de organisatie.\n\n" +
			"Key Resources: Wat zijn de essentiële middelen die deze rol nodig heeft om zijn waardepropositie te leveren? " +
			"Dit kan personeelsmiddelen, fysieke activa, intellectuele eigendom of financiële middelen omvatten.\n\n" +
			"Geef een paragraaf van 300 woorden die alle key resources beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de belangrijke middelen uitlegt die nodig zijn voor het succes van deze rol.\n\n" +
			"Key Activities: Wat zijn de belangrijkste activiteiten die deze rol moet uitvoeren om zijn waardepropositie te leveren? " +
			"Dit omvat de belangrijkste taken en verantwoordelijkheden die essentieel zijn voor succes.\n\n" +
			"Geef een paragraaf van 300 woorden die alle key activities beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de belangrijke activiteiten van deze rol uitlegt.\n\n" +
			"Key Partners: Wie zijn de belangrijkste partners of samenwerkingsverbanden waarmee deze rol interactie heeft? " +
			"Dit kunnen leveranciers, allianties of andere belanghebbenden zijn die cruciaal zijn voor succes.\n\n" +
			"Geef een paragraaf van 300 woorden die alle key partners beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de belangrijkste partners uitlegt die betrokken zijn bij deze rol.\n\n" +
			"Kostenstructuur: Wat zijn de belangrijkste kosten die verband houden met deze rol? Dit kan lonen, operationele kosten, middelen " +
			"en andere uitgaven omvatten. Hoe verhouden deze kosten zich tot de key resources, activiteiten en partnerschappen?\n\n" +
			"Geef een paragraaf van 300 woorden die de kostenstructuur beschrijft. " +
			"Geef een gedetailleerde paragraaf zonder opsommingstekens die de kostenstructuur voor deze rol uitlegt.\n\n" +
			"Elke sectie moet een paragraaf van 300 woorden zijn. Gebruik geen opsommingstekens in de secties, alleen paragrafen. " +
			"Geef gedetailleerde antwoorden voor elke sectie. Elke sectie is een paragraaf!",
	},
	models.LangFrench: {
		before: "Générez un Business Model Canvas (BMC) complet pour le rôle suivant en utilisant la description fournie. " +
			"Veuillez fournir des paragraphes détaillés pour chacune des sections suivantes : " +
			"'Segments de clientèle', 'Proposition de valeur', 'Relations avec les clients', 'Canaux', 'Sources de revenus', " +
			"'Ressources clés', 'Activités clés', 'Partenaires clés' et 'Structure des coûts'.\n\n" +
			"Description du rôle :\n",
		after: "\n\n" +
			"Segments de clientèle : Qui sont les clients ? Quels sont leurs besoins, comportements et motivations clés ? " +
			"Comment interagissent-ils avec ce rôle ou en bénéficient-ils ? Quels défis ou points de douleur rencontrent-ils, " +
			"et comment ce rôle contribue-t-il à résoudre ces problèmes ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant tous les segments de clientèle. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, décrivant les segments de clientèle.\n\n" +
			"Proposition de valeur : Quelle valeur unique ce rôle apporte-t-il aux clients ? Comment ce rôle résout-il les problèmes " +
			"des clients ou répond-il à leurs besoins ? Quels avantages ou bénéfices offre-t-il ? Comment se différencie-t-il " +
			"de la concurrence ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les propositions de valeur. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, décrivant la proposition de valeur principale.\n\n" +
			"Relations avec les clients : Quel type de relation est établi et maintenu avec les clients ? " +
			"Ce rôle implique-t-il une assistance personnelle, un libre-service ou une automatisation pour construire des relations avec les clients ? " +
			"Comment ce rôle garantit-il la satisfaction des clients sur le long terme ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les relations avec les clients. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant l'approche des relations avec les clients.\n\n" +
			"Canaux : Quels sont les principaux canaux par lesquels ce rôle délivre sa valeur aux clients ? Comment ce rôle atteint-il les clients, " +
			"et quelles méthodes ou plateformes sont utilisées pour communiquer, distribuer ou fournir des services ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant tous les canaux. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, décrivant les canaux de distribution et de communication du rôle.\n\n" +
			"Sources de revenus : Comment ce rôle génère-t-il des revenus ? Quels sont les différents moyens par lesquels il génère de l'argent ? " +
			"S'appuie-t-il sur des ventes directes, des abonnements, des licences ou d'autres méthodes pour générer des revenus ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les sources de revenus. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant comment ce rôle contribue aux sources de revenus de l'organisation.\n\n" +
			"Ressources clés : Quelles sont les ressources essentielles nécessaires à ce rôle pour fournir sa proposition de valeur ? " +
			"Cela peut inclure des ressources humaines, des actifs physiques, de la propriété intellectuelle ou des ressources financières.\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les ressources clés. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant les ressources clés nécessaires au succès de ce rôle.\n\n" +
			"Activités clés : Quelles sont les activités principales que ce rôle doit accomplir pour fournir sa proposition de valeur ? " +
			"Cela inclut les tâches et responsabilités essentielles à son succès.\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les activités clés. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant les activités clés impliquées dans ce rôle.\n\n" +
			"Partenaires clés : Quels sont les principaux partenaires ou collaborateurs avec lesquels ce rôle interagit ? " +
			"Cela peut inclure des fournisseurs, des alliances ou d'autres parties prenantes essentielles à son succès.\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant tous les partenaires clés. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant les partenaires clés impliqués dans ce rôle.\n\n" +
			"Structure des coûts : Quels sont les principaux coûts liés à ce rôle ? Cela peut inclure les salaires, les coûts opérationnels, les ressources " +
			"et d'autres dépenses. Comment ces coûts se rapportent-ils aux ressources clés, activités et partenariats ?\n\n" +
			"Donnez-moi un paragraphe de 300 mots mettant en avant toutes les structures de coûts. " +
			"Fournissez un paragraphe détaillé, sans utiliser de points, expliquant la structure des coûts pour ce rôle.\n\n" +
			"Chaque section doit être un paragraphe de 300 mots. Pas de points dans les sections, uniquement des paragraphes. " +
			"Veuillez fournir une réponse détaillée pour chaque section. Chaque section est un paragraphe !",
	},
}
