package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/prompts"
)

func TestExtract_NineSections(t *testing.T) {
	titles, _ := prompts.SectionTitles(models.LangEnglish)
	var b strings.Builder
	for _, title := range titles {
		b.WriteString(title + ":\n")
		b.WriteString("Body for " + title + ".\n\n")
	}

	sections, err := Extract(b.String(), models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 9 {
		t.Fatalf("extracted %d sections, want 9", len(sections))
	}
	for _, title := range titles {
		if got := sections[title]; got != "Body for "+title+"." {
			t.Errorf("section %q = %q", title, got)
		}
	}
}

func TestExtract_BoldHeadings(t *testing.T) {
	raw := "**Customer Segments:**\nSmall businesses and families.\n" +
		"**Value Proposition:**\nConvenience at home."

	sections, err := Extract(raw, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if sections["Customer Segments"] != "Small businesses and families." {
		t.Errorf("Customer Segments = %q", sections["Customer Segments"])
	}
	if sections["Value Proposition"] != "Convenience at home." {
		t.Errorf("Value Proposition = %q", sections["Value Proposition"])
	}
}

func TestExtract_PreambleDiscarded(t *testing.T) {
	raw := "Here is your canvas, enjoy!\n" +
		"Some more chatter.\n" +
		"Channels:\nOnline store and local market."

	sections, err := Extract(raw, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 1 {
		t.Fatalf("sections = %v", sections)
	}
	if sections["Channels"] != "Online store and local market." {
		t.Errorf("Channels = %q", sections["Channels"])
	}
}

func TestExtract_ConsumedHeadingDoesNotReopen(t *testing.T) {
	raw := "Channels:\nFirst part.\n" +
		"Revenue Streams:\nSales revenue.\n" +
		"Channels:\nThis echo belongs to the open section."

	sections, err := Extract(raw, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if sections["Channels"] != "First part." {
		t.Errorf("Channels = %q", sections["Channels"])
	}
	if !strings.Contains(sections["Revenue Streams"], "This echo belongs to the open section.") {
		t.Errorf("Revenue Streams = %q", sections["Revenue Streams"])
	}
}

func TestExtract_Idempotent(t *testing.T) {
	raw := "**Customer Segments:**\nFamilies.\nKey Partners:\nSuppliers."
	first, err := Extract(raw, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Extract(raw, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("len %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("section %q differs between runs", k)
		}
	}
}

func TestExtract_NoHeadings(t *testing.T) {
	sections, err := Extract("Just a flat answer without any structure at all.", models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 0 {
		t.Errorf("sections = %v, want empty", sections)
	}
}

func TestExtract_GermanHeadings(t *testing.T) {
	raw := "Kundensegmente:\nFamilien und Berufstätige.\n" +
		"Kanäle:\nLadengeschäft und Online-Termine."

	sections, err := Extract(raw, models.LangGerman)
	if err != nil {
		t.Fatal(err)
	}
	if sections["Kundensegmente"] != "Familien und Berufstätige." {
		t.Errorf("Kundensegmente = %q", sections["Kundensegmente"])
	}
	if sections["Kanäle"] != "Ladengeschäft und Online-Termine." {
		t.Errorf("Kanäle = %q", sections["Kanäle"])
	}
}

func TestExtract_UnsupportedLanguage(t *testing.T) {
	_, err := Extract("text", models.Language("sv"))
	if !errors.Is(err, models.ErrUnsupportedLanguage) {
		t.Fatalf("err = %v", err)
	}
}
