package labels

import "testing"

func TestBuildIndex_CompoundLabel(t *testing.T) {
	idx := BuildIndex([]string{"Friseur/Friseurin"})

	for _, part := range []string{"Friseur", "Friseurin"} {
		got, ok := idx.Canonical(part)
		if !ok {
			t.Fatalf("part %q not indexed", part)
		}
		if got != "Friseur/Friseurin" {
			t.Errorf("Canonical(%q) = %q", part, got)
		}
	}
}

func TestBuildIndex_TrimsParts(t *testing.T) {
	idx := BuildIndex([]string{"Kaufmann / Kauffrau"})
	if got, ok := idx.Canonical("Kauffrau"); !ok || got != "Kaufmann / Kauffrau" {
		t.Errorf("Canonical(Kauffrau) = %q, %v", got, ok)
	}
}

func TestBuildIndex_SimpleLabel(t *testing.T) {
	idx := BuildIndex([]string{"Electrician"})
	if got, ok := idx.Canonical("Electrician"); !ok || got != "Electrician" {
		t.Errorf("Canonical(Electrician) = %q, %v", got, ok)
	}
	if _, ok := idx.Canonical("Plumber"); ok {
		t.Error("unknown part should not resolve")
	}
}

func TestBuildIndex_LastCandidateWins(t *testing.T) {
	// Two candidates sharing a part: the later one overwrites.
	idx := BuildIndex([]string{"Koch/Köchin", "Koch/Küchenchef"})
	if got, _ := idx.Canonical("Koch"); got != "Koch/Küchenchef" {
		t.Errorf("Canonical(Koch) = %q, want last candidate", got)
	}
	if got, _ := idx.Canonical("Köchin"); got != "Koch/Köchin" {
		t.Errorf("Canonical(Köchin) = %q", got)
	}
}
