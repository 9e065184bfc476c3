package prompt

import (
	"strings"
	"testing"

	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
)

func TestEthicsEmbedsPageText(t *testing.T) {
	pageText := "Great shirt, 100% cotton, made in Italy"
	p := Ethics(pageText)

	if !strings.Contains(p, pageText) {
		t.Error("prompt must contain the page text verbatim")
	}
	if !strings.HasSuffix(strings.TrimRight(p, "\n"), pageText) {
		t.Error("page text must come after the instructions, at the end of the prompt")
	}
}

func TestEthicsContainsSchemaFields(t *testing.T) {
	p := Ethics("anything")

	for _, field := range domain.RequiredFields {
		if !strings.Contains(p, `"`+field+`"`) {
			t.Errorf("prompt schema missing field %q", field)
		}
	}
}

func TestEthicsInstructionFraming(t *testing.T) {
	p := Ethics("")

	for _, phrase := range []string{
		"negative bias",
		"burden of proof",
		"ONLY a valid JSON object",
	} {
		if !strings.Contains(p, phrase) {
			t.Errorf("prompt missing instruction phrase %q", phrase)
		}
	}
}
