package core

import (
	"fmt"
	"strings"

	"intake-chatbot/pkg"
)

// Summary renders the known fields as a labelled bullet list in canonical
// field order.  Fields without a value are skipped, so on a completed
// session all five lines are present.
func Summary(fields pkg.Fields) string {
	var b strings.Builder
	for _, field := range pkg.AllFields {
		value := fields[field]
		if value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", field.Label(), value)
	}
	return b.String()
}

// clarificationPrompt builds the context handed to the generative collaborator
// when fields are still missing: what the patient already told us, what is
// still needed, and the raw message of this turn.
func clarificationPrompt(fields pkg.Fields, missing []pkg.Field, userMessage string) string {
	known := Summary(fields)
	if known == "" {
		known = "(nenhum dado ainda)"
	}
	labels := make([]string, len(missing))
	for i, field := range missing {
		labels[i] = strings.ToLower(field.Label())
	}
	context := fmt.Sprintf(
		"Até agora, o paciente informou:\n%s.\n\n"+
			"Ainda faltam: %s.\n"+
			"Peça apenas as informações que faltam, de forma educada e breve.",
		known, strings.Join(labels, ", "),
	)
	return context + "\n\nUsuário: " + userMessage
}

// fallbackReply is used when the generative collaborator is unavailable; the
// turn still answers the patient and names the missing fields.
func fallbackReply(missing []pkg.Field) string {
	labels := make([]string, len(missing))
	for i, field := range missing {
		labels[i] = strings.ToLower(field.Label())
	}
	return fmt.Sprintf(
		"Obrigado pela mensagem! Para concluir seu cadastro, ainda preciso de: %s.",
		strings.Join(labels, ", "),
	)
}
