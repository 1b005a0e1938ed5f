package core

// prompts.go defines the Portuguese language texts used by the intake
// assistant.  Keeping these in a separate file makes them easy to tweak
// without touching the rest of the code.

const (
	// SystemPrompt is the assistant persona sent with every generation
	// request.  It instructs the model to extract registration data, never
	// invent it, and ask only for what is still missing.
	SystemPrompt = "Você é um assistente virtual de saúde chamado SUSBot, responsável por conversar com pacientes " +
		"de forma educada, empática e objetiva.\n" +
		"Seu papel é ajudar o paciente a informar dados básicos para o cadastro: " +
		"nome, idade, endereço (rua, número e CEP), telefone e sintomas.\n" +
		"⚙️ Importante:\n" +
		"- Extraia automaticamente os dados das mensagens do paciente.\n" +
		"- Não confirme nem invente dados.\n" +
		"- Se faltar algum dado, pergunte apenas o que falta de forma educada.\n" +
		"- Quando todos os dados forem coletados, agradeça e envie o link da consulta."

	// MeetingLink is the fixed appointment link sent once registration is
	// complete.
	MeetingLink = "https://meet.google.com/ovr-ocwa-mxi"

	// completionTemplate wraps the field summary and the meeting link in the
	// closing message of a finished intake.
	completionTemplate = "✅ Todos os seus dados foram coletados com sucesso!\n\n" +
		"📋 Resumo dos seus dados:\n%s\n\n" +
		"💬 Segue o link para sua consulta:\n👉 %s"
)
