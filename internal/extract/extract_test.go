package extract

import (
	"reflect"
	"testing"

	"intake-chatbot/pkg"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    pkg.Fields
	}{
		{
			name:    "name and age in one sentence",
			message: "meu nome é João, tenho 40 anos",
			want: pkg.Fields{
				pkg.FieldName: "João",
				pkg.FieldAge:  "40",
			},
		},
		{
			name:    "name via chamo-me is title cased",
			message: "chamo-me maria da silva",
			want:    pkg.Fields{pkg.FieldName: "Maria Da Silva"},
		},
		{
			name:    "name via label",
			message: "nome: ana",
			want:    pkg.Fields{pkg.FieldName: "Ana"},
		},
		{
			name:    "age via label",
			message: "idade: 34",
			want:    pkg.Fields{pkg.FieldAge: "34"},
		},
		{
			name:    "age out of range is discarded",
			message: "idade: 200",
			want:    pkg.Fields{},
		},
		{
			name:    "age zero is discarded",
			message: "tenho 0 anos",
			want:    pkg.Fields{},
		},
		{
			name:    "address with street, number and postal code",
			message: "moro na rua das flores, 22, 04567-890",
			want:    pkg.Fields{pkg.FieldAddress: "Rua Das Flores, 22, 04567-890"},
		},
		{
			name:    "address without postal code is not extracted",
			message: "moro na Rua das Flores",
			want:    pkg.Fields{},
		},
		{
			name:    "address postal code dash optional",
			message: "endereço: avenida central, 100, 01000000",
			want:    pkg.Fields{pkg.FieldAddress: "Avenida Central, 100, 01000000"},
		},
		{
			name:    "phone with punctuation is normalized to digits",
			message: "me liga no (11) 91234-5678",
			want:    pkg.Fields{pkg.FieldPhone: "11912345678"},
		},
		{
			name:    "bare ten digit phone",
			message: "telefone 1198765432",
			want:    pkg.Fields{pkg.FieldPhone: "1198765432"},
		},
		{
			name:    "symptoms via sinto",
			message: "sinto febre, dor de cabeça",
			want:    pkg.Fields{pkg.FieldSymptoms: "Febre, dor de cabeça"},
		},
		{
			name:    "symptoms via estou com",
			message: "estou com tosse",
			want:    pkg.Fields{pkg.FieldSymptoms: "Tosse"},
		},
		{
			name:    "symptoms label captures the rest of the message",
			message: "sintomas: dor no peito",
			want:    pkg.Fields{pkg.FieldSymptoms: "Dor no peito"},
		},
		{
			name:    "empty symptoms label yields nothing",
			message: "sintomas:",
			want:    pkg.Fields{},
		},
		{
			name:    "all remaining fields in one message",
			message: "moro na Rua A, 10, 01000-000, telefone 1198765432, sinto febre",
			want: pkg.Fields{
				pkg.FieldAddress:  "Rua A, 10, 01000-000",
				pkg.FieldPhone:    "1198765432",
				pkg.FieldSymptoms: "Febre",
			},
		},
		{
			name:    "nothing recognisable",
			message: "bom dia, tudo bem?",
			want:    pkg.Fields{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	msg := "meu nome é João, tenho 40 anos, sinto febre"
	first := Extract(msg)
	second := Extract(msg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestExtractNeverStoresEmptyValues(t *testing.T) {
	// "nome" followed by digits makes the capture collapse to whitespace;
	// the trimmed-empty value must not appear in the result.
	got := Extract("telefone nome 123")
	if v, ok := got[pkg.FieldName]; ok {
		t.Errorf("expected no name, got %q", v)
	}
}
