package gateway

import "testing"

func TestNewEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		opcode string
	}{
		{"star", "*100#", "42"},
		{"digit", "1", "49"},
		{"empty", "", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(tt.text, "001010000000001")
			if env.Type != EnvelopeTypeUSSD {
				t.Errorf("Type = %q, want %q", env.Type, EnvelopeTypeUSSD)
			}
			if env.Opcode != tt.opcode {
				t.Errorf("Opcode = %q, want %q", env.Opcode, tt.opcode)
			}
		})
	}
}

func TestEnvelopeMarshal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain",
			text: "*100#",
			want: `{"type":"ussd","text":"*100#","opcode":"42","imsi":"001010000000001"}`,
		},
		{
			name: "html characters are not escaped",
			text: "<&>",
			want: `{"type":"ussd","text":"<&>","opcode":"60","imsi":"001010000000001"}`,
		},
		{
			name: "quote",
			text: `a"b`,
			want: `{"type":"ussd","text":"a\"b","opcode":"97","imsi":"001010000000001"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewEnvelope(tt.text, "001010000000001").Marshal()
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal = %s, want %s", b, tt.want)
			}
		})
	}
}
