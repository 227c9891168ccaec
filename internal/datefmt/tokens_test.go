package datefmt

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"", nil},
		{"   ", nil},
		{"2022-02-03", []Token{
			{TokenField, "2022"}, {TokenDelim, "-"}, {TokenField, "02"}, {TokenDelim, "-"}, {TokenField, "03"},
		}},
		{"  Feb 3, 2022 ", []Token{
			{TokenField, "Feb"}, {TokenField, "3"}, {TokenDelim, ","}, {TokenField, "2022"},
		}},
		{"2000--01", []Token{
			{TokenField, "2000"}, {TokenDelim, "-"}, {TokenDelim, "-"}, {TokenField, "01"},
		}},
		{"2000-01-", []Token{
			{TokenField, "2000"}, {TokenDelim, "-"}, {TokenField, "01"}, {TokenDelim, "-"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenIsDelim(t *testing.T) {
	tok := Token{TokenDelim, "/"}
	if !tok.IsDelim('/') || tok.IsDelim('-') {
		t.Errorf("IsDelim mismatch for %+v", tok)
	}
	field := Token{TokenField, "-"}
	if field.IsDelim('-') {
		t.Error("field token reported as delimiter")
	}
}
