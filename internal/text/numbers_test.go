package text

import "testing"

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "không"},
		{1, "một"},
		{5, "năm"},
		{7, "bảy"},
		{10, "mười"},
		{11, "mười một"},
		{15, "mười lăm"},
		{19, "mười chín"},
		{20, "hai mươi"},
		{21, "hai mươi mốt"},
		{25, "hai mươi lăm"},
		{34, "ba mươi bốn"},
		{99, "chín mươi chín"},
		{100, "một trăm"},
		{105, "một trăm lẻ năm"},
		{110, "một trăm mười"},
		{115, "một trăm mười lăm"},
		{221, "hai trăm hai mươi mốt"},
		{999, "chín trăm chín mươi chín"},
		{1000, "một nghìn"},
		{1005, "một nghìn không trăm lẻ năm"},
		{1050, "một nghìn không trăm năm mươi"},
		{1100, "một nghìn một trăm"},
		{15000, "mười lăm nghìn"},
		{123456, "một trăm hai mươi ba nghìn bốn trăm năm mươi sáu"},
		{999999, "chín trăm chín mươi chín nghìn chín trăm chín mươi chín"},
		{-7, "âm bảy"},
		{-105, "âm một trăm lẻ năm"},
		// Millions and above are read digit by digit.
		{1000000, "một không không không không không không"},
		{2500000, "hai năm không không không không không"},
	}

	for _, tt := range tests {
		got := NumberToWords(tt.n)
		if got != tt.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestExpandNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty passthrough",
			input: "",
			want:  "",
		},
		{
			name:  "no digits passthrough",
			input: "tôi có mèo",
			want:  "tôi có mèo",
		},
		{
			name:  "standalone number",
			input: "tôi có 15 con mèo",
			want:  "tôi có mười lăm con mèo",
		},
		{
			name:  "multiple numbers",
			input: "1 và 2",
			want:  "một và hai",
		},
		{
			name:  "number before punctuation",
			input: "năm 2026.",
			want:  "năm hai nghìn không trăm hai mươi sáu.",
		},
		{
			name:  "number inside parentheses",
			input: "(15)",
			want:  "(mười lăm)",
		},
		{
			name:  "alphanumeric token untouched",
			input: "ISO9001",
			want:  "ISO9001",
		},
		{
			name:  "digits after vietnamese letter untouched",
			input: "mã số15 đây",
			want:  "mã số15 đây",
		},
		{
			name:  "underscore-bound digits untouched",
			input: "id_42",
			want:  "id_42",
		},
		{
			name:  "run exceeding int64 untouched",
			input: "mã 12345678901234567890 đây",
			want:  "mã 12345678901234567890 đây",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandNumbers(tt.input)
			if got != tt.want {
				t.Errorf("ExpandNumbers(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
