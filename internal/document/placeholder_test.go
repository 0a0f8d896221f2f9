package document

import "testing"

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantVar    string
		wantValue  string
		wantOK     bool
	}{
		{
			name:      "name_and_default",
			input:     "${DB_HOST:localhost}",
			wantVar:   "DB_HOST",
			wantValue: "localhost",
			wantOK:    true,
		},
		{
			name:      "name_only",
			input:     "${DB_HOST}",
			wantVar:   "DB_HOST",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:      "default_contains_colon",
			input:     "${URL:http://localhost:8080}",
			wantVar:   "URL",
			wantValue: "http://localhost:8080",
			wantOK:    true,
		},
		{
			name:      "empty_default",
			input:     "${NAME:}",
			wantVar:   "NAME",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:   "empty_body",
			input:  "${}",
			wantOK: false,
		},
		{
			name:   "empty_name_with_default",
			input:  "${:fallback}",
			wantOK: false,
		},
		{
			name:   "whitespace_name",
			input:  "${  :fallback}",
			wantOK: false,
		},
		{
			name:   "plain_string",
			input:  "localhost",
			wantOK: false,
		},
		{
			name:   "not_anchored",
			input:  "prefix${VAR}",
			wantOK: false,
		},
		{
			name:   "unclosed_brace",
			input:  "${VAR",
			wantOK: false,
		},
		{
			name:   "empty_string",
			input:  "",
			wantOK: false,
		},
		{
			name:      "trailing_text_after_brace",
			input:     "${VAR:x}suffix",
			wantVar:   "VAR",
			wantValue: "x",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envVar, value, ok := ParsePlaceholder(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParsePlaceholder(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if envVar != tt.wantVar {
				t.Errorf("envVar = %q, want %q", envVar, tt.wantVar)
			}
			if value != tt.wantValue {
				t.Errorf("default = %q, want %q", value, tt.wantValue)
			}
		})
	}
}
