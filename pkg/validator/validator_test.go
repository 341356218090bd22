package validator

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"010-1234-5678", true},
		{"01012345678", true},
		{"010 1234 5678", true},
		{"02-123-4567", true},
		{"+82-10-1234-5678", true},
		{"+821012345678", true},
		{"12345", false},
		{"010-1234", false},
		{"abc-defg-hijk", false},
		{"", false},
		{"010-1234-5678-999", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"010-1234-5678", "01012345678"},
		{"010 1234 5678", "01012345678"},
		{"01012345678", "01012345678"},
		{"+82-10-1234-5678", "+821012345678"},
		{"(02) 123-4567", "021234567"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"kim@example.com", true},
		{"kim.chulsoo+web@clinic.co.kr", true},
		{"kim@example", false},
		{"@example.com", false},
		{"kim example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"secret99", true},
		{"a1b2c3", true},
		{"P@ssw0rd!", true},
		{"short", false},
		{"", false},
		{"비밀번호123", false},
	}

	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"김철수", true},
		{"John Smith", true},
		{"", false},
		{"   ", false},
		{"김철수!", false},
	}

	for _, tt := range tests {
		if got := ValidateName(tt.name); got != tt.want {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"정상 제목입니다", "정상 제목입니다"},
		{`O'Brien; DROP TABLE`, "OBrien DROP TABLE"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
