package domain

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "clean title is untouched",
			title: "Release Notes",
			want:  "Release Notes",
		},
		{
			name:  "colon and slashes",
			title: "Report: Q1/Q2",
			want:  "Report_ Q1_Q2",
		},
		{
			name:  "every unsafe character",
			title: `a<b>c:d"e/f\g|h?i*j`,
			want:  "a_b_c_d_e_f_g_h_i_j",
		},
		{
			name:  "leading and trailing spaces and periods",
			title: " . Meeting Notes . ",
			want:  "Meeting Notes",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "only unsafe characters",
			title: "???",
			want:  "___",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.title)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := SanitizeFilename(long)
	if len(got) != 200 {
		t.Errorf("len = %d, want 200", len(got))
	}
}

func TestSanitizeFilenameNeverEmitsUnsafeChars(t *testing.T) {
	titles := []string{
		"Plans <2026>",
		`C:\Users\nobody`,
		"what? | why? | how?",
		"a/b/c/d/e",
		strings.Repeat(`*"`, 300),
	}

	for _, title := range titles {
		got := SanitizeFilename(title)
		if strings.ContainsAny(got, `<>:"/\|?*`) {
			t.Errorf("SanitizeFilename(%q) = %q, contains unsafe characters", title, got)
		}
		if len(got) > 200 {
			t.Errorf("SanitizeFilename(%q) length %d exceeds 200", title, len(got))
		}
	}
}
