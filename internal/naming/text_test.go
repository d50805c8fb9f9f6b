package naming

import "testing"

func TestTitleThe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"The Office", "Office, The"},
		{"An Idiot Abroad", "Idiot Abroad, An"},
		{"A Touch of Cloth", "Touch of Cloth, A"},
		{"the office", "office, the"},
		{"Theory of Everything", "Theory of Everything"},
		{"Office", "Office"},
	}
	for _, tc := range tests {
		if got := TitleThe(tc.in); got != tc.want {
			t.Errorf("TitleThe(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitleYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		title string
		year  int
		want  string
	}{
		{"My Family Pies", 2018, "My Family Pies (2018)"},
		{"My Family Pies (2018)", 2018, "My Family Pies (2018)"},
		{"My Family Pies", 0, "My Family Pies"},
	}
	for _, tc := range tests {
		if got := TitleYear(tc.title, tc.year); got != tc.want {
			t.Errorf("TitleYear(%q, %d) = %q, want %q", tc.title, tc.year, got, tc.want)
		}
	}
}

func TestTitleWithoutYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"My Family Pies (2018)", "My Family Pies"},
		{"My Family Pies", "My Family Pies"},
		{"Catch 22 (1970)", "Catch 22"},
		{"Blink (182)", "Blink (182)"},
	}
	for _, tc := range tests {
		if got := TitleWithoutYear(tc.in); got != tc.want {
			t.Errorf("TitleWithoutYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Mike & Molly", "Mike and Molly"},
		{"What's Up, Doc?", "Whats Up Doc"},
		{"Café  Society", "Café Society"},
		{"Mr. Robot", "Mr Robot"},
	}
	for _, tc := range tests {
		if got := CleanTitle(tc.in); got != tc.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugTitle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"My Family Pies (2018)", "my-family-pies"},
		{"Mike & Molly", "mike-and-molly"},
		{"Spaced - Out", "spaced-out"},
	}
	for _, tc := range tests {
		if got := SlugTitle(tc.in); got != tc.want {
			t.Errorf("SlugTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitleFirstCharacter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"my family pies", "M"},
		{"24", "0-9"},
		{"'71", "0-9"},
		{"...", "_"},
	}
	for _, tc := range tests {
		if got := TitleFirstCharacter(tc.in); got != tc.want {
			t.Errorf("TitleFirstCharacter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
