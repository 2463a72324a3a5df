package profile

import "testing"

func TestExtractYouTubeID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"not youtube", "https://vimeo.com/123456", "", false},
		{"id too short", "https://youtu.be/short", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, ok := ExtractYouTubeID(tc.url)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v want=%v", ok, tc.wantOK)
			}
			if id != tc.wantID {
				t.Fatalf("id=%q want=%q", id, tc.wantID)
			}
		})
	}
}

func TestLines_SkipsEmptyRows(t *testing.T) {
	t.Parallel()

	got := Lines("2019 league title\n\n  \n2021 cup winner")
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(got), got)
	}
	if got[0] != "2019 league title" || got[1] != "2021 cup winner" {
		t.Fatalf("unexpected lines: %v", got)
	}
}

func TestPlayerProfile_CloneIsDeep(t *testing.T) {
	t.Parallel()

	original := PlayerProfile{
		UserID:          "user-1",
		VideoHighlights: []string{"https://youtu.be/dQw4w9WgXcQ"},
	}

	copied := original.Clone()
	copied.VideoHighlights[0] = "changed"
	copied.VideoHighlights = append(copied.VideoHighlights, "extra")

	if original.VideoHighlights[0] != "https://youtu.be/dQw4w9WgXcQ" {
		t.Fatalf("clone aliases original slice")
	}
	if len(original.VideoHighlights) != 1 {
		t.Fatalf("clone append grew original slice")
	}
}
