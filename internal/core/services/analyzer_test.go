package services

import (
	"strings"
	"testing"

	"findbgm/internal/core/domain"
)

func TestAnalyze_MoodAndTheme(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name       string
		script     string
		wantMoods  []string // acceptable primary moods
		wantTheme  string
		wantPacing string
	}{
		{
			name:       "workout script",
			script:     "High energy workout, let's go, feel the burn!",
			wantMoods:  []string{"motivational", "energetic"},
			wantTheme:  "fitness",
			wantPacing: "",
		},
		{
			name:       "cooking script",
			script:     "Today I will show you my favorite delicious recipe at home. The kitchen smells amazing and you will love the taste of this food.",
			wantMoods:  []string{"upbeat"},
			wantTheme:  "cooking",
			wantPacing: domain.PacingMedium,
		},
		{
			name:       "calm travel script",
			script:     "A peaceful journey through quiet mountain villages where every gentle morning begins with soft light over the valley and nothing disturbs the serene landscape around the remote destination.",
			wantMoods:  []string{"calm"},
			wantTheme:  "travel",
			wantPacing: domain.PacingSlow,
		},
		{
			name:      "no keyword hits falls back to sentiment mood",
			script:    "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor.",
			wantMoods: []string{domain.DefaultMood},
			wantTheme: domain.DefaultTheme,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzer.Analyze(tc.script)

			moodOK := false
			for _, m := range tc.wantMoods {
				if got.DetectedMood == m {
					moodOK = true
					break
				}
			}
			if !moodOK {
				t.Errorf("DetectedMood: got %q, want one of %v", got.DetectedMood, tc.wantMoods)
			}
			if got.DetectedTheme != tc.wantTheme {
				t.Errorf("DetectedTheme: got %q, want %q", got.DetectedTheme, tc.wantTheme)
			}
			if tc.wantPacing != "" && got.Pacing != tc.wantPacing {
				t.Errorf("Pacing: got %q, want %q", got.Pacing, tc.wantPacing)
			}
		})
	}
}

func TestAnalyze_EmptyScript(t *testing.T) {
	analyzer := NewAnalyzer()

	for _, script := range []string{"", "   ", "\n\t"} {
		got := analyzer.Analyze(script)

		want := domain.NeutralAnalysis()
		if got.DetectedMood != want.DetectedMood {
			t.Errorf("script %q: DetectedMood: got %q, want %q", script, got.DetectedMood, want.DetectedMood)
		}
		if got.DetectedTheme != want.DetectedTheme {
			t.Errorf("script %q: DetectedTheme: got %q, want %q", script, got.DetectedTheme, want.DetectedTheme)
		}
		if got.Pacing != domain.PacingMedium {
			t.Errorf("script %q: Pacing: got %q, want %q", script, got.Pacing, domain.PacingMedium)
		}
		if got.SentimentScore != 0 {
			t.Errorf("script %q: SentimentScore: got %v, want 0", script, got.SentimentScore)
		}
		if len(got.Keywords) != 0 {
			t.Errorf("script %q: Keywords: got %v, want empty", script, got.Keywords)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	script := "Intense workout party adventure with amazing food and quick tips!"

	first := analyzer.Analyze(script)
	for i := 0; i < 10; i++ {
		got := analyzer.Analyze(script)
		if got.DetectedMood != first.DetectedMood || got.DetectedTheme != first.DetectedTheme {
			t.Fatalf("run %d: got mood=%q theme=%q, want mood=%q theme=%q",
				i, got.DetectedMood, got.DetectedTheme, first.DetectedMood, first.DetectedTheme)
		}
		if strings.Join(got.AllDetectedMoods, ",") != strings.Join(first.AllDetectedMoods, ",") {
			t.Fatalf("run %d: AllDetectedMoods order changed: %v vs %v", i, got.AllDetectedMoods, first.AllDetectedMoods)
		}
	}
}

func TestAnalyze_TieBreakUsesPriorityOrder(t *testing.T) {
	analyzer := NewAnalyzer()

	// One keyword hit each for "calm" (peaceful) and "dramatic"
	// (tension). Priority lists calm before dramatic.
	got := analyzer.Analyze("A peaceful scene hiding an undercurrent of tension")

	if got.DetectedMood != "calm" {
		t.Errorf("DetectedMood: got %q, want %q (priority tie-break)", got.DetectedMood, "calm")
	}
	if len(got.AllDetectedMoods) != 2 {
		t.Fatalf("AllDetectedMoods: got %v, want two entries", got.AllDetectedMoods)
	}
	if got.AllDetectedMoods[0] != "calm" || got.AllDetectedMoods[1] != "dramatic" {
		t.Errorf("AllDetectedMoods: got %v, want [calm dramatic]", got.AllDetectedMoods)
	}
}

func TestAnalyze_MoodMajorityWinsOverPriority(t *testing.T) {
	analyzer := NewAnalyzer()

	// Two dramatic hits (intense, tension) against one upbeat hit
	// (party): majority beats the priority order.
	got := analyzer.Analyze("An intense finale full of tension right after the party")

	if got.DetectedMood != "dramatic" {
		t.Errorf("DetectedMood: got %q, want %q", got.DetectedMood, "dramatic")
	}
}

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantMin float64
		wantMax float64
	}{
		{"positive words", "This is amazing and awesome, the best day", 0.5, 1},
		{"negative words", "A terrible, awful and sad failure", -1, -0.5},
		{"no lexicon hits", "zx qwv table chair", 0, 0},
	}

	analyzer := NewAnalyzer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzer.Analyze(tc.script).SentimentScore
			if got < tc.wantMin || got > tc.wantMax {
				t.Errorf("SentimentScore: got %v, want in [%v, %v]", got, tc.wantMin, tc.wantMax)
			}
			if got < -1 || got > 1 {
				t.Errorf("SentimentScore %v outside [-1, 1]", got)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	analyzer := NewAnalyzer()
	got := analyzer.Analyze("The workout workout routine builds muscle with training and more training")

	if len(got.Keywords) > 10 {
		t.Fatalf("Keywords: got %d entries, want at most 10", len(got.Keywords))
	}

	seen := map[string]int{}
	for _, kw := range got.Keywords {
		seen[kw]++
		if seen[kw] > 1 {
			t.Errorf("Keywords contains duplicate %q", kw)
		}
		if len(kw) <= 3 {
			t.Errorf("Keywords contains short word %q", kw)
		}
	}
	if seen["workout"] != 1 {
		t.Errorf("Keywords: expected workout once, got %v", got.Keywords)
	}
}

func TestClassifyPacing(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"many exclamations", "Go! Go! Go! Keep moving forward everyone together now", domain.PacingFast},
		{"short sentences", "Run now. Jump high. Rest later.", domain.PacingFast},
		{
			"long sentences",
			"This extended meandering sentence keeps adding descriptive clauses about scenery and feelings without ever quite stopping for breath along the way.",
			domain.PacingSlow,
		},
		{"ordinary prose", "We start with a warm up. Then we move into the main exercise set for today.", domain.PacingMedium},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyPacing(tc.script); got != tc.want {
				t.Errorf("classifyPacing: got %q, want %q", got, tc.want)
			}
		})
	}
}
