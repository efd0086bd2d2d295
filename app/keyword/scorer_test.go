package keyword

import "testing"

func TestScorerRunSingleWord(t *testing.T) {
	scorer := NewScorer()

	scored := scorer.Run([]string{"wireless"})
	if len(scored) != 1 {
		t.Fatalf("Expected 1 scored keyword, got %d", len(scored))
	}

	kw := scored[0]
	if kw.VolumeScore != 50 {
		t.Errorf("Expected volume score 50, got %d", kw.VolumeScore)
	}
	if kw.DifficultyScore != 70 {
		t.Errorf("Expected difficulty score 70, got %d", kw.DifficultyScore)
	}
	if kw.RelevanceScore != 70 {
		t.Errorf("Expected relevance score 70, got %d", kw.RelevanceScore)
	}
	if kw.CombinedScore != 50.0 {
		t.Errorf("Expected combined score 50.0, got %.2f", kw.CombinedScore)
	}
}

func TestScorerRunTwoWords(t *testing.T) {
	scorer := NewScorer()

	kw := scorer.Run([]string{"best wireless"})[0]
	if kw.VolumeScore != 80 {
		t.Errorf("Expected volume score 80, got %d", kw.VolumeScore)
	}
	if kw.DifficultyScore != 50 {
		t.Errorf("Expected difficulty score 50, got %d", kw.DifficultyScore)
	}
	if kw.CombinedScore != 68.0 {
		t.Errorf("Expected combined score 68.0, got %.2f", kw.CombinedScore)
	}
}

func TestScorerRunLongTail(t *testing.T) {
	scorer := NewScorer()

	kw := scorer.Run([]string{"best wireless headphones"})[0]
	if kw.VolumeScore != 70 {
		t.Errorf("Expected volume score 70, got %d", kw.VolumeScore)
	}
	if kw.DifficultyScore != 40 {
		t.Errorf("Expected difficulty score 40, got %d", kw.DifficultyScore)
	}
	if kw.RelevanceScore != 90 {
		t.Errorf("Expected relevance score 90, got %d", kw.RelevanceScore)
	}
	if kw.CombinedScore != 73.0 {
		t.Errorf("Expected combined score 73.0, got %.2f", kw.CombinedScore)
	}
}

func TestScorerRunTemporalBoost(t *testing.T) {
	scorer := NewScorer()

	kw := scorer.Run([]string{"2025 wireless"})[0]
	if kw.VolumeScore != 75 {
		t.Errorf("Expected volume score 75, got %d", kw.VolumeScore)
	}
}

func TestScorerRunVolumeCapped(t *testing.T) {
	scorer := NewScorer()

	kw := scorer.Run([]string{"best new top"})[0]
	if kw.VolumeScore > 100 {
		t.Errorf("Expected volume score capped at 100, got %d", kw.VolumeScore)
	}
}

func TestScorerRunPreservesOrder(t *testing.T) {
	scorer := NewScorer()

	candidates := []string{"wireless", "best wireless", "wireless headphones"}
	scored := scorer.Run(candidates)

	for i, kw := range scored {
		if kw.Text != candidates[i] {
			t.Errorf("Expected keyword %d to be '%s', got '%s'", i, candidates[i], kw.Text)
		}
	}
}

func TestRankTopN(t *testing.T) {
	scorer := NewScorer()

	scored := scorer.Run([]string{"wireless", "best wireless", "best wireless headphones", "headphones", "top wireless"})
	ranked := Rank(scored, 4)

	if len(ranked) != 4 {
		t.Fatalf("Expected 4 ranked keywords, got %d", len(ranked))
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].CombinedScore > ranked[i-1].CombinedScore {
			t.Errorf("Expected descending order, got %.2f before %.2f",
				ranked[i-1].CombinedScore, ranked[i].CombinedScore)
		}
	}

	if ranked[0].Text != "best wireless headphones" {
		t.Errorf("Expected 'best wireless headphones' ranked first, got '%s'", ranked[0].Text)
	}
}

func TestRankStableTies(t *testing.T) {
	scorer := NewScorer()

	// Both score identically; generation order decides
	scored := scorer.Run([]string{"wireless", "headphones"})
	ranked := Rank(scored, 2)

	if ranked[0].Text != "wireless" || ranked[1].Text != "headphones" {
		t.Errorf("Expected stable tie order [wireless headphones], got [%s %s]",
			ranked[0].Text, ranked[1].Text)
	}
}

func TestRankFewerThanN(t *testing.T) {
	scorer := NewScorer()

	ranked := Rank(scorer.Run([]string{"wireless"}), 4)
	if len(ranked) != 1 {
		t.Errorf("Expected 1 keyword when fewer than requested, got %d", len(ranked))
	}
}

func TestResearcherRunReturnsTopKeywordCount(t *testing.T) {
	researcher := NewResearcher()

	keywords := researcher.Run("Wireless Bluetooth Headphones", "Electronics")
	if len(keywords) != TopKeywordCount {
		t.Fatalf("Expected %d keywords, got %d", TopKeywordCount, len(keywords))
	}

	for _, kw := range keywords {
		if kw.Text == "" {
			t.Error("Expected non-empty keyword text")
		}
		if kw.CombinedScore <= 0 {
			t.Errorf("Expected positive combined score for '%s', got %.2f", kw.Text, kw.CombinedScore)
		}
	}
}

func TestResearcherRunDegenerateTitle(t *testing.T) {
	researcher := NewResearcher()

	keywords := researcher.Run("", "Electronics")
	if len(keywords) != TopKeywordCount {
		t.Fatalf("Expected %d keywords after padding, got %d", TopKeywordCount, len(keywords))
	}

	for _, kw := range keywords {
		if kw.Text != "electronics" {
			t.Errorf("Expected category padding 'electronics', got '%s'", kw.Text)
		}
	}
}
