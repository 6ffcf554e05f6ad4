package diagnosis

import (
	"reflect"
	"testing"
)

func memoProfile(t *testing.T, scores []int, memo string) *Profile {
	t.Helper()
	p, err := NewProfile(scores, PhaseUnknown, memo)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func defaultMemoAnalyzer() *MemoAnalyzer {
	return &MemoAnalyzer{Challenges: defaultChallengeRules, Visions: defaultVisionRules}
}

func TestMemo_ShortIsSkipped(t *testing.T) {
	m := defaultMemoAnalyzer()
	for _, memo := range []string{"", "awareness", "123456789", "ブランドの課題です"} {
		p := memoProfile(t, uniform(1), memo)
		got := m.Analyze(p)
		if got == nil || len(got) != 0 {
			t.Errorf("memo %q: expected empty findings, got %#v", memo, got)
		}
	}
}

func TestMemo_NoKeywordsHighAverage(t *testing.T) {
	s := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3}
	p := memoProfile(t, s, "abcdefghijkl")
	if p.Overall < 3.7 {
		t.Fatalf("fixture average %v is below 3.7", p.Overall)
	}
	got := defaultMemoAnalyzer().Analyze(p)
	if !reflect.DeepEqual(got, []string{promptNoVision}) {
		t.Errorf("findings = %q, want only the missing-vision prompt", got)
	}
}

func TestMemo_NoKeywordsLowAverage(t *testing.T) {
	p := memoProfile(t, uniform(2), "just some notes here")
	got := defaultMemoAnalyzer().Analyze(p)
	if !reflect.DeepEqual(got, []string{promptNoChallenge}) {
		t.Errorf("findings = %q, want only the missing-challenge prompt", got)
	}
}

func TestMemo_JapaneseChallengeAndVision(t *testing.T) {
	p := memoProfile(t, uniform(2), "認知度が低いのが課題です。")
	got := defaultMemoAnalyzer().Analyze(p)
	want := []string{
		defaultChallengeRules[0].Consistent,
		defaultVisionRules[3].Negative(p),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findings =\n%q\nwant\n%q", got, want)
	}
}

func TestMemo_Balanced(t *testing.T) {
	p := memoProfile(t, uniform(4), "Our challenge is awareness; our goal is growth.")
	got := defaultMemoAnalyzer().Analyze(p)
	want := []string{
		defaultChallengeRules[0].Divergent,
		defaultVisionRules[0].Positive(p),
		defaultVisionRules[3].Positive(p),
		confirmBalanced,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findings =\n%q\nwant\n%q", got, want)
	}
}

func TestMemo_CaseSensitive(t *testing.T) {
	p := memoProfile(t, uniform(4), "AWARENESS and GROWTH matter")
	got := defaultMemoAnalyzer().Analyze(p)
	if !reflect.DeepEqual(got, []string{promptNoVision}) {
		t.Errorf("upper-case triggers must not match, got %q", got)
	}
}

func TestMemo_CustomTables(t *testing.T) {
	m := &MemoAnalyzer{
		Challenges: []ChallengeRule{{
			Name:       "pricing",
			Triggers:   []string{"pricing"},
			Question:   QValueProposition,
			Threshold:  3,
			Consistent: "pricing-consistent",
			Divergent:  "pricing-divergent",
		}},
	}
	p := memoProfile(t, uniform(2), "pricing is our problem")
	got := m.Analyze(p)
	if !reflect.DeepEqual(got, []string{"pricing-consistent"}) {
		t.Errorf("findings = %q", got)
	}
}

func TestMemo_EnglishTriggersIgnoreEmbeddedWords(t *testing.T) {
	m := defaultMemoAnalyzer()
	for _, memo := range []string{
		"We should maintain our team spirit",
		"We claim to evaluate wholesales and escalate issues",
		"The staff had a steam-powered demo",
	} {
		p := memoProfile(t, uniform(4), memo)
		got := m.Analyze(p)
		if !reflect.DeepEqual(got, []string{promptNoVision}) {
			t.Errorf("memo %q: findings = %q, want only the missing-vision prompt", memo, got)
		}
	}
}

func TestMemo_DistinctiveEnglishTriggers(t *testing.T) {
	tests := []struct {
		memo string
		want string
	}{
		{"Our employee engagement is weak", defaultChallengeRules[2].Consistent},
		{"Hard to differentiate from others", defaultChallengeRules[1].Consistent},
		{"Our value proposition is vague", defaultChallengeRules[5].Consistent},
	}
	for _, tt := range tests {
		p := memoProfile(t, uniform(2), tt.memo)
		got := defaultMemoAnalyzer().Analyze(p)
		want := []string{tt.want, promptNoChallenge}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("memo %q: findings = %q, want %q", tt.memo, got, want)
		}
	}
}
