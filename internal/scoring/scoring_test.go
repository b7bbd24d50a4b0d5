package scoring

import "testing"

func TestCheckExactAndNormalized(t *testing.T) {
	cases := []struct {
		expected, given string
		want            bool
	}{
		{"yellow", "yellow", true},
		{"yellow", "  YELLOW ", true},
		{"green", "Green", true},
		{"orange", "purple", false},
		{"cat", "", false},
		{"", "cat", false},
	}
	for _, c := range cases {
		if got := Check(c.expected, c.given); got != c.want {
			t.Fatalf("Check(%q, %q) = %v, want %v", c.expected, c.given, got, c.want)
		}
	}
}

func TestCheckForgivesOneSlipInLongWords(t *testing.T) {
	if !Check("yellow", "yelow") {
		t.Fatalf("one dropped letter in a long word should pass")
	}
	if Check("yellow", "yllw") {
		t.Fatalf("two slips should fail")
	}
	// short words get no budget
	if Check("cat", "car") {
		t.Fatalf("short words must match exactly")
	}
}

func TestCheckNumbersMustBeExact(t *testing.T) {
	if !Check("7", "7") {
		t.Fatalf("matching number rejected")
	}
	if Check("7", "1") {
		t.Fatalf("close digits are still wrong")
	}
	if Check("10", "16") {
		t.Fatalf("numeric answers get no typo budget")
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{5, 5, 3},
		{4, 5, 2},
		{2, 5, 1},
		{1, 5, 0},
		{0, 5, 0},
		{3, 0, 0},
		{7, 5, 3},
	}
	for _, c := range cases {
		if got := Stars(c.correct, c.total); got != c.want {
			t.Fatalf("Stars(%d, %d) = %d, want %d", c.correct, c.total, got, c.want)
		}
	}
}
