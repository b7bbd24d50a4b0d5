package content

var exercises = map[string]map[Difficulty][]Exercise{
	"counting": {
		DifficultyEasy: {
			{Prompt: "How many stars?", Illustration: "stars-2", Answer: "2"},
			{Prompt: "How many stars?", Illustration: "stars-4", Answer: "4"},
			{Prompt: "How many balloons?", Illustration: "balloons-3", Answer: "3"},
			{Prompt: "How many balloons?", Illustration: "balloons-5", Answer: "5"},
			{Prompt: "How many stars?", Illustration: "stars-1", Answer: "1"},
		},
		DifficultyMedium: {
			{Prompt: "2 + 3 = ?", Illustration: "abacus", Answer: "5"},
			{Prompt: "4 + 4 = ?", Illustration: "abacus", Answer: "8"},
			{Prompt: "6 + 3 = ?", Illustration: "abacus", Answer: "9"},
			{Prompt: "5 + 2 = ?", Illustration: "abacus", Answer: "7"},
			{Prompt: "1 + 9 = ?", Illustration: "abacus", Answer: "10"},
		},
		DifficultyTricky: {
			{Prompt: "7 - 4 = ?", Illustration: "abacus", Answer: "3"},
			{Prompt: "12 - 5 = ?", Illustration: "abacus", Answer: "7"},
			{Prompt: "3 x 3 = ?", Illustration: "abacus", Answer: "9"},
			{Prompt: "2 x 6 = ?", Illustration: "abacus", Answer: "12"},
			{Prompt: "15 - 8 = ?", Illustration: "abacus", Answer: "7"},
		},
	},
	"letters": {
		DifficultyEasy: {
			{Prompt: "Which letter comes after A?", Illustration: "blocks", Answer: "B", Choices: []string{"B", "D", "K"}},
			{Prompt: "Which letter comes after F?", Illustration: "blocks", Answer: "G", Choices: []string{"E", "G", "J"}},
			{Prompt: "Which letter comes before T?", Illustration: "blocks", Answer: "S", Choices: []string{"S", "U", "R"}},
			{Prompt: "Which letter comes after L?", Illustration: "blocks", Answer: "M", Choices: []string{"N", "M", "I"}},
			{Prompt: "Which letter comes before E?", Illustration: "blocks", Answer: "D", Choices: []string{"C", "F", "D"}},
		},
		DifficultyMedium: {
			{Prompt: "Fill the gap: c_t  (a furry pet that purrs)", Illustration: "cat", Answer: "a", Choices: []string{"a", "e", "u"}},
			{Prompt: "Fill the gap: s_n  (it shines in the sky)", Illustration: "sun", Answer: "u", Choices: []string{"o", "u", "i"}},
			{Prompt: "Fill the gap: d_g  (it barks)", Illustration: "dog", Answer: "o", Choices: []string{"o", "a", "e"}},
			{Prompt: "Fill the gap: _wl  (a night bird)", Illustration: "owl", Answer: "o", Choices: []string{"a", "o", "u"}},
			{Prompt: "Fill the gap: fro_  (it hops and croaks)", Illustration: "frog", Answer: "g", Choices: []string{"g", "k", "t"}},
		},
		DifficultyTricky: {
			{Prompt: "Unscramble: t-a-c  (it purrs)", Illustration: "cat", Answer: "cat"},
			{Prompt: "Unscramble: g-o-d  (it barks)", Illustration: "dog", Answer: "dog"},
			{Prompt: "Unscramble: n-u-s  (it shines)", Illustration: "sun", Answer: "sun"},
			{Prompt: "Unscramble: w-o-l  (a night bird)", Illustration: "owl", Answer: "owl"},
			{Prompt: "Unscramble: o-g-r-f  (it hops)", Illustration: "frog", Answer: "frog"},
		},
	},
	"colors": {
		DifficultyEasy: {
			{Prompt: "The sun is usually drawn...", Illustration: "sun", Answer: "yellow", Choices: []string{"yellow", "blue", "green"}},
			{Prompt: "Grass is...", Illustration: "meadow", Answer: "green", Choices: []string{"red", "green", "purple"}},
			{Prompt: "The sky on a clear day is...", Illustration: "sky", Answer: "blue", Choices: []string{"blue", "orange", "brown"}},
			{Prompt: "A ripe tomato is...", Illustration: "tomato", Answer: "red", Choices: []string{"red", "blue", "grey"}},
			{Prompt: "A banana is...", Illustration: "banana", Answer: "yellow", Choices: []string{"green", "pink", "yellow"}},
		},
		DifficultyMedium: {
			{Prompt: "Mix red and yellow. What do you get?", Illustration: "paint", Answer: "orange", Choices: []string{"orange", "purple", "green"}},
			{Prompt: "Mix blue and yellow. What do you get?", Illustration: "paint", Answer: "green", Choices: []string{"brown", "green", "pink"}},
			{Prompt: "Mix red and blue. What do you get?", Illustration: "paint", Answer: "purple", Choices: []string{"purple", "orange", "grey"}},
			{Prompt: "Mix black and white. What do you get?", Illustration: "paint", Answer: "grey", Choices: []string{"grey", "green", "gold"}},
			{Prompt: "Mix red and white. What do you get?", Illustration: "paint", Answer: "pink", Choices: []string{"pink", "brown", "blue"}},
		},
		DifficultyTricky: {
			{Prompt: "Type the color of a school bus", Illustration: "bus", Answer: "yellow"},
			{Prompt: "Type the color of a fire truck", Illustration: "truck", Answer: "red"},
			{Prompt: "Type the color of a frog", Illustration: "frog", Answer: "green"},
			{Prompt: "Type the color of the night sky", Illustration: "night", Answer: "black"},
			{Prompt: "Type the color of snow", Illustration: "snow", Answer: "white"},
		},
	},
}
