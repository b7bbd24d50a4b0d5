package content

var tutorials = map[string][]TutorialStep{
	"counting": {
		{Instruction: "Look at the picture and count what you see.", Illustration: "stars-3"},
		{Instruction: "Type the number, then press Enter.", Illustration: "keyboard"},
		{Instruction: "Three right answers in a round earns a star!", Illustration: "star-big"},
	},
	"letters": {
		{Instruction: "Read the question about letters and words.", Illustration: "blocks"},
		{Instruction: "Pick an answer with the arrow keys, or type it.", Illustration: "keyboard"},
		{Instruction: "Press Enter when you are sure. Good luck!", Illustration: "owl"},
	},
	"colors": {
		{Instruction: "Think about the color of the thing in the picture.", Illustration: "paint"},
		{Instruction: "Choose from the list with the arrow keys.", Illustration: "keyboard"},
		{Instruction: "Press Enter to answer. Have fun!", Illustration: "owl"},
	},
}
