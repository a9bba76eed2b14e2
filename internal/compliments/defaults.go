package compliments

var defaultCategories = []struct {
	name    string
	entries []string
}{
	{
		name: "study",
		entries: []string{
			"Your curiosity is your superpower—keep asking great questions.",
			"You turn complex topics into clear, simple ideas. That's real skill.",
			"Your consistency beats motivation every time—well done showing up.",
			"Your notes could teach a class. Seriously impressive.",
			"You learn fast and explain even faster. A+ teammate energy.",
		},
	},
	{
		name: "career",
		entries: []string{
			"You bring clarity to chaos—people trust you for a reason.",
			"Your work ethic quietly sets the standard for the room.",
			"You don't just solve problems—you make better ones impossible.",
			"Your presence makes teams braver and projects smoother.",
			"Your judgment is solid—I'd ship anything with you on it.",
		},
	},
	{
		name: "wellness",
		entries: []string{
			"You are allowed to take up space—rest is part of progress.",
			"Your kindness has a ripple effect you'll never fully see.",
			"Small steps count. You're building something beautiful.",
			"Your calm is contagious. People feel safe around you.",
			"You're doing great—be as gentle to yourself as you are to others.",
		},
	},
}

// Default returns the bootstrap store used when nothing has been saved yet.
func Default() *Store {
	s := New()
	for _, c := range defaultCategories {
		s.add(c.name, c.entries...)
	}
	return s
}
