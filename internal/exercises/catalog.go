// Package exercises provides the guided exercise catalog and a
// countdown runner that reports completions.
package exercises

// Category groups exercises for filtering.
type Category string

const (
	CategoryEye       Category = "eye"
	CategoryStretch   Category = "stretch"
	CategoryPosture   Category = "posture"
	CategoryBreathing Category = "breathing"
)

// Difficulty rates how demanding an exercise is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Exercise is one guided exercise with ordered instruction steps.
type Exercise struct {
	ID              string
	Name            string
	Description     string
	DurationSeconds int
	Category        Category
	Difficulty      Difficulty
	Steps           []string
	Benefits        []string
}

var catalog = []Exercise{
	{
		ID:              "eye-20-20-20",
		Name:            "20-20-20 Rule",
		Description:     "The classic exercise for reducing eye strain",
		DurationSeconds: 60,
		Category:        CategoryEye,
		Difficulty:      DifficultyEasy,
		Steps: []string{
			"Look at something 20 feet (6 meters) away for 20 seconds",
			"Move your eyes around slowly",
			"Blink a few times",
			"Return to your normal focus",
		},
		Benefits: []string{"Reduces eye strain", "Improves focus", "Protects against dry eye"},
	},
	{
		ID:              "neck-stretch",
		Name:            "Neck Stretch",
		Description:     "Relieves neck and shoulder tension",
		DurationSeconds: 120,
		Category:        CategoryStretch,
		Difficulty:      DifficultyEasy,
		Steps: []string{
			"Slowly turn your head to the right and hold for 15 seconds",
			"Slowly turn your head to the left and hold for 15 seconds",
			"Tilt your head forward and hold for 15 seconds",
			"Gently tuck your head back and hold for 15 seconds",
		},
		Benefits: []string{"Reduces neck tension", "Improves circulation", "Prevents headaches"},
	},
	{
		ID:              "shoulder-rolls",
		Name:            "Shoulder Rolls",
		Description:     "Relaxes the shoulder muscles",
		DurationSeconds: 90,
		Category:        CategoryStretch,
		Difficulty:      DifficultyEasy,
		Steps: []string{
			"Slowly roll your shoulders forward 5 times",
			"Slowly roll your shoulders backward 5 times",
			"Raise your shoulders and hold for 5 seconds",
			"Let your shoulders drop and relax",
		},
		Benefits: []string{"Reduces shoulder tension", "Improves posture", "Boosts upper-body circulation"},
	},
	{
		ID:              "deep-breathing",
		Name:            "Deep Breathing",
		Description:     "A breathing exercise that lowers stress",
		DurationSeconds: 180,
		Category:        CategoryBreathing,
		Difficulty:      DifficultyMedium,
		Steps: []string{
			"Sit in a comfortable position",
			"Breathe in through your nose for 4 seconds",
			"Hold your breath for 7 seconds",
			"Breathe out through your mouth for 8 seconds",
			"Repeat this cycle 4 times",
		},
		Benefits: []string{"Reduces stress", "Improves concentration", "Regulates blood pressure"},
	},
	{
		ID:              "spinal-twist",
		Name:            "Spinal Twist",
		Description:     "Improves spinal flexibility",
		DurationSeconds: 120,
		Category:        CategoryPosture,
		Difficulty:      DifficultyMedium,
		Steps: []string{
			"Sit upright in your chair",
			"Slowly rotate your torso to the right",
			"Hold the position for 15 seconds",
			"Return to center and rotate to the left",
			"Hold the position for 15 seconds",
		},
		Benefits: []string{"Improves spinal flexibility", "Reduces lower back pain", "Supports digestion"},
	},
}

// Catalog returns all exercises in their defined order.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory filters the catalog. An empty category returns everything.
func ByCategory(cat Category) []Exercise {
	if cat == "" {
		return Catalog()
	}
	var out []Exercise
	for _, ex := range catalog {
		if ex.Category == cat {
			out = append(out, ex)
		}
	}
	return out
}

// Get finds an exercise by id.
func Get(id string) (Exercise, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
