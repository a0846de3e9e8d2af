package bot

import "fmt"

// IntentKey identifies a category of user request.
type IntentKey string

const (
	IntentGreeting    IntentKey = "greeting"
	IntentCourseInfo  IntentKey = "course_info"
	IntentAssessment  IntentKey = "assessment"
	IntentLibraries   IntentKey = "libraries"
	IntentHelpProject IntentKey = "help_project"
	IntentGithub      IntentKey = "github"
	IntentThanks      IntentKey = "thanks"
	IntentGoodbye     IntentKey = "goodbye"

	// IntentUnknown is the sentinel returned when no pattern matches.
	IntentUnknown IntentKey = "unknown"
)

// Intent pairs a keyword pattern set with its canned replies.
// Patterns are lowercase substrings matched against normalized input.
// Only Responses[0] is ever surfaced; the alternates are kept for parity
// with the original response catalog.
type Intent struct {
	Key       IntentKey
	Patterns  []string
	Responses []string
}

// FallbackResponse is the reply for input that matches no intent.
const FallbackResponse = "I'm not sure I understand. I can help with: course information, " +
	"assessments, Python libraries, project guidance, and GitHub. " +
	"Try asking about any of these topics!"

// IntentTable is the fixed intent catalog. Slice order is match priority:
// an input containing patterns from several intents resolves to the one
// listed first.
var IntentTable = []Intent{
	{
		Key:      IntentGreeting,
		Patterns: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon"},
		Responses: []string{
			"Hello! I'm your AI Course Assistant. How can I help you today?",
			"Hi there! Ask me anything about AI courses and programming.",
			"Greetings! I'm here to help with your AI course questions.",
		},
	},
	{
		Key:      IntentCourseInfo,
		Patterns: []string{"course", "what is dai011", "programming for ai", "subject", "module"},
		Responses: []string{
			"DAI011: Programming for AI is a course that teaches Python programming fundamentals with a focus on AI and ML applications. You'll learn data handling, basic algorithms, and how to use AI libraries.",
			"This course covers Python basics, data analysis with Pandas, machine learning with scikit-learn, and building simple AI applications.",
		},
	},
	{
		Key:      IntentAssessment,
		Patterns: []string{"cat", "exam", "assessment", "test", "marks", "grade", "evaluation"},
		Responses: []string{
			"The course assessment includes Continuous Assessment Tests (CATs) worth 30% and a final exam worth 70%. CAT 2 focuses on GitHub workflow and a Python AI project.",
			"Your CAT 2 is worth 20% of continuous assessment (40 marks total). It includes GitHub setup, a Python project, and documentation.",
		},
	},
	{
		Key:      IntentLibraries,
		Patterns: []string{"library", "libraries", "package", "pandas", "numpy", "scikit", "tools"},
		Responses: []string{
			"Common AI/ML libraries in Python include: Pandas (data manipulation), NumPy (numerical computing), scikit-learn (machine learning), Matplotlib (visualization), and TensorFlow/PyTorch (deep learning).",
			"For this course, you'll mainly use Pandas for data analysis, NumPy for arrays, and scikit-learn for basic machine learning models.",
		},
	},
	{
		Key:      IntentHelpProject,
		Patterns: []string{"help", "project", "assignment", "stuck", "how to", "guide"},
		Responses: []string{
			"For your project: 1) Set up GitHub repository, 2) Choose a project option (chatbot, data analyzer, or ML model), 3) Write clean, commented code, 4) Document everything with screenshots. Need help with a specific part?",
			"I can help! Break your project into small steps: start with GitHub setup, then write basic code, test it, commit changes regularly, and finally write your report with screenshots.",
		},
	},
	{
		Key:      IntentGithub,
		Patterns: []string{"github", "git", "repository", "commit", "push", "version control"},
		Responses: []string{
			"GitHub is a platform for version control using Git. Basic workflow: 1) git add (stage files), 2) git commit -m 'message' (save changes), 3) git push (upload to GitHub). Make at least 3 commits showing your progress!",
			"For CAT 2, create a public repository named 'AI_Programming_Project', add a README, and commit your code incrementally with clear messages like 'Initial setup', 'Added data handling', 'Final implementation'.",
		},
	},
	{
		Key:      IntentThanks,
		Patterns: []string{"thank", "thanks", "appreciate", "helpful"},
		Responses: []string{
			"You're welcome! Good luck with your project!",
			"Happy to help! Feel free to ask if you have more questions.",
			"Glad I could assist! Best wishes with your coursework!",
		},
	},
	{
		Key:      IntentGoodbye,
		Patterns: []string{"bye", "goodbye", "see you", "exit", "quit"},
		Responses: []string{
			"Goodbye! Good luck with your studies!",
			"See you later! Feel free to come back anytime.",
			"Take care! All the best with your AI projects!",
		},
	},
}

// ValidateTable checks the intent catalog invariants: unique keys, at least
// one pattern and one response per intent, and patterns that survive
// normalization unchanged (lowercase, no punctuation).
func ValidateTable(table []Intent) error {
	seen := make(map[IntentKey]bool, len(table))
	for _, intent := range table {
		if intent.Key == "" || intent.Key == IntentUnknown {
			return fmt.Errorf("invalid intent key %q", intent.Key)
		}
		if seen[intent.Key] {
			return fmt.Errorf("duplicate intent key %q", intent.Key)
		}
		seen[intent.Key] = true
		if len(intent.Patterns) == 0 {
			return fmt.Errorf("intent %q has no patterns", intent.Key)
		}
		if len(intent.Responses) == 0 {
			return fmt.Errorf("intent %q has no responses", intent.Key)
		}
		for _, p := range intent.Patterns {
			if p == "" {
				return fmt.Errorf("intent %q has an empty pattern", intent.Key)
			}
			if Normalize(p) != p {
				return fmt.Errorf("intent %q pattern %q is not normalized", intent.Key, p)
			}
		}
	}
	return nil
}
