package quiz

// Pool returns the full compiled-in question bank. The returned slice
// is freshly allocated on each call so callers can never mutate the
// bank itself; the Question values inside are treated as immutable.
//
// Topics correspond to tutorial section IDs (internal/tutorial).
func Pool() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

var bank = []Question{
	// -- basics ----------------------------------------------------------
	{
		Prompt: "What is Git?",
		Kind:   KindChoice,
		Options: []string{
			"A distributed version control system",
			"A cloud hosting service for websites",
			"A programming language",
			"A text editor",
		},
		CorrectIndex: 0,
		Topic:        "basics",
	},
	{
		Prompt: "What is the relationship between Git and GitHub?",
		Kind:   KindChoice,
		Options: []string{
			"They are the same product",
			"GitHub is a hosting service for Git repositories",
			"Git is GitHub's command-line client",
			"GitHub is required to use Git",
		},
		CorrectIndex: 1,
		Topic:        "basics",
	},
	{
		Prompt: "Which command creates a new Git repository in the current directory?",
		Kind:   KindChoice,
		Options: []string{
			"git start",
			"git new",
			"git init",
			"git create",
		},
		CorrectIndex: 2,
		Topic:        "basics",
	},
	{
		Prompt: "Where does Git store a repository's history?",
		Kind:   KindChoice,
		Options: []string{
			"In a hidden .git directory",
			"On GitHub's servers",
			"In a history.txt file",
			"In the operating system registry",
		},
		CorrectIndex: 0,
		Topic:        "basics",
	},

	// -- commits ---------------------------------------------------------
	{
		Prompt: "What is a commit?",
		Kind:   KindChoice,
		Options: []string{
			"A backup of one file",
			"A snapshot of the repository at a point in time",
			"A copy of the repository on another machine",
			"A request to merge changes",
		},
		CorrectIndex: 1,
		Topic:        "commits",
	},
	{
		Prompt: "Which command records staged changes as a new commit?",
		Kind:   KindChoice,
		Options: []string{
			"git save -m \"message\"",
			"git snapshot -m \"message\"",
			"git push -m \"message\"",
			"git commit -m \"message\"",
		},
		CorrectIndex: 3,
		Topic:        "commits",
	},
	{
		Prompt: "Which command shows the commit history?",
		Kind:   KindChoice,
		Options: []string{
			"git log",
			"git history",
			"git commits",
			"git show-all",
		},
		CorrectIndex: 0,
		Topic:        "commits",
	},
	{
		Prompt: "What makes a good commit message?",
		Kind:   KindChoice,
		Options: []string{
			"A single period to save time",
			"The full diff pasted into the message",
			"A short summary of what the change does",
			"The current date and time",
		},
		CorrectIndex: 2,
		Topic:        "commits",
	},

	// -- staging ---------------------------------------------------------
	{
		Prompt: "What is the staging area?",
		Kind:   KindChoice,
		Options: []string{
			"A temporary branch for experiments",
			"The place where changes wait to be included in the next commit",
			"A folder where Git keeps deleted files",
			"GitHub's review queue",
		},
		CorrectIndex: 1,
		Topic:        "staging",
	},
	{
		Prompt: "Which command stages a file for the next commit?",
		Kind:   KindChoice,
		Options: []string{
			"git stage run",
			"git include",
			"git put",
			"git add",
		},
		CorrectIndex: 3,
		Topic:        "staging",
	},
	{
		Prompt: "Which command shows which files are modified, staged, or untracked?",
		Kind:   KindChoice,
		Options: []string{
			"git status",
			"git check",
			"git files",
			"git state",
		},
		CorrectIndex: 0,
		Topic:        "staging",
	},
	{
		Prompt: "What does `git add .` do?",
		Kind:   KindChoice,
		Options: []string{
			"Stages every change in the current directory and below",
			"Creates a file named \".\"",
			"Commits all changes immediately",
			"Adds a remote called \".\"",
		},
		CorrectIndex: 0,
		Topic:        "staging",
	},
	{
		Prompt: "A file is modified but not staged. What does `git commit` (without -a) include for it?",
		Kind:   KindChoice,
		Options: []string{
			"The modified version",
			"Nothing — only staged changes are committed",
			"Half of the change",
			"It errors out",
		},
		CorrectIndex: 1,
		Topic:        "staging",
	},

	// -- branching -------------------------------------------------------
	{
		Prompt: "What is a branch?",
		Kind:   KindChoice,
		Options: []string{
			"A copy of the repository on GitHub",
			"A deleted commit",
			"An independent line of development",
			"A compressed archive of the project",
		},
		CorrectIndex: 2,
		Topic:        "branching",
	},
	{
		Prompt: "Which command creates a new branch called `feature` and switches to it?",
		Kind:   KindChoice,
		Options: []string{
			"git switch -c feature",
			"git branch --move feature",
			"git merge feature",
			"git fork feature",
		},
		CorrectIndex: 0,
		Topic:        "branching",
	},
	{
		Prompt: "What does `git merge feature` do while on main?",
		Kind:   KindChoice,
		Options: []string{
			"Deletes the feature branch",
			"Brings feature's commits into main",
			"Renames main to feature",
			"Pushes feature to GitHub",
		},
		CorrectIndex: 1,
		Topic:        "branching",
	},
	{
		Prompt: "When does a merge conflict occur?",
		Kind:   KindChoice,
		Options: []string{
			"Whenever two branches exist",
			"When a branch has more than ten commits",
			"When the network connection drops",
			"When both branches changed the same lines of the same file",
		},
		CorrectIndex: 3,
		Topic:        "branching",
	},

	// -- remotes ---------------------------------------------------------
	{
		Prompt: "Which command uploads your local commits to GitHub?",
		Kind:   KindChoice,
		Options: []string{
			"git upload",
			"git push",
			"git send",
			"git sync --up",
		},
		CorrectIndex: 1,
		Topic:        "remotes",
	},
	{
		Prompt: "Which command downloads and integrates changes from a remote repository?",
		Kind:   KindChoice,
		Options: []string{
			"git pull",
			"git grab",
			"git download",
			"git copy",
		},
		CorrectIndex: 0,
		Topic:        "remotes",
	},
	{
		Prompt: "What is a pull request?",
		Kind:   KindChoice,
		Options: []string{
			"A command that runs git pull on a schedule",
			"A way to delete a remote branch",
			"A proposal to merge changes, with review and discussion",
			"An error message from GitHub",
		},
		CorrectIndex: 2,
		Topic:        "remotes",
	},
	{
		Prompt: "Which command copies a remote repository to your machine?",
		Kind:   KindChoice,
		Options: []string{
			"git checkout",
			"git import",
			"git remote add",
			"git clone",
		},
		CorrectIndex: 3,
		Topic:        "remotes",
	},

	// -- interactive exercises -------------------------------------------
	{
		Prompt:   "Stage the file index.html and commit it with the message \"add homepage\".",
		Kind:     KindInteractive,
		Exercise: ExerciseCommandWorkflow,
		Topic:    "staging",
	},
	{
		Prompt:   "Create a branch called feature, make it current, then merge it back into main.",
		Kind:     KindInteractive,
		Exercise: ExerciseBranchPractice,
		Topic:    "branching",
	},
	{
		Prompt:   "Select exactly the entries that belong in this project's .gitignore.",
		Kind:     KindInteractive,
		Exercise: ExerciseIgnoreBuilder,
		Topic:    "ignoring",
	},
}
