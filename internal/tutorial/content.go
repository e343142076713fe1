package tutorial

var sections = []Section{
	{
		ID:    "basics",
		Title: "What is Git?",
		Body: []string{
			"Git is a distributed version control system. It records snapshots of your project over time so you can revisit any earlier state, see who changed what, and work on the same files as other people without overwriting each other.",
			"Every copy of a Git repository is complete: the full history lives in a hidden .git directory right next to your files. GitHub is a separate thing — a hosting service where Git repositories can be shared, reviewed, and discussed.",
		},
		Demo: []DemoLine{
			{Command: "git init", Output: "Initialized empty Git repository in /home/you/project/.git/"},
			{Command: "git status", Output: "On branch main\n\nNo commits yet\n\nnothing to commit (create/copy files and use \"git add\" to track)"},
		},
	},
	{
		ID:    "commits",
		Title: "Repositories & Commits",
		Body: []string{
			"A commit is a snapshot of the whole repository at a point in time, stamped with an author, a date, and a message describing the change. Commits chain together to form the project history.",
			"Write commit messages for the person reading the log later: a short summary of what the change does beats a timestamp or a lone period every time.",
		},
		Demo: []DemoLine{
			{Command: "git log --oneline", Output: "a3f91c2 add contact page\n8b02d71 style the navigation bar\n1c9e044 add homepage"},
			{Command: "git show --stat 1c9e044", Output: "commit 1c9e044\nAuthor: You <you@example.com>\n\n    add homepage\n\n index.html | 24 ++++++++++++++++++++++++\n 1 file changed, 24 insertions(+)"},
		},
	},
	{
		ID:    "staging",
		Title: "The Staging Workflow",
		Body: []string{
			"Changes do not go straight from your editor into history. They pass through the staging area: git add marks exactly which changes will be part of the next commit, and git commit records them.",
			"This two-step flow lets you craft focused commits even when your working directory is messy. git status shows where every file stands: untracked, modified, or staged.",
		},
		Demo: []DemoLine{
			{Command: "git add index.html", Output: ""},
			{Command: "git status", Output: "On branch main\nChanges to be committed:\n  (use \"git restore --staged <file>...\" to unstage)\n        modified:   index.html"},
			{Command: "git commit -m \"add homepage\"", Output: "[main 1c9e044] add homepage\n 1 file changed, 24 insertions(+)"},
		},
	},
	{
		ID:    "branching",
		Title: "Branching & Merging",
		Body: []string{
			"A branch is an independent line of development. You branch off main to build a feature, commit freely without touching anyone else's work, then merge the branch back when it is ready.",
			"Merging combines histories. When both branches touched the same lines of the same file, Git stops and asks you to resolve the conflict by hand — that is not an error, just Git refusing to guess.",
		},
		Demo: []DemoLine{
			{Command: "git switch -c feature", Output: "Switched to a new branch 'feature'"},
			{Command: "git commit -am \"build the feature\"", Output: "[feature 77ab310] build the feature\n 2 files changed, 40 insertions(+)"},
			{Command: "git switch main", Output: "Switched to branch 'main'"},
			{Command: "git merge feature", Output: "Updating a3f91c2..77ab310\nFast-forward\n 2 files changed, 40 insertions(+)"},
		},
	},
	{
		ID:    "remotes",
		Title: "Remotes & GitHub",
		Body: []string{
			"A remote is a copy of your repository on another machine, usually GitHub. git push uploads your commits to it; git pull downloads and integrates commits others have pushed; git clone copies a whole remote repository to your machine.",
			"On GitHub, a pull request wraps a branch in a conversation: reviewers comment on the changes, CI runs against them, and merging the pull request lands the branch.",
		},
		Demo: []DemoLine{
			{Command: "git remote add origin git@github.com:you/project.git", Output: ""},
			{Command: "git push -u origin main", Output: "To github.com:you/project.git\n * [new branch]      main -> main\nbranch 'main' set up to track 'origin/main'."},
			{Command: "git pull", Output: "Already up to date."},
		},
	},
	{
		ID:    "ignoring",
		Title: "Ignoring Files",
		Body: []string{
			"Not everything in your working directory belongs in history. Build output, dependency folders, logs, and secrets stay out of the repository via a .gitignore file: one pattern per line, and Git stops suggesting those files entirely.",
			"Typical entries: node_modules/ for installed dependencies, dist/ for build output, *.log for log files, and .env for local secrets. Source files and the README are exactly what Git is for — never ignore those.",
		},
		Demo: []DemoLine{
			{Command: "cat .gitignore", Output: "node_modules/\ndist/\n*.log\n.env"},
			{Command: "git status", Output: "On branch main\nnothing to commit, working tree clean"},
		},
	},
}
