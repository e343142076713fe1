// Package tutorial holds the compiled-in lesson content: ordered
// sections of prose plus scripted terminal demos the lesson screen
// replays with a typing animation. Content is read-only process-wide
// data.
package tutorial

// DemoLine is one scripted line of a terminal demo: a command typed
// out character by character, followed by its canned output. Nothing
// is ever executed; the demo is presentation only.
type DemoLine struct {
	// Command is the shell command shown at the prompt.
	Command string

	// Output is the pre-scripted result printed after the command.
	Output string
}

// Section is one tutorial chapter.
type Section struct {
	// ID is the stable topic identifier quiz questions reference.
	ID string

	// Title is the chapter heading.
	Title string

	// Body is the lesson prose, paragraph per entry.
	Body []string

	// Demo is the scripted terminal session for this chapter. May be
	// empty for prose-only sections.
	Demo []DemoLine
}

// Sections returns the ordered tutorial chapters.
func Sections() []Section {
	return sections
}

// ByID returns the section with the given topic ID, or false if no
// such section exists.
func ByID(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// IndexOf returns the position of the section with the given ID in the
// ordered list, or -1.
func IndexOf(id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
