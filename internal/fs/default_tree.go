package fs

// DefaultTree is the demo tree browsed when no tree is configured.
func DefaultTree() []Directory {
	return []Directory{
		{Path: "/", Children: []string{"home", "documents", "downloads", "pictures"}},
		{Path: "/home", Children: []string{"profile.txt", "settings.json", "notes.md"}},
		{Path: "/documents", Children: []string{"work", "personal", "projects"}},
		{Path: "/documents/work", Children: []string{"report.pdf", "presentation.pptx", "data.xlsx"}},
		{Path: "/documents/personal", Children: []string{"diary.txt", "budget.xlsx", "contacts.json"}},
		{Path: "/documents/projects", Children: []string{"travel-planner", "todo-app", "blog"}},
		{Path: "/downloads", Children: []string{"image.jpg", "document.pdf", "video.mp4"}},
		{Path: "/pictures", Children: []string{"vacation", "family", "screenshots"}},
	}
}

// NewDefaultStore builds a store over DefaultTree.
func NewDefaultStore() *Store {
	return MustStore(DefaultTree()...)
}
