package fs

import "strings"

// FileKind is the coarse content type a front end uses to decide how to open
// a file.
type FileKind int

const (
	FileKindNone FileKind = iota
	FileKindText
	FileKindConfig
	FileKindPDF
	FileKindImage
	FileKindVideo
	FileKindOther
)

var extensionKinds = map[string]FileKind{
	"txt":  FileKindText,
	"md":   FileKindText,
	"json": FileKindConfig,
	"pdf":  FileKindPDF,
	"jpg":  FileKindImage,
	"png":  FileKindImage,
	"gif":  FileKindImage,
	"mp4":  FileKindVideo,
	"avi":  FileKindVideo,
}

// Extension returns the lower-cased text after the last dot of name, or ""
// when name has no dot.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// FileKindForName maps a file name to its kind by extension.
func FileKindForName(name string) FileKind {
	if kind, ok := extensionKinds[Extension(name)]; ok {
		return kind
	}
	return FileKindOther
}

func (k FileKind) String() string {
	switch k {
	case FileKindText:
		return "text file"
	case FileKindConfig:
		return "config file"
	case FileKindPDF:
		return "PDF file"
	case FileKindImage:
		return "image file"
	case FileKindVideo:
		return "video file"
	case FileKindOther:
		return "file"
	default:
		return ""
	}
}
