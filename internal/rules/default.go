package rules

// Default returns the built-in table. Extensions shared between
// executables and archives (.deb, .rpm, .dmg, .pkg) resolve to
// archives, which is listed last.
func Default() *Table {
	return New([]Category{
		{Name: "images", Extensions: []string{
			".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".bmp",
			".tiff", ".ico", ".heic", ".raw", ".cr2", ".nef",
		}},
		{Name: "documents", Extensions: []string{
			".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages",
			".xlsx", ".xls", ".csv", ".pptx", ".ppt", ".odp", ".keynote",
		}},
		{Name: "videos", Extensions: []string{
			".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
			".m4v", ".3gp", ".mpg", ".mpeg", ".ogv",
		}},
		{Name: "audio", Extensions: []string{
			".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a",
			".opus", ".aiff", ".alac",
		}},
		{Name: "code", Extensions: []string{
			".py", ".js", ".html", ".css", ".json", ".xml", ".yml", ".yaml",
			".java", ".cpp", ".c", ".h", ".php", ".rb", ".go", ".rs", ".swift",
		}},
		{Name: "fonts", Extensions: []string{
			".ttf", ".otf", ".woff", ".woff2", ".eot",
		}},
		{Name: "ebooks", Extensions: []string{
			".epub", ".mobi", ".azw", ".azw3", ".fb2", ".lit",
		}},
		{Name: "cad", Extensions: []string{
			".dwg", ".dxf", ".step", ".iges", ".stl", ".obj", ".blend",
		}},
		{Name: "executables", Extensions: []string{
			".exe", ".msi", ".app", ".deb", ".rpm", ".dmg", ".pkg",
			".run", ".appimage", ".flatpak", ".snap",
		}},
		{Name: "archives", Extensions: []string{
			".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz",
			".deb", ".rpm", ".dmg", ".pkg",
		}},
	}, DefaultFallback)
}
