package templates

// Sample describes a templated file and the sample that populates it.
type Sample struct {
	// File is the templated file name relative to the project root.
	File string

	// Description is a short human-readable summary of the file.
	Description string
}

// samples is the registry of templated files, in plan order.
var samples = []Sample{
	{File: "README.md", Description: "Project overview"},
	{File: "setup.py", Description: "Setuptools entry point"},
	{File: "setup.cfg", Description: "Package metadata"},
	{File: "MANIFEST.in", Description: "Source distribution manifest"},
}

// TemplatedFiles returns the names of all templated files.
func TemplatedFiles() []string {
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		names = append(names, s.File)
	}
	return names
}

// IsTemplated reports whether file receives sample content in verbose mode.
func IsTemplated(file string) bool {
	for _, s := range samples {
		if s.File == file {
			return true
		}
	}
	return false
}

// Describe returns the description of a templated file, or "" if file is not
// templated.
func Describe(file string) string {
	for _, s := range samples {
		if s.File == file {
			return s.Description
		}
	}
	return ""
}
