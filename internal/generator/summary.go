package generator

// FileError records a path that could not be generated.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Summary is the outcome of one generation run.
//
// Every requested kind appears exactly once across Created, Skipped and
// Errors, in request order within each list. A directory creation failure
// is the only case where Errors holds a path that is not a kind's file.
type Summary struct {
	Created []string    `json:"created"`
	Skipped []string    `json:"skipped"`
	Errors  []FileError `json:"errors"`
}

// HasErrors reports whether any path failed.
func (s *Summary) HasErrors() bool {
	return s != nil && len(s.Errors) > 0
}

// Total returns the number of recorded paths.
func (s *Summary) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Created) + len(s.Skipped) + len(s.Errors)
}

func (s *Summary) created(path string) {
	s.Created = append(s.Created, path)
}

func (s *Summary) skipped(path string) {
	s.Skipped = append(s.Skipped, path)
}

func (s *Summary) failed(path, message string) {
	s.Errors = append(s.Errors, FileError{Path: path, Message: message})
}
