package filesystem

import "strings"

// DocumentExtension is the suffix of paths treated as Markdown documents.
const DocumentExtension = ".md"

// SelectDocuments returns the arguments naming Markdown documents, in order.
func SelectDocuments(args []string) []string {
	var paths []string

	for _, arg := range args {
		if !strings.HasSuffix(arg, DocumentExtension) {
			continue
		}

		paths = append(paths, arg)
	}

	return paths
}
