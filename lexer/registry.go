package lexer

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// A Registry holds lexers under the identifiers a host engine discovers
// them by: display name, alias, filename glob and MIME type. Registration
// happens during package init; lookups may run from any goroutine.
type Registry struct {
	mu     sync.RWMutex
	lexers []*Lexer
}

// Default is the process-wide registry.
var Default = &Registry{}

// Register adds a lexer and returns it, so package-level registration can
// keep a handle on the lexer in one declaration.
func (r *Registry) Register(l *Lexer) *Lexer {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lexers = append(r.lexers, l)
	return l
}

// Get returns the lexer with the given name or alias, case-insensitively,
// or nil when none is registered.
func (r *Registry) Get(name string) *Lexer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lexers {
		if strings.EqualFold(l.config.Name, name) {
			return l
		}
		for _, alias := range l.config.Aliases {
			if strings.EqualFold(alias, name) {
				return l
			}
		}
	}
	return nil
}

// Match returns the first lexer whose filename globs match the base name of
// filename, or nil.
func (r *Registry) Match(filename string) *Lexer {
	base := filepath.Base(filename)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lexers {
		for _, glob := range l.config.Filenames {
			if ok, _ := filepath.Match(glob, base); ok {
				return l
			}
		}
	}
	return nil
}

// MatchMimeType returns the first lexer declaring the given MIME type, or nil.
func (r *Registry) MatchMimeType(mimeType string) *Lexer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lexers {
		for _, mt := range l.config.MimeTypes {
			if mt == mimeType {
				return l
			}
		}
	}
	return nil
}

// Names returns the sorted display names of every registered lexer.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.lexers))
	for _, l := range r.lexers {
		names = append(names, l.config.Name)
	}
	sort.Strings(names)
	return names
}
